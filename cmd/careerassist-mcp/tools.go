package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"careerassist/internal/core/intent"
	"careerassist/internal/core/langid"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// searcher is the slice of the cse client the tools use
type searcher interface {
	SearchJobs(ctx context.Context, title, location string) (string, error)
	SearchCourses(ctx context.Context, keyword string) (string, error)
	SearchCommunities(ctx context.Context, keyword string) (string, error)
}

type tools struct {
	search searcher
}

func register(s *server.MCPServer, t *tools) {
	s.AddTool(mcp.NewTool("identify_language",
		mcp.WithDescription("Identify which supported Indian language (or English) a text is written in"),
		mcp.WithString("text", mcp.Required(), mcp.Description("Text to identify")),
		mcp.WithString("hint", mcp.Description("Language hint as an ISO code or English name")),
	), t.identify)

	s.AddTool(mcp.NewTool("classify_reply",
		mcp.WithDescription("Classify a raw chat model reply into plain, job/course/community search, resume or job portals"),
		mcp.WithString("reply", mcp.Required(), mcp.Description("Raw model reply")),
	), t.classify)

	s.AddTool(mcp.NewTool("search_jobs",
		mcp.WithDescription("Search job boards and return the /jobdata payload"),
		mcp.WithString("title", mcp.Required(), mcp.Description("Job title")),
		mcp.WithString("location", mcp.Description("City or region, default "+intent.DefaultLocation)),
	), t.jobs)

	s.AddTool(mcp.NewTool("search_courses",
		mcp.WithDescription("Search course platforms and return the /courses payload"),
		mcp.WithString("keyword", mcp.Required(), mcp.Description("Skill or topic")),
	), t.courses)

	s.AddTool(mcp.NewTool("search_communities",
		mcp.WithDescription("Search community platforms and return the /community payload"),
		mcp.WithString("keyword", mcp.Required(), mcp.Description("Skill or topic")),
	), t.communities)
}

// arg reads a trimmed string argument
func arg(req mcp.CallToolRequest, name string) string {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return ""
	}
	v, _ := args[name].(string)
	return strings.TrimSpace(v)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode failed: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

func (t *tools) identify(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := arg(req, "text")
	if text == "" {
		return mcp.NewToolResultError("text is required"), nil
	}
	return jsonResult(langid.Identify(text, arg(req, "hint")))
}

func (t *tools) classify(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	reply := arg(req, "reply")
	if reply == "" {
		return mcp.NewToolResultError("reply is required"), nil
	}
	return jsonResult(intent.Classify(reply))
}

func (t *tools) jobs(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title := arg(req, "title")
	if title == "" {
		return mcp.NewToolResultError("title is required"), nil
	}
	loc := arg(req, "location")
	if loc == "" {
		loc = intent.DefaultLocation
	}
	return searchResult(t.search.SearchJobs(ctx, title, loc))
}

func (t *tools) courses(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kw := arg(req, "keyword")
	if kw == "" {
		return mcp.NewToolResultError("keyword is required"), nil
	}
	return searchResult(t.search.SearchCourses(ctx, kw))
}

func (t *tools) communities(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kw := arg(req, "keyword")
	if kw == "" {
		return mcp.NewToolResultError("keyword is required"), nil
	}
	return searchResult(t.search.SearchCommunities(ctx, kw))
}

// searchResult reports adapter failures as tool errors, an empty payload as "no results"
func searchResult(out string, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}
	if out == "" {
		return mcp.NewToolResultText("no results"), nil
	}
	return mcp.NewToolResultText(out), nil
}
