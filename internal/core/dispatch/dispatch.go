// Package dispatch turns a classified assistant reply into the outbound message and the
// conversation memory that follows it
package dispatch

import (
	"context"
	"fmt"
	"strings"

	"careerassist/internal/core/intent"
	perr "careerassist/internal/platform/errors"
	"careerassist/internal/platform/logger"
)

// JobSearcher returns a formatted listing for a title and location
type JobSearcher interface {
	SearchJobs(ctx context.Context, title, location string) (string, error)
}

// CourseSearcher returns a formatted listing, empty when nothing matched
type CourseSearcher interface {
	SearchCourses(ctx context.Context, keyword string) (string, error)
}

// CommunitySearcher returns a formatted listing, empty when nothing matched
type CommunitySearcher interface {
	SearchCommunities(ctx context.Context, keyword string) (string, error)
}

// ResumeGenerator returns a document reference
type ResumeGenerator interface {
	GenerateResume(ctx context.Context) (string, error)
}

// Collaborators are the external services a Dispatcher calls; nil ones fail as unavailable
type Collaborators struct {
	Jobs        JobSearcher
	Courses     CourseSearcher
	Communities CommunitySearcher
	Resume      ResumeGenerator
}

// Outcome is the result of one dispatch
type Outcome struct {
	Message string
	Memory  Memory

	// Failure is the collaborator error behind an apology, nil otherwise
	Failure error
}

// Dispatcher routes intents to collaborators
type Dispatcher struct {
	c   Collaborators
	log logger.Logger
}

// Option configures a Dispatcher
type Option func(*Dispatcher)

// WithLogger overrides the component logger
func WithLogger(l logger.Logger) Option { return func(d *Dispatcher) { d.log = l } }

// New builds a Dispatcher
func New(c Collaborators, opts ...Option) *Dispatcher {
	d := &Dispatcher{c: c, log: *logger.Named("dispatch")}
	for _, o := range opts {
		o(d)
	}
	return d
}

// SentinelPortals tells the client to render its static job portal list
const SentinelPortals = "/portals"

// Dispatch runs the collaborator for in and proposes the next memory
// it never fails: collaborator errors become apologies, and the result always carries a
// message, a title and an emoji
func (d *Dispatcher) Dispatch(ctx context.Context, in intent.Intent, prior Memory, userMessage string) Outcome {
	var out Outcome
	switch in.Kind {
	case intent.KindJobSearch:
		out = d.jobs(ctx, in, prior)
	case intent.KindCourseSearch:
		out = d.courses(ctx, in.Keyword, prior)
	case intent.KindCommunitySearch:
		out = d.communities(ctx, in.Keyword, prior)
	case intent.KindResume:
		out = d.resume(ctx, prior)
	case intent.KindJobPortals:
		out = Outcome{Message: SentinelPortals, Memory: prior.themed("Job Portals", "🔗")}
		out.Memory.Context = appendLine(prior.Context, "User asked for job portals. Provided the job portal list.")
	case intent.KindUnclear:
		out = Outcome{Message: clarification(in.Of), Memory: prior}
	default:
		out = plain(in.Reply, prior, userMessage)
	}
	if out.Failure != nil {
		d.log.Warn().Err(out.Failure).
			Str("intent", in.Kind.String()).
			Str("category", string(perr.Classify(out.Failure))).
			Bool("terminal", perr.Terminal(out.Failure)).
			Msg("collaborator failed")
	}
	out.Memory = out.Memory.withDefaults(userMessage)
	if strings.TrimSpace(out.Message) == "" {
		out.Message = greeting
	}
	return out
}

func (d *Dispatcher) jobs(ctx context.Context, in intent.Intent, prior Memory) Outcome {
	where := ""
	if !in.Anywhere() {
		where = " in " + in.Location
	}
	if d.c.Jobs == nil {
		return failed(prior, "job", errUnconfigured("job search"))
	}
	res, err := d.c.Jobs.SearchJobs(ctx, in.Title, in.Location)
	if err != nil {
		return failed(prior, "job", err)
	}
	if strings.TrimSpace(res) == "" {
		res = fmt.Sprintf("I couldn't find any %s jobs%s right now. Try a different title or location.", in.Title, where)
	}
	m := prior.themed("Job Search: "+in.Title+where, "💼")
	m.Context = appendLine(prior.Context, fmt.Sprintf("User searched for %s jobs%s. Provided job search results.", in.Title, where))
	return Outcome{Message: res, Memory: m}
}

func (d *Dispatcher) courses(ctx context.Context, kw string, prior Memory) Outcome {
	if d.c.Courses == nil {
		return failed(prior, "course", errUnconfigured("course search"))
	}
	res, err := d.c.Courses.SearchCourses(ctx, kw)
	if err != nil {
		return failed(prior, "course", err)
	}
	if strings.TrimSpace(res) == "" {
		return Outcome{Message: notFound("courses", kw), Memory: prior}
	}
	m := prior.themed("Courses: "+kw, "📚")
	m.Context = appendLine(prior.Context, fmt.Sprintf("User searched for courses about %q. Provided course recommendations.", kw))
	return Outcome{Message: res, Memory: m}
}

func (d *Dispatcher) communities(ctx context.Context, kw string, prior Memory) Outcome {
	if d.c.Communities == nil {
		return failed(prior, "community", errUnconfigured("community search"))
	}
	res, err := d.c.Communities.SearchCommunities(ctx, kw)
	if err != nil {
		return failed(prior, "community", err)
	}
	if strings.TrimSpace(res) == "" {
		return Outcome{Message: notFound("communities", kw), Memory: prior}
	}
	m := prior.themed("Communities: "+kw, "👥")
	m.Context = appendLine(prior.Context, fmt.Sprintf("User searched for communities related to %q. Provided community recommendations.", kw))
	return Outcome{Message: res, Memory: m}
}

func (d *Dispatcher) resume(ctx context.Context, prior Memory) Outcome {
	if d.c.Resume == nil {
		return Outcome{Message: resumeApology, Memory: prior, Failure: errUnconfigured("resume generation")}
	}
	res, err := d.c.Resume.GenerateResume(ctx)
	if err == nil && strings.TrimSpace(res) == "" {
		err = perr.Newf(perr.ErrorCodeUnavailable, "resume generator returned nothing")
	}
	if err != nil {
		return Outcome{Message: resumeApology, Memory: prior, Failure: err}
	}
	m := prior.themed("Resume Generation", "📄")
	m.Context = appendLine(prior.Context, "User requested resume generation. Generated resume successfully.")
	return Outcome{Message: res, Memory: m}
}

// plain uses recovered fields, each falling back to the prior memory
func plain(r intent.Reply, prior Memory, userMessage string) Outcome {
	m := prior
	if !r.Recovered {
		m.Context = appendLine(prior.Context, exchangeLine(userMessage, r.Response))
		return Outcome{Message: r.Response, Memory: m}
	}
	if r.Context != "" {
		m.Context = r.Context
	}
	if r.ChatName != "" {
		m.Title = r.ChatName
	}
	if r.Emoji != "" {
		m.Emoji = r.Emoji
	}
	return Outcome{Message: r.Response, Memory: m}
}

// Fallback answers a cycle whose completion failed with message, keeping the
// prior conversation identity and filling a blank title or emoji
func Fallback(prior Memory, userMessage, message string, err error) Outcome {
	return Outcome{Message: message, Memory: prior.withDefaults(userMessage), Failure: err}
}

func failed(prior Memory, service string, err error) Outcome {
	return Outcome{Message: apology(service, err), Memory: prior, Failure: err}
}

func errUnconfigured(what string) error {
	return perr.Newf(perr.ErrorCodeUnavailable, "%s is not configured", what)
}
