package dispatch

import (
	"context"
	"errors"
	"strings"
	"testing"

	"careerassist/internal/core/intent"
	perr "careerassist/internal/platform/errors"

	"github.com/rs/zerolog"
)

type jobsFunc func(ctx context.Context, title, location string) (string, error)

func (f jobsFunc) SearchJobs(ctx context.Context, title, location string) (string, error) {
	return f(ctx, title, location)
}

type keywordFunc func(ctx context.Context, kw string) (string, error)

func (f keywordFunc) SearchCourses(ctx context.Context, kw string) (string, error)     { return f(ctx, kw) }
func (f keywordFunc) SearchCommunities(ctx context.Context, kw string) (string, error) { return f(ctx, kw) }

type resumeFunc func(ctx context.Context) (string, error)

func (f resumeFunc) GenerateResume(ctx context.Context) (string, error) { return f(ctx) }

func returns(s string, err error) keywordFunc {
	return func(context.Context, string) (string, error) { return s, err }
}

func newDispatcher(c Collaborators) *Dispatcher { return New(c, WithLogger(zerolog.Nop())) }

func TestDispatch_JobSearchNewConversation(t *testing.T) {
	var gotTitle, gotLoc string
	d := newDispatcher(Collaborators{Jobs: jobsFunc(func(_ context.Context, title, loc string) (string, error) {
		gotTitle, gotLoc = title, loc
		return "/jobdata\n[]", nil
	})})

	out := d.Dispatch(context.Background(), intent.Classify("JOB_SEARCH: nurse Mumbai"), Memory{}, "find nurse jobs")

	if gotTitle != "nurse" || gotLoc != "Mumbai" {
		t.Fatalf("SearchJobs called with (%q, %q), want (nurse, Mumbai)", gotTitle, gotLoc)
	}
	want := Memory{
		Title:   "Job Search: nurse in Mumbai",
		Emoji:   "💼",
		Context: "User searched for nurse jobs in Mumbai. Provided job search results.",
	}
	if out.Message != "/jobdata\n[]" || out.Memory != want || out.Failure != nil {
		t.Fatalf("Dispatch = %+v, want message /jobdata and memory %+v", out, want)
	}
}

func TestDispatch_JobSearchKeepsExistingIdentity(t *testing.T) {
	d := newDispatcher(Collaborators{Jobs: jobsFunc(func(context.Context, string, string) (string, error) { return "listing", nil })})
	prior := Memory{ChatID: "c1", Title: "Career chat", Emoji: "🙂", Context: "earlier"}

	out := d.Dispatch(context.Background(), intent.Classify("JOB_SEARCH: writer anywhere"), prior, "remote writing jobs")

	want := Memory{ChatID: "c1", Title: "Career chat", Emoji: "🙂", Context: "earlier\n\nUser searched for writer jobs. Provided job search results."}
	if out.Memory != want {
		t.Fatalf("Memory = %+v, want %+v", out.Memory, want)
	}
}

func TestDispatch_JobSearchApologies(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{name: "rate limit", err: perr.SearchFailed(perr.Newf(perr.ErrorCodeTooManyRequests, "quota body {\"error\":1}"), "jobs"), want: "rate limit"},
		{name: "api key", err: perr.APIKeyMissingf("GOOGLE_CSE_KEY unset"), want: "API key is missing"},
		{name: "auth", err: perr.SearchFailed(perr.Newf(perr.ErrorCodeUnauthorized, "401"), "jobs"), want: "rejected our credentials"},
		{name: "server", err: perr.Newf(perr.ErrorCodeUnavailable, "502"), want: "temporarily unavailable"},
		{name: "network", err: context.DeadlineExceeded, want: "couldn't reach"},
		{name: "other", err: errors.New("boom"), want: "error while searching for jobs"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := newDispatcher(Collaborators{Jobs: jobsFunc(func(context.Context, string, string) (string, error) { return "", c.err })})
			out := d.Dispatch(context.Background(), intent.Classify("JOB_SEARCH: nurse"), Memory{}, "nurse jobs")
			if !strings.Contains(out.Message, c.want) {
				t.Fatalf("Message = %q, want it to mention %q", out.Message, c.want)
			}
			if strings.Contains(out.Message, "quota body") || strings.Contains(out.Message, "{") {
				t.Fatalf("Message leaks provider payload: %q", out.Message)
			}
			if out.Failure == nil {
				t.Fatalf("Failure = nil, want the collaborator error")
			}
			if out.Memory.Title != "nurse jobs" || out.Memory.Emoji != "💬" {
				t.Fatalf("Memory = %+v, want defaults from the user message", out.Memory)
			}
		})
	}
}

func TestDispatch_MissingCollaborator(t *testing.T) {
	d := newDispatcher(Collaborators{})
	for _, raw := range []string{"JOB_SEARCH: nurse", "COURSE: go", "COMMUNITY: go", "GENERATEPDF"} {
		out := d.Dispatch(context.Background(), intent.Classify(raw), Memory{}, "hi")
		if out.Failure == nil || out.Message == "" {
			t.Fatalf("Dispatch(%q) without collaborator = %+v, want apology and failure", raw, out)
		}
	}
}

func TestDispatch_Courses(t *testing.T) {
	cases := []struct {
		name      string
		searcher  keywordFunc
		wantMsg   string
		wantTitle string
		wantEmoji string
		wantFail  bool
	}{
		{name: "found", searcher: returns("/courses\nGo: Udemy: https://u", nil), wantMsg: "/courses\nGo: Udemy: https://u", wantTitle: "Courses: golang", wantEmoji: "📚"},
		{name: "empty", searcher: returns("  ", nil), wantMsg: `I couldn't find any courses for "golang". Please try different search terms.`, wantTitle: "learn go", wantEmoji: "💬"},
		{name: "failed", searcher: returns("", errors.New("x")), wantMsg: "I encountered an error while searching for courses. Please try again with a different search term.", wantTitle: "learn go", wantEmoji: "💬", wantFail: true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d := newDispatcher(Collaborators{Courses: c.searcher})
			out := d.Dispatch(context.Background(), intent.Classify("COURSE: golang"), Memory{}, "learn go")
			if out.Message != c.wantMsg || out.Memory.Title != c.wantTitle || out.Memory.Emoji != c.wantEmoji || (out.Failure != nil) != c.wantFail {
				t.Fatalf("Dispatch = %+v", out)
			}
		})
	}
}

func TestDispatch_Communities(t *testing.T) {
	d := newDispatcher(Collaborators{Communities: returns("/community\nGophers:reddit:https://r", nil)})
	out := d.Dispatch(context.Background(), intent.Classify("COMMUNITY: golang"), Memory{}, "communities")
	if out.Memory.Title != "Communities: golang" || out.Memory.Emoji != "👥" {
		t.Fatalf("Memory = %+v", out.Memory)
	}
	if !strings.Contains(out.Memory.Context, `communities related to "golang"`) {
		t.Fatalf("Context = %q", out.Memory.Context)
	}

	d = newDispatcher(Collaborators{Communities: returns("", errors.New("x"))})
	out = d.Dispatch(context.Background(), intent.Classify("COMMUNITY: golang"), Memory{}, "communities")
	if !strings.Contains(out.Message, "searching for communities") {
		t.Fatalf("Message = %q", out.Message)
	}
}

func TestDispatch_Resume(t *testing.T) {
	d := newDispatcher(Collaborators{Resume: resumeFunc(func(context.Context) (string, error) { return "/generatepdf", nil })})
	out := d.Dispatch(context.Background(), intent.Classify("GENERATEPDF"), Memory{}, "make my resume")
	if out.Message != "/generatepdf" || out.Memory.Title != "Resume Generation" || out.Memory.Emoji != "📄" {
		t.Fatalf("Dispatch = %+v", out)
	}

	for _, gen := range []resumeFunc{
		func(context.Context) (string, error) { return "", errors.New("down") },
		func(context.Context) (string, error) { return "", nil },
	} {
		d = newDispatcher(Collaborators{Resume: gen})
		out = d.Dispatch(context.Background(), intent.Classify("GENERATEPDF"), Memory{}, "make my resume")
		if out.Message != resumeApology || out.Failure == nil {
			t.Fatalf("Dispatch = %+v, want resume apology", out)
		}
	}
}

func TestDispatch_Portals(t *testing.T) {
	d := newDispatcher(Collaborators{})
	out := d.Dispatch(context.Background(), intent.Classify("JOB_PORTALS"), Memory{}, "portals")
	if out.Message != SentinelPortals || out.Memory.Title != "Job Portals" || out.Memory.Emoji != "🔗" || out.Failure != nil {
		t.Fatalf("Dispatch = %+v", out)
	}
	prior := Memory{ChatID: "c", Title: "Mine", Emoji: "🙂"}
	out = d.Dispatch(context.Background(), intent.Classify("JOB_PORTALS"), prior, "portals")
	if out.Memory.Title != "Mine" || out.Memory.Emoji != "🙂" {
		t.Fatalf("existing identity overridden: %+v", out.Memory)
	}
}

func TestDispatch_Unclear(t *testing.T) {
	d := newDispatcher(Collaborators{})
	prior := Memory{ChatID: "c", Title: "T", Emoji: "🙂", Context: "ctx"}
	out := d.Dispatch(context.Background(), intent.Classify("JOB_SEARCH:"), prior, "jobs")
	if !strings.Contains(out.Message, "specify the job title") || out.Memory != prior {
		t.Fatalf("Dispatch = %+v", out)
	}
}

func TestDispatch_PlainRecoveredFallsBackPerField(t *testing.T) {
	d := newDispatcher(Collaborators{})
	prior := Memory{ChatID: "c", Title: "T", Emoji: "🙂", Context: "old"}
	in := intent.Intent{Kind: intent.KindPlain, Reply: intent.Reply{Response: "hi", Emoji: "🎯", Recovered: true}}

	out := d.Dispatch(context.Background(), in, prior, "hello")

	want := Memory{ChatID: "c", Title: "T", Emoji: "🎯", Context: "old"}
	if out.Message != "hi" || out.Memory != want {
		t.Fatalf("Dispatch = %+v, want memory %+v", out, want)
	}
}

func TestDispatch_PlainUnrecoveredAppendsExchange(t *testing.T) {
	d := newDispatcher(Collaborators{})
	prior := Memory{ChatID: "c", Title: "T", Emoji: "🙂", Context: "old"}
	out := d.Dispatch(context.Background(), intent.Classify("just some text"), prior, "hello there")

	if out.Message != "just some text" {
		t.Fatalf("Message = %q", out.Message)
	}
	if want := "old\n\nUser: hello there\nAssistant: just some text"; out.Memory.Context != want {
		t.Fatalf("Context = %q, want %q", out.Memory.Context, want)
	}
}

func TestDispatch_NeverBlank(t *testing.T) {
	fail := errors.New("fail")
	d := newDispatcher(Collaborators{
		Jobs:        jobsFunc(func(context.Context, string, string) (string, error) { return "", fail }),
		Courses:     returns("", fail),
		Communities: returns("", fail),
		Resume:      resumeFunc(func(context.Context) (string, error) { return "", fail }),
	})
	raws := []string{"", "   ", "GENERATEPDF", "JOB_SEARCH: a", "COURSE: b", "COMMUNITY: c", "JOB_PORTALS", "COURSE:", `{"response":""}`}
	for _, raw := range raws {
		for _, user := range []string{"", "hello"} {
			out := d.Dispatch(context.Background(), intent.Classify(raw), Memory{}, user)
			if strings.TrimSpace(out.Message) == "" || out.Memory.Title == "" || out.Memory.Emoji == "" {
				t.Fatalf("Dispatch(%q, user %q) = %+v, want non-blank message, title and emoji", raw, user, out)
			}
		}
	}
}

func TestTitleFrom(t *testing.T) {
	cases := []struct{ in, want string }{
		{in: "", want: "Conversation"},
		{in: "  short   question ", want: "short question"},
		{in: strings.Repeat("a", 30), want: strings.Repeat("a", 30)},
		{in: strings.Repeat("a", 31), want: strings.Repeat("a", 30) + "..."},
		{in: strings.Repeat("न", 40), want: strings.Repeat("न", 30) + "..."},
	}
	for _, c := range cases {
		if got := TitleFrom(c.in); got != c.want {
			t.Fatalf("TitleFrom(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFallback(t *testing.T) {
	cause := errors.New("upstream down")

	out := Fallback(Memory{}, "help me write a cover letter", "sorry", cause)
	if out.Message != "sorry" || !errors.Is(out.Failure, cause) {
		t.Fatalf("Fallback() = %+v, want message %q and failure %v", out, "sorry", cause)
	}
	if out.Memory.Title != TitleFrom("help me write a cover letter") || out.Memory.Emoji != defaultEmoji {
		t.Fatalf("Memory = %+v, want derived title and %q", out.Memory, defaultEmoji)
	}

	prior := Memory{ChatID: "c1", Title: "Career chat", Emoji: "🙂", Context: "earlier"}
	if got := Fallback(prior, "hi", "sorry", cause).Memory; got != prior {
		t.Fatalf("Memory = %+v, want %+v", got, prior)
	}
}
