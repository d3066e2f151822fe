package intent

import "testing"

func TestClassify_Directives(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want Intent
	}{
		{name: "resume", raw: "GENERATEPDF", want: Intent{Kind: KindResume}},
		{name: "resume padded", raw: "  \n GENERATEPDF \t", want: Intent{Kind: KindResume}},
		{name: "portals", raw: "JOB_PORTALS", want: Intent{Kind: KindJobPortals}},
		{name: "job with city", raw: "JOB_SEARCH: nurse Mumbai", want: Intent{Kind: KindJobSearch, Title: "nurse", Location: "Mumbai"}},
		{name: "job default location", raw: "JOB_SEARCH: nurse", want: Intent{Kind: KindJobSearch, Title: "nurse", Location: "India"}},
		{name: "job multiword title", raw: "JOB_SEARCH: senior data analyst pune", want: Intent{Kind: KindJobSearch, Title: "senior data analyst", Location: "pune"}},
		{name: "job two word place", raw: "JOB_SEARCH: teacher Tamil Nadu", want: Intent{Kind: KindJobSearch, Title: "teacher", Location: "Tamil Nadu"}},
		{name: "job new delhi", raw: "JOB_SEARCH: UX designer New Delhi", want: Intent{Kind: KindJobSearch, Title: "UX designer", Location: "New Delhi"}},
		{name: "job anywhere", raw: "JOB_SEARCH: writer anywhere", want: Intent{Kind: KindJobSearch, Title: "writer", Location: "anywhere"}},
		{name: "job remote", raw: "JOB_SEARCH: go developer Remote", want: Intent{Kind: KindJobSearch, Title: "go developer", Location: "Remote"}},
		{name: "job trailing punctuation", raw: "JOB_SEARCH: accountant Chennai.", want: Intent{Kind: KindJobSearch, Title: "accountant", Location: "Chennai"}},
		{name: "job unknown tail", raw: "JOB_SEARCH: product manager fintech", want: Intent{Kind: KindJobSearch, Title: "product manager fintech", Location: "India"}},
		{name: "job place only", raw: "JOB_SEARCH: Mumbai", want: Intent{Kind: KindJobSearch, Title: "Mumbai", Location: "India"}},
		{name: "job empty", raw: "JOB_SEARCH:   ", want: Intent{Kind: KindUnclear, Of: KindJobSearch, Reason: "empty job title"}},
		{name: "course", raw: "COURSE:  machine   learning ", want: Intent{Kind: KindCourseSearch, Keyword: "machine learning"}},
		{name: "course empty", raw: "COURSE:", want: Intent{Kind: KindUnclear, Of: KindCourseSearch, Reason: "empty course_search keyword"}},
		{name: "community", raw: "COMMUNITY: web development", want: Intent{Kind: KindCommunitySearch, Keyword: "web development"}},
		{name: "community empty", raw: "COMMUNITY: ", want: Intent{Kind: KindUnclear, Of: KindCommunitySearch, Reason: "empty community_search keyword"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Classify(c.raw)
			if got != c.want {
				t.Fatalf("Classify(%q) = %+v, want %+v", c.raw, got, c.want)
			}
		})
	}
}

func TestClassify_TokensAreExact(t *testing.T) {
	for _, raw := range []string{"GENERATEPDF please", "generatepdf", "JOB_PORTALS now", "job_search: nurse"} {
		if got := Classify(raw); got.Kind != KindPlain {
			t.Fatalf("Classify(%q).Kind = %s, want plain", raw, got.Kind)
		}
	}
}

func TestClassify_StructuredReply(t *testing.T) {
	raw := `{"response":"hi","context":"c","chatName":"n","emoji":"🙂"}`
	got := Classify(raw)
	want := Reply{Response: "hi", Context: "c", ChatName: "n", Emoji: "🙂", Recovered: true, Stage: StageStrict}
	if got.Kind != KindPlain || got.Reply != want {
		t.Fatalf("Classify(%q) = %+v, want plain %+v", raw, got, want)
	}
}

func TestClassify_Garbled(t *testing.T) {
	raw := "garbled { not json"
	got := Classify(raw)
	if got.Kind != KindPlain || got.Reply.Response != raw || got.Reply.Recovered {
		t.Fatalf("Classify(%q) = %+v, want unrecovered raw", raw, got)
	}
}

func TestIntentAnywhere(t *testing.T) {
	if !Classify("JOB_SEARCH: writer Anywhere").Anywhere() {
		t.Fatalf("Anywhere() = false for an anywhere location")
	}
	if Classify("JOB_SEARCH: writer Pune").Anywhere() {
		t.Fatalf("Anywhere() = true for Pune")
	}
}

func TestKindString(t *testing.T) {
	if got := KindCommunitySearch.String(); got != "community_search" {
		t.Fatalf("String() = %q", got)
	}
	if got := Kind(200).String(); got != "unknown" {
		t.Fatalf("String() = %q, want unknown", got)
	}
}
