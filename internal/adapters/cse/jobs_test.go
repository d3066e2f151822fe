package cse

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"
)

var nurseItems = []Item{
	{
		Title:       "Nurse Job - Naukri.com",
		Link:        "https://www.naukri.com/job-listings-nurse-1",
		Snippet:     "Apply now, 2 years experience in Mumbai, Maharashtra. Full time role.",
		DisplayLink: "www.naukri.com",
	},
	{
		Title:       "Nurse training course",
		Link:        "https://www.naukri.com/nurse-course",
		Snippet:     "learn nursing and apply",
		DisplayLink: "www.naukri.com",
	},
}

func TestJobs_QueriesAndNormalization(t *testing.T) {
	c, rec, waits := newTestClient(t, respond{"site:naukri.com": nurseItems})

	jobs, err := c.Jobs(context.Background(), "nurse", "Mumbai")
	if err != nil {
		t.Fatalf("Jobs err = %v", err)
	}

	qs := rec.all()
	if len(qs) != len(jobSites) {
		t.Fatalf("requests = %d, want %d", len(qs), len(jobSites))
	}
	first := qs[0]
	if got, want := first.Get("q"), `site:naukri.com "nurse" jobs "Mumbai" -expired -closed recent`; got != want {
		t.Fatalf("q = %q, want %q", got, want)
	}
	if first.Get("num") != "5" || first.Get("dateRestrict") != "m2" || first.Get("key") != "k" || first.Get("cx") != "cx" {
		t.Fatalf("params = %v", first)
	}
	if !strings.HasPrefix(qs[len(qs)-1].Get("q"), "site:shine.com ") {
		t.Fatalf("last query = %q, want shine", qs[len(qs)-1].Get("q"))
	}
	if len(*waits) != len(jobSites)-1 || (*waits)[0] != 200*time.Millisecond {
		t.Fatalf("waits = %v", *waits)
	}

	if len(jobs) != 2 {
		t.Fatalf("jobs = %+v, want HerKey plus one posting", jobs)
	}
	h := jobs[0]
	if h.Publisher != "HerKey" || h.ApplyLink != "https://www.herkey.com/jobs/search?keyword=nurse&location=Mumbai" || !h.ApplyIsDirect {
		t.Fatalf("herkey = %+v", h)
	}
	j := jobs[1]
	want := Job{
		ID:             j.ID,
		Title:          "Nurse Job",
		Employer:       "Naukri",
		ApplyLink:      "https://www.naukri.com/job-listings-nurse-1",
		EmploymentType: "Full-time",
		Publisher:      "Naukri",
		City:           "Mumbai",
		State:          "Maharashtra",
		Country:        "India",
		Description:    nurseItems[0].Snippet,
		PostedAt:       "2026-10-01T09:30:00Z",
	}
	if j != want {
		t.Fatalf("job = %+v, want %+v", j, want)
	}
	if !strings.HasPrefix(j.ID, "job_") {
		t.Fatalf("id = %q", j.ID)
	}
}

func TestJobs_AnywhereDropsLocation(t *testing.T) {
	c, rec, _ := newTestClient(t, nil)
	jobs, err := c.Jobs(context.Background(), "writer", "anywhere")
	if err != nil {
		t.Fatalf("Jobs err = %v", err)
	}
	if got, want := rec.all()[0].Get("q"), `site:naukri.com "writer" jobs -expired -closed recent`; got != want {
		t.Fatalf("q = %q, want %q", got, want)
	}
	if jobs[0].ApplyLink != "https://www.herkey.com/jobs/search?keyword=writer" {
		t.Fatalf("herkey link = %q", jobs[0].ApplyLink)
	}
}

func TestJobs_CappedAtTen(t *testing.T) {
	var many []Item
	for i := range 12 {
		many = append(many, Item{
			Title:       fmt.Sprintf("Nurse job %d", i),
			Link:        fmt.Sprintf("https://www.shine.com/jobs/%d", i),
			DisplayLink: "www.shine.com",
		})
	}
	c, _, _ := newTestClient(t, respond{"site:shine.com": many})
	jobs, err := c.Jobs(context.Background(), "nurse", "")
	if err != nil || len(jobs) != maxJobs {
		t.Fatalf("Jobs = %d jobs, %v; want %d", len(jobs), err, maxJobs)
	}
	if !jobs[1].ApplyIsDirect || jobs[1].Publisher != "Shine" {
		t.Fatalf("shine job = %+v", jobs[1])
	}
}

func TestSearchJobs_Format(t *testing.T) {
	c, _, _ := newTestClient(t, respond{"site:naukri.com": nurseItems})
	out, err := c.SearchJobs(context.Background(), "nurse", "Mumbai")
	if err != nil {
		t.Fatalf("SearchJobs err = %v", err)
	}
	body, ok := strings.CutPrefix(out, SentinelJobs+"\n")
	if !ok {
		t.Fatalf("output %q does not start with the job sentinel", out)
	}
	var rows []map[string]any
	if err := json.Unmarshal([]byte(body), &rows); err != nil {
		t.Fatalf("unmarshal listings: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	for _, k := range []string{"employer_logo", "job_title", "employer_name", "job_apply_link", "job_employment_type", "job_posted_at_datetime_utc"} {
		if _, ok := rows[1][k]; !ok {
			t.Fatalf("listing missing %q: %v", k, rows[1])
		}
	}
	if len(rows[1]) != 6 {
		t.Fatalf("listing has extra fields: %v", rows[1])
	}
}

func TestCleanJobTitle(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Data Analyst - Naukri.com", "Data Analyst"},
		{"Chat Support Executive | Shine", "Chat Support Executive"},
		{"Nurse at Apollo Hospitals", "Nurse"},
		{"Teacher Jobs in Pune", "Teacher Jobs"},
	}
	for _, c := range cases {
		if got := cleanJobTitle(c.in); got != c.want {
			t.Fatalf("cleanJobTitle(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestEmploymentType(t *testing.T) {
	cases := map[string]string{
		"part-time cashier":     "Part-time",
		"contract role":         "Contract",
		"summer internship":     "Internship",
		"work from home typist": "Remote",
		"teacher":               "Full-time",
	}
	for in, want := range cases {
		if got := employmentType(in); got != want {
			t.Fatalf("employmentType(%q) = %q, want %q", in, got, want)
		}
	}
}
