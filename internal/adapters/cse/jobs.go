package cse

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	perr "careerassist/internal/platform/errors"
	str "careerassist/internal/platform/strings"

	"github.com/google/uuid"
)

// SentinelJobs prefixes a job listing payload
const SentinelJobs = "/jobdata"

const (
	maxJobs     = 10
	jobsPerSite = 5
	herkeyBase  = "https://www.herkey.com/jobs/search"
)

type jobSite struct {
	name      string
	site      string
	publisher string
}

// sites are searched in this order; HerKey contributes a direct search link instead
var jobSites = []jobSite{
	{name: "naukri", site: "naukri.com", publisher: "Naukri"},
	{name: "indeed", site: "indeed.co.in", publisher: "Indeed"},
	{name: "linkedin", site: "linkedin.com/jobs", publisher: "LinkedIn"},
	{name: "glassdoor", site: "glassdoor.co.in", publisher: "Glassdoor"},
	{name: "monster", site: "monster.com", publisher: "Monster"},
	{name: "shine", site: "shine.com", publisher: "Shine"},
}

// publishers whose listings apply on the site itself
var directHosts = []string{"herkey.com", "linkedin.com", "glassdoor.", "monster.com", "shine.com"}

// Job is one normalized posting
type Job struct {
	ID             string  `json:"job_id"`
	Title          string  `json:"job_title"`
	Employer       string  `json:"employer_name"`
	Logo           *string `json:"employer_logo"`
	ApplyLink      string  `json:"job_apply_link"`
	ApplyIsDirect  bool    `json:"job_apply_is_direct"`
	EmploymentType string  `json:"job_employment_type"`
	Publisher      string  `json:"job_publisher"`
	City           string  `json:"job_city,omitempty"`
	State          string  `json:"job_state,omitempty"`
	Country        string  `json:"job_country"`
	Description    string  `json:"job_description,omitempty"`
	PostedAt       string  `json:"job_posted_at_datetime_utc,omitempty"`
}

// listing is the subset of Job the chat client renders
type listing struct {
	Logo           *string `json:"employer_logo"`
	Title          string  `json:"job_title"`
	Employer       string  `json:"employer_name"`
	ApplyLink      string  `json:"job_apply_link"`
	EmploymentType string  `json:"job_employment_type"`
	PostedAt       string  `json:"job_posted_at_datetime_utc,omitempty"`
}

// SearchJobs returns the sentinel line followed by a JSON array of listings
func (c *Client) SearchJobs(ctx context.Context, title, location string) (string, error) {
	jobs, err := c.Jobs(ctx, title, location)
	if err != nil {
		return "", err
	}
	out := make([]listing, len(jobs))
	for i, j := range jobs {
		out[i] = listing{
			Logo:           j.Logo,
			Title:          j.Title,
			Employer:       j.Employer,
			ApplyLink:      j.ApplyLink,
			EmploymentType: j.EmploymentType,
			PostedAt:       j.PostedAt,
		}
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeJSON, "encode job listings")
	}
	return SentinelJobs + "\n" + string(b), nil
}

// Jobs searches every site and returns the HerKey link first, capped at ten postings
func (c *Client) Jobs(ctx context.Context, title, location string) ([]Job, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, perr.InvalidArgf("job title is required")
	}
	loc := strings.TrimSpace(location)
	if strings.EqualFold(loc, "anywhere") {
		loc = ""
	}

	qs := make([]query, len(jobSites))
	for i, s := range jobSites {
		qs[i] = query{q: jobQuery(s.site, title, loc), num: jobsPerSite, dateRestrict: "m2", label: s.name}
	}
	results, err := c.runAll(ctx, "jobs", qs)
	if err != nil {
		return nil, err
	}

	posted := c.now().UTC().Format(time.RFC3339)
	jobs := []Job{herkeyJob(title, loc, posted)}
	needle := strings.ToLower(title)
	for _, items := range results {
		for _, it := range items {
			if len(jobs) == maxJobs {
				return jobs, nil
			}
			if !isJobPosting(it, needle) {
				continue
			}
			jobs = append(jobs, toJob(it, posted))
		}
	}
	return jobs, nil
}

func jobQuery(site, title, loc string) string {
	q := fmt.Sprintf(`site:%s "%s" jobs`, site, title)
	if loc != "" {
		q += fmt.Sprintf(` "%s"`, loc)
	}
	return q + " -expired -closed recent"
}

func herkeyJob(title, loc, posted string) Job {
	v := url.Values{"keyword": {title}}
	if loc != "" {
		v.Set("location", loc)
	}
	link := herkeyBase + "?" + v.Encode()
	return Job{
		ID:             "herkey_" + uuid.NewSHA1(uuid.NameSpaceURL, []byte(link)).String(),
		Title:          title,
		Employer:       "HerKey",
		ApplyLink:      link,
		ApplyIsDirect:  true,
		EmploymentType: "Full-time",
		Publisher:      "HerKey",
		City:           loc,
		Country:        "India",
		Description:    "Search for " + title + " jobs on HerKey",
		PostedAt:       posted,
	}
}

var (
	postingTitleWords   = []string{"job", "career", "opening", "position", "hiring"}
	postingSnippetWords = []string{"apply", "salary", "experience", "qualification"}
	excludedTitleWords  = []string{"course", "training", "certification", "salary guide", "interview questions"}
	excludedSnippet     = []string{"learn", "study"}
)

// isJobPosting keeps results that look like postings, mention the title, and are not learning content
func isJobPosting(it Item, needle string) bool {
	title, snippet := strings.ToLower(it.Title), strings.ToLower(it.Snippet)
	if !str.ContainsAnyOf(title, postingTitleWords) && !str.ContainsAnyOf(snippet, postingSnippetWords) {
		return false
	}
	if !strings.Contains(title, needle) && !strings.Contains(snippet, needle) {
		return false
	}
	return !str.ContainsAnyOf(title, excludedTitleWords) && !str.ContainsAnyOf(snippet, excludedSnippet)
}

func toJob(it Item, posted string) Job {
	host := hostOf(it.Link)
	city, state := extractPlace(it.Title + " " + it.Snippet)
	return Job{
		ID:             "job_" + uuid.NewSHA1(uuid.NameSpaceURL, []byte(it.Link)).String(),
		Title:          cleanJobTitle(it.Title),
		Employer:       employerFrom(it.DisplayLink),
		ApplyLink:      it.Link,
		ApplyIsDirect:  str.ContainsAnyOf(host, directHosts),
		EmploymentType: employmentType(it.Title + " " + it.Snippet),
		Publisher:      publisherOf(host),
		City:           city,
		State:          state,
		Country:        "India",
		Description:    it.Snippet,
		PostedAt:       posted,
	}
}

var jobTitleSuffixes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\s*-\s*(Naukri\.com|Naukri|Indeed|LinkedIn|Glassdoor|Monster|Shine|HerKey).*$`),
	regexp.MustCompile(`\s*\|.*$`),
	regexp.MustCompile(`(?i)\s+at\s+.*$`),
	regexp.MustCompile(`(?i)\s+in\s+.*$`),
}

func cleanJobTitle(t string) string {
	for _, re := range jobTitleSuffixes {
		t = re.ReplaceAllString(t, "")
	}
	return strings.TrimSpace(t)
}

// employerFrom takes the first label of the display host
func employerFrom(displayLink string) string {
	name, _, _ := strings.Cut(strings.TrimPrefix(strings.ToLower(displayLink), "www."), ".")
	return capitalize(name)
}

func employmentType(text string) string {
	t := strings.ToLower(text)
	switch {
	case str.ContainsAnyOf(t, []string{"full time", "full-time"}):
		return "Full-time"
	case str.ContainsAnyOf(t, []string{"part time", "part-time"}):
		return "Part-time"
	case strings.Contains(t, "contract"):
		return "Contract"
	case strings.Contains(t, "freelance"):
		return "Freelance"
	case strings.Contains(t, "intern"):
		return "Internship"
	case str.ContainsAnyOf(t, []string{"remote", "work from home", "wfh"}):
		return "Remote"
	}
	return "Full-time"
}

var (
	placeCities = []string{"mumbai", "delhi", "bangalore", "hyderabad", "chennai", "kolkata", "pune", "ahmedabad", "jaipur", "surat"}
	placeStates = []string{"maharashtra", "karnataka", "telangana", "tamil nadu", "west bengal", "gujarat", "rajasthan"}
)

func extractPlace(text string) (city, state string) {
	t := strings.ToLower(text)
	for _, c := range placeCities {
		if strings.Contains(t, c) {
			city = capitalize(c)
			break
		}
	}
	for _, s := range placeStates {
		if strings.Contains(t, s) {
			words := strings.Fields(s)
			for i, w := range words {
				words[i] = capitalize(w)
			}
			state = strings.Join(words, " ")
			break
		}
	}
	return city, state
}

var publishers = []struct{ host, name string }{
	{"herkey.com", "HerKey"},
	{"naukri.com", "Naukri"},
	{"indeed.", "Indeed"},
	{"linkedin.com", "LinkedIn"},
	{"glassdoor.", "Glassdoor"},
	{"monster.com", "Monster"},
	{"shine.com", "Shine"},
}

func publisherOf(host string) string {
	if host == "" {
		return "Unknown"
	}
	for _, p := range publishers {
		if strings.Contains(host, p.host) {
			return p.name
		}
	}
	name, _, _ := strings.Cut(strings.TrimPrefix(host, "www."), ".")
	return name
}
