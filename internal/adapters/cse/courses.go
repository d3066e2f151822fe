package cse

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	str "careerassist/internal/platform/strings"
)

// SentinelCourses prefixes a course listing payload
const SentinelCourses = "/courses"

// Course is one recommended course
type Course struct {
	Title    string `json:"title"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

var coursePlatforms = []struct{ host, name string }{
	{"coursera.org", "Coursera"},
	{"udemy.com", "Udemy"},
	{"edx.org", "edX"},
	{"khanacademy.org", "Khan Academy"},
	{"linkedin.com", "LinkedIn Learning"},
	{"pluralsight.com", "Pluralsight"},
	{"codecademy.com", "Codecademy"},
	{"freecodecamp.org", "freeCodeCamp"},
	{"skillshare.com", "Skillshare"},
}

var courseSites = []string{"coursera.org", "udemy.com", "edx.org", "pluralsight.com", "codecademy.com", "freecodecamp.org"}

var courseWords = []string{
	"tutorial", "course", "learn", "complete", "full", "guide", "beginner", "basics",
	"fundamentals", "crash course", "bootcamp", "step by step", "from scratch", "masterclass",
}

// SearchCourses returns the sentinel line followed by "title: platform: url" lines, or "" when nothing matched
func (c *Client) SearchCourses(ctx context.Context, keyword string) (string, error) {
	courses, err := c.Courses(ctx, keyword)
	if err != nil || len(courses) == 0 {
		return "", err
	}
	var b strings.Builder
	b.WriteString(SentinelCourses)
	for _, cr := range courses {
		fmt.Fprintf(&b, "\n%s: %s: %s", cr.Title, cr.Platform, cr.URL)
	}
	return b.String(), nil
}

// Courses returns at most one YouTube course followed by platform courses
func (c *Client) Courses(ctx context.Context, keyword string) ([]Course, error) {
	kw := strings.TrimSpace(keyword)
	if kw == "" {
		return nil, nil
	}
	qs := []query{{q: fmt.Sprintf(`site:youtube.com "%s" tutorial complete course learn full`, kw), num: 5, label: "youtube"}}
	for _, s := range courseSites {
		qs = append(qs, query{q: fmt.Sprintf(`site:%s "%s" course`, s, kw), num: 2, label: s})
	}
	results, err := c.runAll(ctx, "courses", qs)
	if err != nil {
		return nil, err
	}

	var out []Course
	for _, it := range results[0] {
		if !strings.Contains(it.Link, "youtube.com/watch") {
			continue
		}
		title := cleanCourseTitle(it.Title)
		if str.ContainsAnyOf(strings.ToLower(title), courseWords) || str.ContainsAnyOf(strings.ToLower(it.Snippet), courseWords) {
			out = append(out, Course{Title: title, Platform: "YouTube", URL: it.Link})
			break
		}
	}
	for _, items := range results[1:] {
		for _, it := range items {
			if p := platformOf(hostOf(it.Link)); p != "" {
				out = append(out, Course{Title: cleanCourseTitle(it.Title), Platform: p, URL: it.Link})
			}
		}
	}
	return out, nil
}

func platformOf(host string) string {
	if host == "" {
		return ""
	}
	for _, p := range coursePlatforms {
		if strings.Contains(host, p.host) {
			return p.name
		}
	}
	return ""
}

var courseTitleSuffixes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\s*-\s*(Coursera|Udemy|edX|Khan Academy|LinkedIn Learning|Pluralsight|Codecademy|freeCodeCamp|YouTube|Skillshare).*$`),
	regexp.MustCompile(`\s*\|.*$`),
}

func cleanCourseTitle(t string) string {
	for _, re := range courseTitleSuffixes {
		t = re.ReplaceAllString(t, "")
	}
	return strings.TrimSpace(t)
}
