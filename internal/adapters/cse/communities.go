package cse

import (
	"cmp"
	"context"
	"fmt"
	"regexp"
	"slices"
	"strings"

	str "careerassist/internal/platform/strings"
)

// SentinelCommunities prefixes a community listing payload
const SentinelCommunities = "/community"

// Relevance is kept in tenths so thresholds compare exactly
const (
	keepScore        = 5
	showScore        = 6
	perPlatform      = 2
	maxCommunities   = 5
	communityResults = 5
)

// Community is one recommended group
type Community struct {
	Title     string  `json:"title"`
	Platform  string  `json:"platform"`
	URL       string  `json:"url"`
	Relevance float64 `json:"relevance"`

	score int
}

type communityPlatform struct {
	name  string
	query string
	valid func(host, link string) bool
	bonus func(title, snippet, rawTitle string) int
}

func mentions(title, snippet, word string) bool {
	return strings.Contains(title, word) || strings.Contains(snippet, word)
}

func oneIf(b bool) int {
	if b {
		return 1
	}
	return 0
}

var communityPlatforms = []communityPlatform{
	{
		name:  "Discord",
		query: `site:discord.gg OR site:discord.com/invite "%[1]s" OR %[1]s community server discord`,
		valid: func(host, _ string) bool {
			return str.ContainsAnyOf(host, []string{"discord.gg", "discord.com", "discordapp.com"})
		},
		bonus: func(t, s, _ string) int { return oneIf(mentions(t, s, "server")) + oneIf(mentions(t, s, "discord")) },
	},
	{
		name:  "Reddit",
		query: `site:reddit.com/r/ "%[1]s" OR %[1]s subreddit community`,
		valid: func(host, link string) bool {
			return strings.Contains(host, "reddit.com") && (strings.Contains(link, "/r/") || strings.Contains(link, "/subreddit/"))
		},
		bonus: func(t, s, raw string) int { return oneIf(mentions(t, s, "subreddit")) + oneIf(strings.HasPrefix(raw, "r/")) },
	},
	{
		name:  "Facebook",
		query: `site:facebook.com/groups "%[1]s" OR %[1]s facebook group community`,
		valid: func(host, link string) bool {
			return strings.Contains(host, "facebook.com") && strings.Contains(link, "/groups/")
		},
		bonus: func(t, s, _ string) int { return oneIf(mentions(t, s, "group")) },
	},
	{
		name:  "LinkedIn",
		query: `site:linkedin.com/groups "%[1]s" OR %[1]s linkedin group professional`,
		valid: func(host, link string) bool {
			return strings.Contains(host, "linkedin.com") && strings.Contains(link, "/groups/")
		},
		bonus: func(t, s, _ string) int { return oneIf(mentions(t, s, "professional")) + oneIf(mentions(t, s, "group")) },
	},
	{
		name:  "Telegram",
		query: `site:t.me OR site:telegram.me "%[1]s" OR %[1]s telegram group channel`,
		valid: func(host, _ string) bool {
			return host == "t.me" || str.ContainsAnyOf(host, []string{"telegram.me", "telegram.org"})
		},
		bonus: func(t, s, _ string) int { return oneIf(mentions(t, s, "channel")) + oneIf(mentions(t, s, "telegram")) },
	},
}

var (
	communityWords = []string{"community", "group", "forum", "discussion", "developers", "programming", "coding", "support", "help", "learn"}
	spamWords      = []string{"buy", "sell", "cheap", "free download", "click here", "advertisement"}
)

// SearchCommunities returns the sentinel line followed by "title:platform:url" lines, or "" when nothing matched
func (c *Client) SearchCommunities(ctx context.Context, keyword string) (string, error) {
	cs, err := c.Communities(ctx, keyword)
	if err != nil || len(cs) == 0 {
		return "", err
	}
	var b strings.Builder
	b.WriteString(SentinelCommunities)
	for _, cm := range cs {
		fmt.Fprintf(&b, "\n%s:%s:%s", cm.Title, cm.Platform, cm.URL)
	}
	return b.String(), nil
}

// Communities scores results per platform, keeps the two best of each, and returns the top five overall
func (c *Client) Communities(ctx context.Context, keyword string) ([]Community, error) {
	kw := strings.TrimSpace(keyword)
	if kw == "" {
		return nil, nil
	}
	qs := make([]query, len(communityPlatforms))
	for i, p := range communityPlatforms {
		qs[i] = query{q: fmt.Sprintf(p.query, kw), num: communityResults, label: strings.ToLower(p.name)}
	}
	results, err := c.runAll(ctx, "communities", qs)
	if err != nil {
		return nil, err
	}

	var all []Community
	for i, items := range results {
		p := communityPlatforms[i]
		var found []Community
		for _, it := range items {
			if !p.valid(hostOf(it.Link), it.Link) {
				continue
			}
			s := relevance(p, it, kw)
			if s < keepScore {
				continue
			}
			found = append(found, Community{Title: cleanCommunityTitle(it.Title), Platform: p.name, URL: it.Link, Relevance: float64(s) / 10, score: s})
		}
		byScore(found)
		all = append(all, found[:min(perPlatform, len(found))]...)
	}

	byScore(all)
	out := all[:0]
	for _, cm := range all {
		if cm.score >= showScore {
			out = append(out, cm)
		}
	}
	return out[:min(maxCommunities, len(out))], nil
}

func byScore(cs []Community) {
	slices.SortStableFunc(cs, func(a, b Community) int { return cmp.Compare(b.score, a.score) })
}

// relevance scores in tenths: title 4, snippet 2, community words 1 each up to 3,
// platform bonuses, minus 2 per spam word, clamped to [0, 10]
func relevance(p communityPlatform, it Item, kw string) int {
	t, s, k := strings.ToLower(it.Title), strings.ToLower(it.Snippet), strings.ToLower(kw)
	score := 4*oneIf(strings.Contains(t, k)) + 2*oneIf(strings.Contains(s, k))
	words := 0
	for _, w := range communityWords {
		words += oneIf(mentions(t, s, w))
	}
	score += min(words, 3)
	score += p.bonus(t, s, it.Title)
	for _, w := range spamWords {
		score -= 2 * oneIf(mentions(t, s, w))
	}
	return max(0, min(10, score))
}

var communityTitleSuffixes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\s*-\s*(Discord|Reddit|Facebook|LinkedIn|Telegram).*$`),
	regexp.MustCompile(`\s*\|.*$`),
	regexp.MustCompile(`\s*:.*$`),
	regexp.MustCompile(`^r/`),
	regexp.MustCompile(`\s*\(\d+\)$`),
}

func cleanCommunityTitle(t string) string {
	c := t
	for _, re := range communityTitleSuffixes {
		c = re.ReplaceAllString(c, "")
	}
	c = strings.TrimSpace(c)
	if len(c) < 3 {
		return strings.TrimSpace(t)
	}
	return c
}
