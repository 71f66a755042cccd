package channel

import (
	"strings"
	"unicode/utf8"

	"campaign-engine/internal/core/domain"
)

// Format limits in runes.
const (
	SocialPostLimit     = 280
	SocialMaxTags       = 5
	EmailSubjectLimit   = 50
	SearchHeadlineLimit = 30
	SearchBodyLimit     = 90
	SearchMaxKeywords   = 10
)

// Format normalises a draft to the limits of its channel.
func Format(d domain.DraftContent) domain.DraftContent {
	d.Headline = strings.TrimSpace(d.Headline)
	d.Body = strings.TrimSpace(d.Body)

	switch d.Channel {
	case domain.ChannelSocial:
		d.Tags = hashtags(d.Tags, SocialMaxTags)
		// the post carries its hashtags
		room := SocialPostLimit
		if len(d.Tags) > 0 {
			room -= utf8.RuneCountInString(strings.Join(d.Tags, " ")) + 1
		}
		d.Body = truncate(d.Body, max(room, 0))
	case domain.ChannelEmail:
		d.Headline = truncate(d.Headline, EmailSubjectLimit)
	case domain.ChannelSearch:
		d.Headline = truncate(d.Headline, SearchHeadlineLimit)
		d.Body = truncate(d.Body, SearchBodyLimit)
		if len(d.Tags) > SearchMaxKeywords {
			d.Tags = d.Tags[:SearchMaxKeywords]
		}
	}
	return d
}

// hashtags prefixes tags with '#', removes blanks and inner spaces and keeps
// at most n unique tags.
func hashtags(tags []string, n int) []string {
	out := make([]string, 0, min(len(tags), n))
	seen := make(map[string]bool, len(tags))
	for _, t := range tags {
		t = strings.Join(strings.Fields(t), "")
		t = strings.TrimLeft(t, "#")
		if t == "" {
			continue
		}
		t = "#" + t
		if seen[strings.ToLower(t)] {
			continue
		}
		seen[strings.ToLower(t)] = true
		out = append(out, t)
		if len(out) == n {
			break
		}
	}
	return out
}

// truncate cuts s to at most n runes, preferring a word boundary.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)[:n]
	if i := strings.LastIndexFunc(string(r), func(c rune) bool { return c == ' ' || c == '\n' }); i > len(string(r))/2 {
		return strings.TrimRight(string(r)[:i], " \n.,;:-")
	}
	return string(r)
}
