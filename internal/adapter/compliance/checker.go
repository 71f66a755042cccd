package compliance

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	"campaign-engine/internal/core/domain"
)

type compiledPattern struct {
	name string
	re   *regexp.Regexp
}

// Checker validates drafts against Rules. It is safe for concurrent use.
type Checker struct {
	rules    Rules
	banned   []string
	patterns []compiledPattern
	logger   *slog.Logger
}

func NewChecker(rules Rules, logger *slog.Logger) (*Checker, error) {
	if err := rules.validate(); err != nil {
		return nil, err
	}
	c := &Checker{rules: rules, logger: logger.With(slog.String("component", "compliance"))}
	for _, p := range rules.BannedPhrases {
		c.banned = append(c.banned, strings.ToLower(strings.TrimSpace(p)))
	}
	for _, p := range rules.Patterns {
		c.patterns = append(c.patterns, compiledPattern{name: p.Name, re: regexp.MustCompile(p.Regex)})
	}
	return c, nil
}

func (c *Checker) Check(ctx context.Context, draft domain.DraftContent) (domain.ComplianceVerdict, error) {
	if err := ctx.Err(); err != nil {
		return domain.ComplianceVerdict{}, err
	}

	var violations []string
	text := draft.Text()
	lower := strings.ToLower(text)

	for _, phrase := range c.banned {
		if strings.Contains(lower, phrase) {
			violations = append(violations, fmt.Sprintf("banned phrase %q", phrase))
		}
	}
	for _, p := range c.patterns {
		if m := p.re.FindString(text); m != "" {
			violations = append(violations, fmt.Sprintf("%s: %q", p.name, m))
		}
	}
	if n := c.rules.HeadlineMaxExclamations; n > 0 && strings.Count(draft.Headline, "!") > n {
		violations = append(violations, fmt.Sprintf("headline has more than %d exclamation marks", n))
	}
	if n := c.rules.MaxExclamations; n > 0 && strings.Count(draft.Body, "!") > n {
		violations = append(violations, fmt.Sprintf("body has more than %d exclamation marks", n))
	}
	if n, ok := c.rules.MaxLength[string(draft.Channel)]; ok && n > 0 && utf8.RuneCountInString(text) > n {
		violations = append(violations, fmt.Sprintf("text longer than %d characters", n))
	}

	if len(violations) == 0 {
		return domain.ComplianceVerdict{Approved: true}, nil
	}
	c.logger.Info("draft rejected",
		slog.String("campaign_id", draft.CampaignID.String()),
		slog.String("channel", string(draft.Channel)),
		slog.Int("violations", len(violations)))
	return domain.ComplianceVerdict{
		Reason:     fmt.Sprintf("%d guardrail violation(s)", len(violations)),
		Violations: violations,
	}, nil
}
