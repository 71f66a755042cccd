package compliance

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Rules are the brand guardrails applied to every draft.
type Rules struct {
	// BannedPhrases are matched case-insensitively anywhere in the text.
	BannedPhrases []string `yaml:"banned_phrases"`
	// Patterns are regular expressions that must not match.
	Patterns []Pattern `yaml:"patterns"`
	// MaxExclamations bounds '!' in the body. Zero disables the check.
	MaxExclamations int `yaml:"max_exclamations"`
	// HeadlineMaxExclamations bounds '!' in the headline or subject line.
	HeadlineMaxExclamations int `yaml:"headline_max_exclamations"`
	// MaxLength bounds the full text per channel, in runes.
	MaxLength map[string]int `yaml:"max_length"`
}

type Pattern struct {
	Name  string `yaml:"name"`
	Regex string `yaml:"regex"`
}

// DefaultRules are used when no rules file is configured.
func DefaultRules() Rules {
	return Rules{
		BannedPhrases: []string{
			"guaranteed results",
			"100% guaranteed",
			"risk-free",
			"miracle cure",
			"get rich",
			"no questions asked",
			"act now or",
		},
		Patterns: []Pattern{
			{Name: "shouting", Regex: `\b[A-Z]{8,}\b`},
			{Name: "repeated punctuation", Regex: `[!?]{3,}`},
		},
		MaxExclamations:         3,
		HeadlineMaxExclamations: 1,
		MaxLength: map[string]int{
			"social": 320,
			"search": 130,
		},
	}
}

// LoadRules reads rules from a YAML file. An empty path returns the
// defaults.
func LoadRules(path string) (Rules, error) {
	if path == "" {
		return DefaultRules(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("read rules file: %w", err)
	}
	return ParseRules(data)
}

func ParseRules(data []byte) (Rules, error) {
	var rules Rules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return Rules{}, fmt.Errorf("parse rules: %w", err)
	}
	if err := rules.validate(); err != nil {
		return Rules{}, err
	}
	return rules, nil
}

func (r Rules) validate() error {
	var errs []error
	for i, p := range r.BannedPhrases {
		if strings.TrimSpace(p) == "" {
			errs = append(errs, fmt.Errorf("banned_phrases[%d] is empty", i))
		}
	}
	for _, p := range r.Patterns {
		if _, err := regexp.Compile(p.Regex); err != nil {
			errs = append(errs, fmt.Errorf("pattern %q: %w", p.Name, err))
		}
	}
	if r.MaxExclamations < 0 || r.HeadlineMaxExclamations < 0 {
		errs = append(errs, errors.New("exclamation limits must not be negative"))
	}
	return errors.Join(errs...)
}
