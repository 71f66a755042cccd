package configs

// Compliance configures the brand guardrail checker.
type Compliance struct {
	// RulesFile is a YAML guardrail file. Empty uses the built-in rules.
	RulesFile string `env:"RULES_FILE"`
}
