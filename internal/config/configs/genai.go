package configs

// GenAI configures the LLM content generator.
type GenAI struct {
	APIKey string `env:"API_KEY"`
	Model  string `env:"MODEL" envDefault:"gemini-2.0-flash"`
}
