package config

const (
	DefaultHost        = "0.0.0.0"
	DefaultPort        = 7860
	DefaultEnvironment = "development"
	DefaultAPIPrefix   = "/api/v1"
	DefaultLogLevel    = "info"

	DefaultRateLimitPerMinute = 60

	DefaultProvider  = "groq"
	DefaultGroqModel = "llama-3.1-8b-instant"

	DefaultAgentTimeout  = 120 // seconds
	DefaultMaxIterations = 10
	DefaultMaxTokens     = 4096
)

var DefaultCORSOrigins = []string{
	"http://localhost:3000",
	"http://localhost:7860",
}
