package explain

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/bitop-dev/explain/gemini"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const DefaultEnvFile = ".env"

const (
	keyGoogleAPIKey = "google_api_key"
	keyGeminiAPIKey = "gemini_api_key"
	keyBaseURL      = "gemini_base_url"
	keyLogLevel     = "explain_log_level"
)

var envBindings = map[string]string{
	keyGoogleAPIKey: "GOOGLE_API_KEY",
	keyGeminiAPIKey: "GEMINI_API_KEY",
	keyBaseURL:      "GEMINI_BASE_URL",
	keyLogLevel:     "EXPLAIN_LOG_LEVEL",
}

// credentialKeys is the lookup order within one source. GOOGLE_API_KEY comes
// first, matching the genai SDK when both are set.
var credentialKeys = []string{keyGoogleAPIKey, keyGeminiAPIKey}

type Config struct {
	APIKey   string
	BaseURL  string
	LogLevel string

	// EnvFile is the file that was consulted; EnvFileLoaded is false when it
	// did not exist.
	EnvFile       string
	EnvFileLoaded bool
}

// LoadConfig resolves configuration from the process environment, falling
// back to values in envFile. A value set in the environment always beats the
// file, whichever name carries it. The environment is never modified and a
// missing envFile is not an error.
func LoadConfig(envFile string) (Config, error) {
	env := viper.New()
	for key, name := range envBindings {
		if err := env.BindEnv(key, name); err != nil {
			return Config{}, fmt.Errorf("bind %s: %w", name, err)
		}
	}

	file := viper.New()
	cfg := Config{EnvFile: envFile}
	if envFile != "" {
		values, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			m := make(map[string]any, len(values))
			for k, val := range values {
				m[k] = val
			}
			if err := file.MergeConfigMap(m); err != nil {
				return Config{}, fmt.Errorf("load %s: %w", envFile, err)
			}
			cfg.EnvFileLoaded = true
		case errors.Is(err, fs.ErrNotExist):
		default:
			return Config{}, fmt.Errorf("read %s: %w", envFile, err)
		}
	}

	sources := []*viper.Viper{env, file}
	cfg.APIKey = lookup(sources, credentialKeys...)
	cfg.BaseURL = lookup(sources, keyBaseURL)
	cfg.LogLevel = lookup(sources, keyLogLevel)
	return cfg, nil
}

// lookup returns the first non-blank value, walking sources in order and
// keys in order within each source.
func lookup(sources []*viper.Viper, keys ...string) string {
	for _, src := range sources {
		for _, key := range keys {
			if v := strings.TrimSpace(src.GetString(key)); v != "" {
				return v
			}
		}
	}
	return ""
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return &Error{
			Provider: gemini.ProviderName,
			Code:     CodeMissingCredential,
			Message:  "GEMINI_API_KEY not found; set it in the environment or in a .env file",
		}
	}
	return nil
}
