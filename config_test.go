package explain

import (
	"os"
	"path/filepath"
	"testing"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, env := range envBindings {
		t.Setenv(env, "")
	}
}

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig_FromEnvFile(t *testing.T) {
	clearConfigEnv(t)
	path := writeEnvFile(t, "# local secrets\nGEMINI_API_KEY=file-key\nGEMINI_BASE_URL=http://localhost:9999/\nEXPLAIN_LOG_LEVEL=debug\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.APIKey != "file-key" {
		t.Fatalf("APIKey=%q", cfg.APIKey)
	}
	if cfg.BaseURL != "http://localhost:9999/" {
		t.Fatalf("BaseURL=%q", cfg.BaseURL)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel=%q", cfg.LogLevel)
	}
	if !cfg.EnvFileLoaded || cfg.EnvFile != path {
		t.Fatalf("EnvFile=%q loaded=%v", cfg.EnvFile, cfg.EnvFileLoaded)
	}
	if os.Getenv("GEMINI_API_KEY") != "" {
		t.Fatalf("LoadConfig must not modify the process environment")
	}
}

func TestLoadConfig_EnvironmentWins(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("GEMINI_API_KEY", "env-key")
	path := writeEnvFile(t, "GEMINI_API_KEY=file-key\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.APIKey != "env-key" {
		t.Fatalf("APIKey=%q", cfg.APIKey)
	}
}

func TestLoadConfig_GoogleAPIKeyFromEnv(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("GOOGLE_API_KEY", "google-key")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.APIKey != "google-key" {
		t.Fatalf("APIKey=%q", cfg.APIKey)
	}
	if cfg.EnvFileLoaded {
		t.Fatalf("missing file reported as loaded")
	}
}

func TestLoadConfig_MissingEverything(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), ".env"))
	if err != nil {
		t.Fatal(err)
	}
	err = cfg.Validate()
	if !IsAuth(err) {
		t.Fatalf("expected auth error, got %v", err)
	}
}

func TestLoadConfig_NoEnvFile(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("GEMINI_API_KEY", " padded ")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.APIKey != "padded" {
		t.Fatalf("APIKey=%q", cfg.APIKey)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestLoadConfig_UnreadableEnvFile(t *testing.T) {
	clearConfigEnv(t)

	// A directory cannot be read as a file.
	if _, err := LoadConfig(t.TempDir()); err == nil {
		t.Fatalf("expected error")
	}
}

func TestLoadConfig_CredentialPrecedence(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		envFile string
		want    string
	}{
		{
			name:    "env google key beats file gemini key",
			env:     map[string]string{"GOOGLE_API_KEY": "env-google-key"},
			envFile: "GEMINI_API_KEY=stale-file-key\n",
			want:    "env-google-key",
		},
		{
			name:    "env gemini key beats file google key",
			env:     map[string]string{"GEMINI_API_KEY": "env-gemini-key"},
			envFile: "GOOGLE_API_KEY=stale-file-key\n",
			want:    "env-gemini-key",
		},
		{
			name: "both in env uses google key",
			env:  map[string]string{"GOOGLE_API_KEY": "google", "GEMINI_API_KEY": "gemini"},
			want: "google",
		},
		{
			name:    "both in file uses google key",
			envFile: "GEMINI_API_KEY=gemini\nGOOGLE_API_KEY=google\n",
			want:    "google",
		},
		{
			name:    "file only",
			envFile: "GEMINI_API_KEY=file-key\n",
			want:    "file-key",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := writeEnvFile(t, tt.envFile)

			cfg, err := LoadConfig(path)
			if err != nil {
				t.Fatal(err)
			}
			if cfg.APIKey != tt.want {
				t.Fatalf("APIKey=%q want %q", cfg.APIKey, tt.want)
			}
		})
	}
}

func TestLoadConfig_EnvironmentWinsForSettings(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("GEMINI_BASE_URL", "http://env.example/")
	path := writeEnvFile(t, "GEMINI_BASE_URL=http://file.example/\nEXPLAIN_LOG_LEVEL=info\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BaseURL != "http://env.example/" {
		t.Fatalf("BaseURL=%q", cfg.BaseURL)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("LogLevel=%q", cfg.LogLevel)
	}
}
