package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Origin != DefaultOrigin {
		t.Errorf("expected Origin %s, got %s", DefaultOrigin, cfg.Origin)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("expected Timeout %s, got %s", DefaultTimeout, cfg.Timeout)
	}
	if cfg.OutputJSONFile != DefaultOutputJSONFile {
		t.Errorf("expected OutputJSONFile %s, got %s", DefaultOutputJSONFile, cfg.OutputJSONFile)
	}
	if cfg.ConsistencyRecords != DefaultConsistencyRecords {
		t.Errorf("expected ConsistencyRecords %d, got %d", DefaultConsistencyRecords, cfg.ConsistencyRecords)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		wantErr bool
	}{
		{
			name:    "valid https URL",
			baseURL: "https://example.com/api",
			wantErr: false,
		},
		{
			name:    "valid http URL",
			baseURL: "http://localhost:8000",
			wantErr: false,
		},
		{
			name:    "empty URL",
			baseURL: "",
			wantErr: true,
		},
		{
			name:    "missing scheme",
			baseURL: "example.com/api",
			wantErr: true,
		},
		{
			name:    "wrong scheme",
			baseURL: "ftp://example.com",
			wantErr: true,
		},
		{
			name:    "no host",
			baseURL: "https://",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			cfg.BaseURL = tt.baseURL
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Load_FlagPrecedence(t *testing.T) {
	t.Setenv("APIPROBE_BASE_URL", "https://env.example.com")
	t.Setenv("APIPROBE_ORIGIN", "")
	t.Setenv("APIPROBE_HISTORY_DSN", "")

	cfg := New()
	err := cfg.Load(Flags{
		BaseURL: "https://flag.example.com",
		Timeout: 5 * time.Second,
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.BaseURL != "https://flag.example.com" {
		t.Errorf("flag should override env, got %s", cfg.BaseURL)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("expected timeout 5s, got %s", cfg.Timeout)
	}
}

func TestConfig_Load_Env(t *testing.T) {
	t.Setenv("APIPROBE_BASE_URL", "https://env.example.com")
	t.Setenv("APIPROBE_ORIGIN", "https://origin.example.com")
	t.Setenv("APIPROBE_HISTORY_DSN", "user:pass@tcp(127.0.0.1:3306)/probe")

	cfg := New()
	if err := cfg.Load(Flags{}); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.BaseURL != "https://env.example.com" {
		t.Errorf("expected env base URL, got %s", cfg.BaseURL)
	}
	if cfg.Origin != "https://origin.example.com" {
		t.Errorf("expected env origin, got %s", cfg.Origin)
	}
	if cfg.HistoryDSN == "" {
		t.Error("expected history DSN from env")
	}
}

func TestConfig_LoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "apiprobe.yaml")
	content := `base_url: https://file.example.com
origin: https://file-origin.example.com
timeout_seconds: 10
output:
  dir: reports
  file: last-run.json
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("APIPROBE_BASE_URL", "")
	t.Setenv("APIPROBE_ORIGIN", "")
	t.Setenv("APIPROBE_HISTORY_DSN", "")

	cfg := New()
	if err := cfg.Load(Flags{ConfigFile: path}); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.BaseURL != "https://file.example.com" {
		t.Errorf("expected file base URL, got %s", cfg.BaseURL)
	}
	if cfg.Origin != "https://file-origin.example.com" {
		t.Errorf("expected file origin, got %s", cfg.Origin)
	}
	if cfg.Timeout != 10*time.Second {
		t.Errorf("expected 10s timeout, got %s", cfg.Timeout)
	}
	if cfg.OutputJSONDir != "reports" || cfg.OutputJSONFile != "last-run.json" {
		t.Errorf("expected output overrides, got %s/%s", cfg.OutputJSONDir, cfg.OutputJSONFile)
	}
}

func TestConfig_Load_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "apiprobe.yaml")
	content := `base_url: https://file.example.com
origin: https://file-origin.example.com
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("APIPROBE_BASE_URL", "https://env.example.com")
	t.Setenv("APIPROBE_ORIGIN", "")
	t.Setenv("APIPROBE_HISTORY_DSN", "")

	cfg := New()
	if err := cfg.Load(Flags{ConfigFile: path}); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.BaseURL != "https://env.example.com" {
		t.Errorf("env should override file, got %s", cfg.BaseURL)
	}
	// Values only the file sets still come from the file.
	if cfg.Origin != "https://file-origin.example.com" {
		t.Errorf("expected file origin, got %s", cfg.Origin)
	}
}

func TestConfig_LoadFile_MissingExplicit(t *testing.T) {
	cfg := New()
	err := cfg.Load(Flags{ConfigFile: filepath.Join(t.TempDir(), "nope.yaml")})
	if err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestConfig_GetOutputPath(t *testing.T) {
	cfg := New()

	path := cfg.GetOutputPath()
	if !filepath.IsAbs(path) {
		t.Errorf("expected absolute path, got %s", path)
	}
	if filepath.Base(path) != DefaultOutputJSONFile {
		t.Errorf("expected file %s, got %s", DefaultOutputJSONFile, filepath.Base(path))
	}
}
