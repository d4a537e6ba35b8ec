package common

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "FRONTEND_PATH", "SHUTDOWN_TIMEOUT",
		"GCP_PROJECT", "GOOGLE_CLOUD_PROJECT", "BUCKET_NAME",
		"GEMINI_MODEL", "GEMINI_API_KEY", "GEMINI_TEMPERATURE",
		"GEMINI_MAX_OUTPUT_TOKENS", "GEMINI_TIMEOUT",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Server.Addr)
	}
	if cfg.LLM.Model != "models/gemini-2.5-flash" {
		t.Errorf("Model = %q", cfg.LLM.Model)
	}
	if cfg.LLM.MaxOutputTokens != 1500 {
		t.Errorf("MaxOutputTokens = %d, want 1500", cfg.LLM.MaxOutputTokens)
	}
	if cfg.LLM.Timeout != 45*time.Second {
		t.Errorf("Timeout = %v, want 45s", cfg.LLM.Timeout)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("GCP_PROJECT", "proj-1")
	t.Setenv("BUCKET_NAME", "bucket-1")
	t.Setenv("GEMINI_TEMPERATURE", "0.7")
	t.Setenv("GEMINI_TIMEOUT", "90s")

	cfg := LoadConfig()
	if cfg.Server.Addr != ":9090" {
		t.Errorf("Addr = %q", cfg.Server.Addr)
	}
	if cfg.GCP.ProjectID != "proj-1" || cfg.GCP.BucketName != "bucket-1" {
		t.Errorf("GCP = %+v", cfg.GCP)
	}
	if cfg.LLM.Temperature != 0.7 {
		t.Errorf("Temperature = %v", cfg.LLM.Temperature)
	}
	if cfg.LLM.Timeout != 90*time.Second {
		t.Errorf("Timeout = %v", cfg.LLM.Timeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestLoadConfigProjectFallback(t *testing.T) {
	t.Setenv("GCP_PROJECT", "")
	t.Setenv("GOOGLE_CLOUD_PROJECT", "ambient-proj")
	if cfg := LoadConfig(); cfg.GCP.ProjectID != "ambient-proj" {
		t.Errorf("ProjectID = %q, want ambient-proj", cfg.GCP.ProjectID)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := &Config{Server: ServerConfig{Addr: ":8080"}}
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() = nil, want bucket error")
	}
	cfg.GCP.BucketName = "b"
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() = nil, want project error")
	}
	cfg.GCP.ProjectID = "p"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}
