package llm

import (
	"errors"
	"testing"
)

// clearProviderEnv blanks every env var DiscoverConfig and
// ConfigFromEnv read, so tests see only what they set themselves.
func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"INTERVET_LLM_PROVIDER",
		"GROQ_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "GEMINI_API_KEY",
		"INTERVET_GROQ_MODEL",
		"INTERVET_OPENAI_API_KEY", "INTERVET_OPENAI_MODEL", "INTERVET_OPENAI_BASE_URL",
		"INTERVET_ANTHROPIC_API_KEY", "INTERVET_ANTHROPIC_MODEL",
		"INTERVET_GEMINI_API_KEY", "INTERVET_GEMINI_MODEL",
	} {
		t.Setenv(k, "")
	}
}

func TestDiscoverConfig_ExplicitProviderWins(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("INTERVET_LLM_PROVIDER", "openai")
	t.Setenv("INTERVET_OPENAI_API_KEY", "sk-test")
	t.Setenv("INTERVET_OPENAI_MODEL", "gpt-4o")
	// A Groq key alone would normally win discovery.
	t.Setenv("GROQ_API_KEY", "gsk-test")

	cfg, err := DiscoverConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Provider != "openai" {
		t.Fatalf("provider = %q, want openai", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" {
		t.Errorf("api key = %q, want sk-test", cfg.OpenAI.APIKey)
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("model = %q, want gpt-4o", cfg.OpenAI.Model)
	}
}

func TestDiscoverConfig_ExplicitProviderMissingKey(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("INTERVET_LLM_PROVIDER", "anthropic")

	if _, err := DiscoverConfig(); err == nil {
		t.Fatal("expected validation error for missing API key")
	}
}

func TestDiscoverConfig_ProbesKeysInOrder(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("GROQ_API_KEY", "gsk-test")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := DiscoverConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Provider != "groq" {
		t.Fatalf("provider = %q, want groq", cfg.Provider)
	}
	if cfg.Groq.Model != "llama-3.3-70b-versatile" {
		t.Errorf("model = %q, want default", cfg.Groq.Model)
	}
}

func TestDiscoverConfig_NothingConfigured(t *testing.T) {
	clearProviderEnv(t)

	_, err := DiscoverConfig()
	if !errors.Is(err, ErrNoProvider) {
		t.Fatalf("error = %v, want ErrNoProvider", err)
	}
}
