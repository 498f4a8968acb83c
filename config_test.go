package tracker

import (
	"os"
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	// t.Setenv registers the restore; the variables must be absent, not
	// empty, for envDefault to apply.
	for _, key := range []string{"ALPHA_VANTAGE_API_KEY", "PORTFOLIO_FILE", "QUOTE_TIMEOUT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if cfg.PortfolioFile != "portfolio.json" {
		t.Errorf("portfolio file = %q, want portfolio.json", cfg.PortfolioFile)
	}
	if cfg.QuoteTimeout != 10*time.Second {
		t.Errorf("quote timeout = %v, want 10s", cfg.QuoteTimeout)
	}
	if cfg.APIKey != "" {
		t.Errorf("api key = %q, want empty", cfg.APIKey)
	}
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("ALPHA_VANTAGE_API_KEY", "secret")
	t.Setenv("PORTFOLIO_FILE", "/tmp/p.json")
	t.Setenv("QUOTE_TIMEOUT", "3s")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if cfg.APIKey != "secret" || cfg.PortfolioFile != "/tmp/p.json" || cfg.QuoteTimeout != 3*time.Second {
		t.Errorf("config = %+v, want values from environment", cfg)
	}
}
