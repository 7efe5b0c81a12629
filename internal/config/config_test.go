package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "commune.toml")
	content := `
domain = "local.example"
local_domains = ["alias.example"]

[db]
pool_size = 3

[federation]
fetch_timeout = "2s"
duplicate_follow = "reject"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("COMMUNE_FEDERATION_USER_AGENT", "commune-test")

	cfg, err := ReadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if cfg.Domain != "local.example" {
		t.Errorf("unexpected domain %q", cfg.Domain)
	}
	if cfg.DB.PoolSize != 3 {
		t.Errorf("expected pool size 3, got %d", cfg.DB.PoolSize)
	}
	if cfg.DB.AcquireTimeout != 5*time.Second {
		t.Errorf("expected default acquire timeout, got %s", cfg.DB.AcquireTimeout)
	}
	if cfg.Federation.FetchTimeout != 2*time.Second {
		t.Errorf("expected fetch timeout 2s, got %s", cfg.Federation.FetchTimeout)
	}
	if cfg.Federation.DuplicateFollow != DuplicateFollowReject {
		t.Errorf("unexpected duplicate follow policy %q", cfg.Federation.DuplicateFollow)
	}
	if cfg.Federation.UserAgent != "commune-test" {
		t.Errorf("environment override not applied, got %q", cfg.Federation.UserAgent)
	}
}

func TestIsLocal(t *testing.T) {
	cfg := Configuration{Domain: "local.example", LocalDomains: []string{"Alias.example"}}
	cases := map[string]bool{
		"local.example":  true,
		"LOCAL.example":  true,
		"alias.example":  true,
		"remote.example": false,
		"":               false,
	}
	for host, expected := range cases {
		if got := cfg.IsLocal(host); got != expected {
			t.Errorf("IsLocal(%q) = %t, expected %t", host, got, expected)
		}
	}
}

func TestValidate(t *testing.T) {
	valid := func() Configuration {
		return Configuration{
			Domain: "local.example",
			DB:     DBConfig{PoolSize: 4, AcquireTimeout: time.Second},
			Federation: FederationConfig{
				FetchTimeout:    time.Second,
				DuplicateFollow: DuplicateFollowIgnore,
			},
		}
	}

	cases := []struct {
		name   string
		modify func(c *Configuration)
		key    string
	}{
		{"no domain", func(c *Configuration) { c.Domain = "" }, "domain"},
		{"empty pool", func(c *Configuration) { c.DB.PoolSize = 0 }, "db.pool_size"},
		{"no acquire timeout", func(c *Configuration) { c.DB.AcquireTimeout = 0 }, "db.acquire_timeout"},
		{"no fetch timeout", func(c *Configuration) { c.Federation.FetchTimeout = 0 }, "federation.fetch_timeout"},
		{"unknown duplicate policy", func(c *Configuration) { c.Federation.DuplicateFollow = "upsert" }, "federation.duplicate_follow"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := valid()
			c.modify(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation to fail")
			}
			if !strings.Contains(err.Error(), c.key) {
				t.Errorf("expected an error about %s, got %q", c.key, err)
			}
		})
	}

	cfg := valid()
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %s", err)
	}
}
