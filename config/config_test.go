package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"rateLimit": map[string]any{
			"auth": map[string]any{
				"requestsPerMinute": 20,
			},
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "RATELIMIT_AUTH_REQUESTSPERMINUTE", want: "rateLimit.auth.requestsPerMinute"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.SecretKey.Access = "secret"
	cfg.Metrics = &MetricsConfig{Enabled: true}

	if err := cfg.applyDefaults(); err != nil {
		t.Fatalf("applyDefaults() error = %v", err)
	}
	if cfg.HTTP.MaxRequestBodySize != defaultMaxRequestBodySize {
		t.Fatalf("MaxRequestBodySize = %q, want %q", cfg.HTTP.MaxRequestBodySize, defaultMaxRequestBodySize)
	}
	if cfg.Auth.AccessTokenTTL != defaultAccessTokenTTL {
		t.Fatalf("AccessTokenTTL = %v, want %v", cfg.Auth.AccessTokenTTL, defaultAccessTokenTTL)
	}
	if cfg.Policy.TagCreate != "authenticated" {
		t.Fatalf("Policy.TagCreate = %q, want authenticated", cfg.Policy.TagCreate)
	}
	if cfg.Database.SlowQueryThreshold != defaultSlowQuery || cfg.Database.PoolMonitorInterval != defaultPoolMonitor {
		t.Fatalf("Database = %+v, want defaults", *cfg.Database)
	}
	if cfg.Metrics.Path != defaultMetricsPath {
		t.Fatalf("Metrics.Path = %q, want %q", cfg.Metrics.Path, defaultMetricsPath)
	}
}

func TestApplyDefaults_Rejects(t *testing.T) {
	t.Run("missing secret", func(t *testing.T) {
		cfg := &Config{}
		if err := cfg.applyDefaults(); err == nil {
			t.Fatal("applyDefaults() expected error for empty secret")
		}
	})

	t.Run("unknown tag policy", func(t *testing.T) {
		cfg := &Config{Policy: &PolicyConfig{TagCreate: "everyone"}}
		cfg.SecretKey.Access = "secret"
		if err := cfg.applyDefaults(); err == nil {
			t.Fatal("applyDefaults() expected error for unknown tag policy")
		}
	})
}

func TestLoadWithEnv_OverridesFileValues(t *testing.T) {
	dir := t.TempDir()
	yaml := "secretKey:\n  access: from-file\nrateLimit:\n  auth:\n    requestsPerMinute: 20\ndatabase:\n  slowQueryThreshold: 1s\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Chdir(dir)
	t.Setenv("SECRETKEY_ACCESS", "from-env")
	t.Setenv("RATELIMIT_AUTH_REQUESTSPERMINUTE", "7")

	cfg, err := LoadWithEnv[Config]("config")
	if err != nil {
		t.Fatalf("LoadWithEnv() error = %v", err)
	}
	if cfg.SecretKey.Access != "from-env" {
		t.Fatalf("SecretKey.Access = %q, want from-env", cfg.SecretKey.Access)
	}
	if cfg.RateLimit.Auth.RequestsPerMinute != 7 {
		t.Fatalf("RequestsPerMinute = %d, want 7", cfg.RateLimit.Auth.RequestsPerMinute)
	}
	if cfg.Database.SlowQueryThreshold != time.Second {
		t.Fatalf("SlowQueryThreshold = %v, want 1s", cfg.Database.SlowQueryThreshold)
	}
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	if _, err := LoadWithEnv[Config]("config"); err == nil {
		t.Fatal("LoadWithEnv() expected error when no config file exists")
	}
}

func TestReplicasFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica-a")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5433")
	t.Setenv("POSTGRES_REPLICAS_0_USERNAME", "reader")
	t.Setenv("POSTGRES_REPLICAS_1_HOST", "replica-b")

	replicas := replicasFromEnv()
	if len(replicas) != 1 {
		t.Fatalf("len(replicas) = %d, want 1", len(replicas))
	}
	if replicas[0].Host != "replica-a" || replicas[0].Port != "5433" || replicas[0].UserName != "reader" {
		t.Fatalf("replica = %+v", replicas[0])
	}
}
