// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"testing"
)

func TestParseFlags_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3000 {
		t.Errorf("expected default port 3000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected default type sqlite, got %s", cfg.DatabaseType)
	}
	if cfg.DatabaseURL != "aorb.db" {
		t.Errorf("expected default URL aorb.db, got %s", cfg.DatabaseURL)
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	// Set env vars
	os.Setenv("PORT", "9000")
	os.Setenv("DATABASE_TYPE", "postgres")
	os.Setenv("DATABASE_URL", "postgres://test")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "postgres" {
		t.Errorf("expected type postgres, got %s", cfg.DatabaseType)
	}
	if cfg.DatabaseURL != "postgres://test" {
		t.Errorf("expected URL postgres://test, got %s", cfg.DatabaseURL)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("DATABASE_URL", "env.db")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "cli.db"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "cli.db" {
		t.Errorf("CLI should override env: expected cli.db, got %s", cfg.DatabaseURL)
	}
}

func TestParseFlags_InvalidType(t *testing.T) {
	os.Clearenv()

	if _, err := ParseFlags([]string{"-t", "mysql"}); err == nil {
		t.Error("expected error for unsupported database type")
	}
}

func TestParseFlags_PostgresRequiresURL(t *testing.T) {
	os.Clearenv()

	if _, err := ParseFlags([]string{"-t", "postgres"}); err == nil {
		t.Error("expected error when postgres has no database URL")
	}
}

func TestParseFlags_InvalidPortEnv(t *testing.T) {
	os.Setenv("PORT", "not-a-port")
	defer os.Clearenv()

	if _, err := ParseFlags([]string{}); err == nil {
		t.Error("expected error for malformed PORT")
	}
}
