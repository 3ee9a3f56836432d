package secrets

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPrefersFileOverEnvAndValue(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	if err := os.WriteFile(path, []byte("  from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("RM_TEST_TOKEN", "from-env")

	secret, err := Load(Source{
		Name:  "api token",
		File:  path,
		Env:   "RM_TEST_TOKEN",
		Value: "from-value",
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if secret != "from-file" {
		t.Fatalf("expected trimmed file content, got %q", secret)
	}
}

func TestLoadFallsBackToEnvThenValue(t *testing.T) {
	t.Setenv("RM_TEST_TOKEN", "from-env")

	secret, err := Load(Source{Name: "api token", Env: "RM_TEST_TOKEN", Value: "from-value"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if secret != "from-env" {
		t.Fatalf("expected env value, got %q", secret)
	}

	t.Setenv("RM_TEST_TOKEN", "")
	secret, err = Load(Source{Name: "api token", Env: "RM_TEST_TOKEN", Value: "from-value"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if secret != "from-value" {
		t.Fatalf("expected inline value, got %q", secret)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(Source{Name: "api token"}); err == nil {
		t.Fatal("expected an error for an empty source")
	}

	empty := filepath.Join(t.TempDir(), "empty")
	if err := os.WriteFile(empty, []byte("   "), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(Source{Name: "api token", File: empty}); err == nil {
		t.Fatal("expected an error for an empty secret file")
	}
}
