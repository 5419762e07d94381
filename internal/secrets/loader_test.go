package secrets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPrefersFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key")
	if err := os.WriteFile(path, []byte("  from-file\n"), 0o600); err != nil {
		t.Fatalf("write key file: %v", err)
	}

	got, err := Load(Source{Name: "gemini api key", File: path, Value: "inline"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got != "from-file" {
		t.Fatalf("expected file value, got %q", got)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key")
	if err := os.WriteFile(path, []byte("\n"), 0o600); err != nil {
		t.Fatalf("write key file: %v", err)
	}

	_, err := Load(Source{Name: "gemini api key", File: path})
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(Source{File: filepath.Join(t.TempDir(), "absent")})
	if err == nil {
		t.Fatal("expected error for missing file")
	}

	if errors.Is(err, ErrNotConfigured) {
		t.Fatalf("unreadable file should not be reported as not configured: %v", err)
	}
}

func TestLoadValueThenEnv(t *testing.T) {
	t.Setenv("TALENTSCOUT_TEST_KEY", " env-key ")

	got, err := Load(Source{Value: " inline ", Env: "TALENTSCOUT_TEST_KEY"})
	if err != nil || got != "inline" {
		t.Fatalf("expected inline value, got %q (%v)", got, err)
	}

	got, err = Load(Source{Env: "TALENTSCOUT_TEST_KEY"})
	if err != nil || got != "env-key" {
		t.Fatalf("expected env value, got %q (%v)", got, err)
	}
}

func TestLoadNotConfigured(t *testing.T) {
	t.Setenv("TALENTSCOUT_TEST_KEY", "")

	for _, src := range []Source{
		{},
		{Value: "   "},
		{Env: "TALENTSCOUT_TEST_KEY"},
	} {
		if _, err := Load(src); !errors.Is(err, ErrNotConfigured) {
			t.Fatalf("expected ErrNotConfigured for %+v, got %v", src, err)
		}
	}
}
