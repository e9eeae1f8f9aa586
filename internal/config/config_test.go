package config

import (
	"path/filepath"
	"reflect"
	"testing"
)

func applied(t *testing.T, flags Flags) *Config {
	t.Helper()
	cfg := New()
	if err := cfg.Apply(flags); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return cfg
}

func TestConfig_GetInPath(t *testing.T) {
	tests := []struct {
		name     string
		flags    Flags
		expected string
	}{
		{
			name:     "current directory",
			flags:    Flags{InPath: "."},
			expected: ".",
		},
		{
			name:     "with in path flag",
			flags:    Flags{InPath: "logs/"},
			expected: "logs",
		},
		{
			name:     "absolute in path",
			flags:    Flags{InPath: "/var/log/../log/http"},
			expected: "/var/log/http",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := applied(t, tt.flags).GetInPath()
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestConfig_GetOutFile(t *testing.T) {
	t.Run("empty when writing to stdout", func(t *testing.T) {
		cfg := applied(t, Flags{InPath: "logs"})
		if out := cfg.GetOutFile(); out != "" {
			t.Errorf("expected empty out file, got %s", out)
		}
	})

	t.Run("resolves relative path", func(t *testing.T) {
		out := applied(t, Flags{InPath: "logs", OutFile: "dump.txt"}).GetOutFile()
		if !filepath.IsAbs(out) {
			t.Errorf("expected absolute path, got %s", out)
		}
		if filepath.Base(out) != "dump.txt" {
			t.Errorf("expected dump.txt, got %s", filepath.Base(out))
		}
	})
}

func TestConfig_Apply(t *testing.T) {
	t.Run("sort order", func(t *testing.T) {
		cfg := applied(t, Flags{InPath: "logs", SortOrder: SortByCount})
		if cfg.SortOrder != SortByCount {
			t.Errorf("expected %s, got %s", SortByCount, cfg.SortOrder)
		}
	})

	t.Run("invalid sort order", func(t *testing.T) {
		if err := New().Apply(Flags{InPath: "logs", SortOrder: "size"}); err == nil {
			t.Error("expected error for invalid sort order")
		}
	})

	t.Run("empty in path is rejected", func(t *testing.T) {
		for _, inPath := range []string{"", "   "} {
			cfg := New()
			if err := cfg.Apply(Flags{InPath: inPath}); err == nil {
				t.Errorf("expected error for in path %q", inPath)
			}
			if cfg.InPath != DefaultInPath {
				t.Errorf("rejected flags should leave the config untouched, got InPath %q", cfg.InPath)
			}
		}
	})

	t.Run("ignore dirs are added to the defaults", func(t *testing.T) {
		cfg := applied(t, Flags{InPath: "logs", Ignore: []string{"archive"}, SkipHidden: true})
		if len(cfg.PathsToIgnore) != len(DefaultPathsToIgnore)+1 {
			t.Errorf("expected %d paths to ignore, got %d", len(DefaultPathsToIgnore)+1, len(cfg.PathsToIgnore))
		}
		if !cfg.SkipHidden {
			t.Error("expected SkipHidden to be set")
		}
	})

	t.Run("applying twice gives the same config", func(t *testing.T) {
		flags := Flags{InPath: "logs", Ignore: []string{"archive", "tmp"}, SortOrder: SortByCount}
		cfg := applied(t, flags)
		first := *cfg
		first.PathsToIgnore = append([]string(nil), cfg.PathsToIgnore...)

		if err := cfg.Apply(flags); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(first.PathsToIgnore, cfg.PathsToIgnore) {
			t.Errorf("expected paths to ignore %v, got %v", first.PathsToIgnore, cfg.PathsToIgnore)
		}
		if first.SortOrder != cfg.SortOrder || first.InPath != cfg.InPath {
			t.Errorf("expected %+v, got %+v", first, *cfg)
		}
	})

	t.Run("progress hidden for json", func(t *testing.T) {
		if applied(t, Flags{InPath: "logs", JSON: true}).ShowProgress() {
			t.Error("progress should be hidden when printing JSON")
		}
	})
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.InPath != DefaultInPath {
		t.Errorf("expected InPath %s, got %s", DefaultInPath, cfg.InPath)
	}

	if cfg.NoTestName != NoTestSentinel {
		t.Errorf("expected NoTestName %s, got %s", NoTestSentinel, cfg.NoTestName)
	}

	if cfg.SortOrder != DefaultSortOrder {
		t.Errorf("expected SortOrder %s, got %s", DefaultSortOrder, cfg.SortOrder)
	}
}
