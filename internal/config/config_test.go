package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

func testFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("directory", "", "")
	fs.String("cost-table", "", "")
	fs.String("dsn", "", "")
	fs.Bool("from-db", false, "")
	fs.String("log-format", "text", "")
	fs.String("log-level", "info", "")
	fs.String("chart-out", "", "")
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	c, err := Load(testFlags(t), "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.LogFormat != "text" || c.LogLevel != "info" {
		t.Errorf("defaults = %q/%q", c.LogFormat, c.LogLevel)
	}
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "carecost.yaml")
	os.WriteFile(path, []byte("log-format: json\nlog-level: debug\ndirectory: from-file.xlsx\n"), 0644)

	t.Setenv("CARECOST_LOG_LEVEL", "warn")
	c, err := Load(testFlags(t, "--directory", "from-flag.csv"), path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.DirectoryPath != "from-flag.csv" {
		t.Errorf("flag should win, got %q", c.DirectoryPath)
	}
	if c.LogLevel != "warn" {
		t.Errorf("env should beat file, got %q", c.LogLevel)
	}
	if c.LogFormat != "json" {
		t.Errorf("file should beat default, got %q", c.LogFormat)
	}
}

func TestLoad_DatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost/db")
	c, err := Load(testFlags(t), "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.DSN != "postgres://u:p@localhost/db" {
		t.Errorf("DSN = %q", c.DSN)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(testFlags(t), "/nonexistent/carecost.yaml"); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestValidate(t *testing.T) {
	existing := filepath.Join(t.TempDir(), "hospitals.csv")
	os.WriteFile(existing, []byte("x"), 0644)

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"file source", Config{DirectoryPath: existing, LogFormat: "text"}, false},
		{"db source", Config{FromDB: true, DSN: "postgres://x", LogFormat: "json"}, false},
		{"no source", Config{LogFormat: "text"}, true},
		{"both sources", Config{DirectoryPath: existing, FromDB: true, DSN: "postgres://x", LogFormat: "text"}, true},
		{"db without dsn", Config{FromDB: true, LogFormat: "text"}, true},
		{"missing file", Config{DirectoryPath: "/nonexistent.csv", LogFormat: "text"}, true},
		{"bad log format", Config{DirectoryPath: existing, LogFormat: "xml"}, true},
		{"missing cost table", Config{DirectoryPath: existing, LogFormat: "text", CostTablePath: "/nonexistent.yaml"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCostTable_DefaultAndFile(t *testing.T) {
	c := &Config{}
	tbl, err := c.CostTable()
	if err != nil || len(tbl.Treatments()) != 8 {
		t.Fatalf("default table: %v", err)
	}

	path := filepath.Join(t.TempDir(), "costs.yaml")
	os.WriteFile(path, []byte("treatments:\n  - name: mri\n    public: [1, 2]\n    private: [3, 4]\n    specialty: [5, 6]\n"), 0644)
	c.CostTablePath = path
	tbl, err = c.CostTable()
	if err != nil {
		t.Fatalf("file table: %v", err)
	}
	if got := tbl.Treatments(); len(got) != 1 || got[0] != "mri" {
		t.Errorf("treatments = %v", got)
	}
}

func TestValidate_UnreadableFiles(t *testing.T) {
	existing := filepath.Join(t.TempDir(), "hospitals.csv")
	os.WriteFile(existing, []byte("x"), 0644)

	tests := []struct {
		name       string
		err        error
		unreadable bool
	}{
		{"missing directory", (&Config{DirectoryPath: "/nonexistent.csv", LogFormat: "text"}).Validate(), true},
		{"missing cost table", (&Config{DirectoryPath: existing, CostTablePath: "/nonexistent.yaml", LogFormat: "text"}).Validate(), true},
		{"missing load file", (&Config{FilePath: "/nonexistent.csv", DSN: "postgres://x"}).ValidateLoad(), true},
		{"no source", (&Config{LogFormat: "text"}).Validate(), false},
		{"load without dsn", (&Config{FilePath: existing}).ValidateLoad(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err == nil {
				t.Fatal("expected an error")
			}
			if got := errors.Is(tt.err, ErrUnreadable); got != tt.unreadable {
				t.Errorf("errors.Is(%v, ErrUnreadable) = %v, want %v", tt.err, got, tt.unreadable)
			}
		})
	}
}
