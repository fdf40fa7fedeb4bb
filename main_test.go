package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpenLogOutput(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		terminal bool
		wantFile string // empty means stdout
	}{
		{"window mode logs to stdout", "", false, ""},
		{"terminal mode logs to default file", "", true, terminalLogFile},
		{"explicit file in window mode", "run.log", false, "run.log"},
		{"explicit file in terminal mode", "run.log", true, "run.log"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())

			w, closeLog, err := openLogOutput(tt.path, tt.terminal)
			if err != nil {
				t.Fatalf("openLogOutput: %v", err)
			}

			if tt.wantFile == "" {
				if w != os.Stdout {
					t.Fatalf("writer = %T, want os.Stdout", w)
				}
				if err := closeLog(); err != nil {
					t.Errorf("close: %v", err)
				}
				return
			}

			slog.New(slog.NewJSONHandler(w, nil)).Info("food saturated", "food", 3)
			if err := closeLog(); err != nil {
				t.Fatalf("close: %v", err)
			}

			data, err := os.ReadFile(filepath.Join(".", tt.wantFile))
			if err != nil {
				t.Fatalf("reading log: %v", err)
			}
			if !strings.Contains(string(data), `"msg":"food saturated"`) {
				t.Errorf("log file missing entry: %q", data)
			}
		})
	}
}
