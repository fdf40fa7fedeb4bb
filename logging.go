package main

import (
	"io"
	"os"
)

// terminalLogFile receives the log in terminal mode when no -log-file is set;
// the screen belongs to tcell there.
const terminalLogFile = "slimemold.log"

// openLogOutput picks the slog destination: path if set, terminalLogFile in
// terminal mode, stdout otherwise. The returned close func is never nil.
func openLogOutput(path string, terminal bool) (io.Writer, func() error, error) {
	if path == "" && terminal {
		path = terminalLogFile
	}
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
