package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// TestMainExitCodes re-runs the test binary as minigrep to observe real exit
// codes and stream separation.
func TestMainExitCodes(t *testing.T) {
	if os.Getenv("MINIGREP_RUN_MAIN") == "1" {
		os.Args = []string{"minigrep"}
		for i := 0; ; i++ {
			arg, ok := os.LookupEnv("MINIGREP_ARG_" + strconv.Itoa(i))
			if !ok {
				break
			}
			os.Args = append(os.Args, arg)
		}
		main()
		os.Exit(0)
	}

	// a space in the directory name must survive the trip to the child
	dir := filepath.Join(t.TempDir(), "my files")
	if err := os.Mkdir(dir, 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	poem := filepath.Join(dir, "poem.txt")
	if err := os.WriteFile(poem, []byte("Rust:\nsafe, fast, productive.\nPick three.\nTrust me.\n"), 0644); err != nil {
		t.Fatalf("failed to write poem: %v", err)
	}

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{name: "match", args: []string{"--color=never", "rust", poem}, wantCode: 0, wantStdout: "1: Rust:"},
		{name: "no match", args: []string{"--color=never", "zebra", poem}, wantCode: 0},
		{name: "too few arguments", args: []string{"rust"}, wantCode: 1, wantStderr: "Error: not enough arguments"},
		{name: "missing file", args: []string{"rust", filepath.Join(dir, "missing.txt")}, wantCode: 1, wantStderr: "Error: read "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(os.Args[0], "-test.run=^TestMainExitCodes$")
			cmd.Env = append(environWithout("CASE_SENSITIVE"),
				"MINIGREP_RUN_MAIN=1",
				"MINIGREP_HOME="+dir,
			)
			for i, arg := range tt.args {
				cmd.Env = append(cmd.Env, "MINIGREP_ARG_"+strconv.Itoa(i)+"="+arg)
			}
			var stdout, stderr strings.Builder
			cmd.Stdout = &stdout
			cmd.Stderr = &stderr

			err := cmd.Run()
			code := 0
			if exitErr, ok := err.(*exec.ExitError); ok {
				code = exitErr.ExitCode()
			} else if err != nil {
				t.Fatalf("failed to run: %v", err)
			}

			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d (stderr %q)", code, tt.wantCode, stderr.String())
			}
			if tt.wantStdout != "" && !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout %q does not contain %q", stdout.String(), tt.wantStdout)
			}
			if tt.wantStdout == "" && tt.wantCode == 0 && stdout.String() != "" {
				t.Errorf("stdout = %q, want empty", stdout.String())
			}
			if tt.wantStderr != "" && !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr %q does not contain %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}

// environWithout returns os.Environ() minus the named variable.
func environWithout(key string) []string {
	var env []string
	for _, kv := range os.Environ() {
		if !strings.HasPrefix(kv, key+"=") {
			env = append(env, kv)
		}
	}
	return env
}
