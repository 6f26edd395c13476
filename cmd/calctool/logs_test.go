package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func writeTestLog(t *testing.T, lines int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "server_123.log")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create log file: %v", err)
	}
	defer f.Close()

	for i := 1; i <= lines; i++ {
		fmt.Fprintf(f, "line %d\n", i)
	}
	return path
}

func TestReadLastLines(t *testing.T) {
	path := writeTestLog(t, 50)

	lines, err := readLastLines(path, 3)
	if err != nil {
		t.Fatalf("readLastLines failed: %v", err)
	}

	want := []string{"line 48", "line 49", "line 50"}
	if len(lines) != len(want) {
		t.Fatalf("Expected %d lines, got %d", len(want), len(lines))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("Line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestReadLastLinesShortFile(t *testing.T) {
	path := writeTestLog(t, 2)

	lines, err := readLastLines(path, 10)
	if err != nil {
		t.Fatalf("readLastLines failed: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "line 1" || lines[1] != "line 2" {
		t.Errorf("Got lines %v", lines)
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{512, "512 B"},
		{2048, "2.0 KB"},
		{5 * 1024 * 1024, "5.0 MB"},
	}

	for _, tt := range tests {
		if got := formatBytes(tt.in); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
