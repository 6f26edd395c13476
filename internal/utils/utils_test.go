package utils

import (
	"os"
	"testing"
)

func TestIsProcessRunning(t *testing.T) {
	if !IsProcessRunning(os.Getpid()) {
		t.Error("Expected current process to be running")
	}
	if IsProcessRunning(99999999) {
		t.Error("Expected bogus PID to not be running")
	}
}

func TestPrintError(t *testing.T) {
	// Redirect stderr to capture output
	oldStderr := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	PrintError("Test error: %s", "something went wrong")

	w.Close()
	os.Stderr = oldStderr

	var buf [1024]byte
	n, _ := r.Read(buf[:])
	output := string(buf[:n])

	expected := "Error: Test error: something went wrong\n"
	if output != expected {
		t.Errorf("Expected output %q, got %q", expected, output)
	}
}

func TestPrintInfo(t *testing.T) {
	// Redirect stdout to capture output
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	PrintInfo("Test info: %s", "something happened")

	w.Close()
	os.Stdout = oldStdout

	var buf [1024]byte
	n, _ := r.Read(buf[:])
	output := string(buf[:n])

	expected := "Test info: something happened\n"
	if output != expected {
		t.Errorf("Expected output %q, got %q", expected, output)
	}
}
