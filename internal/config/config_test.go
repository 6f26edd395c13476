package config

import (
	"os"
	"path/filepath"
	"testing"
)

// mockHomeDir is a helper function to temporarily set the HOME environment variable
func mockHomeDir(t *testing.T) string {
	t.Helper()

	tempDir := t.TempDir()
	origHome := os.Getenv("HOME")
	os.Setenv("HOME", tempDir)
	t.Cleanup(func() {
		os.Setenv("HOME", origHome)
	})

	return tempDir
}

func TestGetConfigFilePath(t *testing.T) {
	serverName := "testserver"
	configPath, err := GetConfigFilePath(serverName)
	if err != nil {
		t.Fatalf("GetConfigFilePath failed: %v", err)
	}

	if filepath.Base(filepath.Dir(configPath)) != serverName {
		t.Errorf("Expected config path to contain %s, got %s", serverName, configPath)
	}
	if filepath.Base(configPath) != DefaultConfigFileName {
		t.Errorf("Expected config path to end with %s, got %s", DefaultConfigFileName, configPath)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	mockHomeDir(t)

	cfg, err := Load("ctools")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.GCCPath != DefaultGCCPath {
		t.Errorf("Expected default gcc path %q, got %q", DefaultGCCPath, cfg.GCCPath)
	}
	if cfg.ObjdumpPath != DefaultObjdumpPath {
		t.Errorf("Expected default objdump path %q, got %q", DefaultObjdumpPath, cfg.ObjdumpPath)
	}
}

func TestSaveAndLoad(t *testing.T) {
	mockHomeDir(t)

	serverName := "ctools"
	testConfig := &Config{
		GCCPath:     "/opt/cross/bin/gcc",
		ObjdumpPath: "/opt/cross/bin/objdump",
	}

	if err := Save(serverName, testConfig); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	configPath, err := GetConfigFilePath(serverName)
	if err != nil {
		t.Fatalf("GetConfigFilePath failed: %v", err)
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Errorf("Config file not created at %s", configPath)
	}

	loaded, err := Load(serverName)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.GCCPath != testConfig.GCCPath {
		t.Errorf("Expected GCCPath %s, got %s", testConfig.GCCPath, loaded.GCCPath)
	}
	if loaded.ObjdumpPath != testConfig.ObjdumpPath {
		t.Errorf("Expected ObjdumpPath %s, got %s", testConfig.ObjdumpPath, loaded.ObjdumpPath)
	}
}

func TestLoadPartialConfigFallsBackToDefaults(t *testing.T) {
	mockHomeDir(t)

	if err := Save("ctools", &Config{GCCPath: "clang"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load("ctools")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.GCCPath != "clang" {
		t.Errorf("Expected GCCPath clang, got %s", loaded.GCCPath)
	}
	if loaded.ObjdumpPath != DefaultObjdumpPath {
		t.Errorf("Expected default objdump path, got %s", loaded.ObjdumpPath)
	}
}
