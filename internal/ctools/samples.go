package ctools

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/calctool/internal/config"
)

// Sample pairs a C snippet with its disassembled output. Samples are served
// as an MCP resource to prime a model for disassembly work.
type Sample struct {
	Code     string `json:"code"`
	Assembly string `json:"assembly"`
}

// SamplesFileName is the file holding the sample pairs inside the ctools
// config directory.
const SamplesFileName = "samples.json"

// SamplesPath returns the path to the samples file.
func SamplesPath() (string, error) {
	configDir, err := config.GetConfigDir("ctools")
	if err != nil {
		return "", err
	}

	return filepath.Join(configDir, SamplesFileName), nil
}

// LoadSamples reads the sample pairs from path. A missing file is not an
// error: servers start with an empty sample set.
func LoadSamples(path string) ([]Sample, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Sample{}, nil
		}
		return nil, fmt.Errorf("failed to read samples file: %w", err)
	}

	var samples []Sample
	if err := json.Unmarshal(data, &samples); err != nil {
		return nil, fmt.Errorf("failed to parse samples file: %w", err)
	}

	return samples, nil
}
