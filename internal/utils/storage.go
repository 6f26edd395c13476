package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ServerRecord represents a running MCP server
type ServerRecord struct {
	Name      string    `json:"name"`
	PID       int       `json:"pid"`
	StartTime time.Time `json:"start_time"`
}

// GetServerRecordsPath returns the path to the server records file
func GetServerRecordsPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	configDir := filepath.Join(homeDir, ".config", "calctool")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(configDir, "running-servers.json"), nil
}

// recordsFile is the on-disk shape of the running-servers file.
type recordsFile struct {
	Servers []ServerRecord `json:"servers"`
}

// ReadServerRecords reads the server records from disk. A missing file
// yields an empty list.
func ReadServerRecords() ([]ServerRecord, error) {
	path, err := GetServerRecordsPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []ServerRecord{}, nil
		}
		return nil, err
	}

	var file recordsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	return file.Servers, nil
}

// WriteServerRecords writes the server records to disk
func WriteServerRecords(records []ServerRecord) error {
	path, err := GetServerRecordsPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(recordsFile{Servers: records}, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// AddServerRecord records a newly started server, dropping stale records
// along the way.
func AddServerRecord(name string, pid int) error {
	records, err := ReadServerRecords()
	if err != nil {
		return err
	}

	records = CleanupStaleRecords(records)
	records = append(records, ServerRecord{
		Name:      name,
		PID:       pid,
		StartTime: time.Now(),
	})

	return WriteServerRecords(records)
}

// CleanupStaleRecords removes records of processes that are no longer running
func CleanupStaleRecords(records []ServerRecord) []ServerRecord {
	var active []ServerRecord
	for _, record := range records {
		if IsProcessRunning(record.PID) {
			active = append(active, record)
		}
	}

	return active
}

// FormatUptime formats the uptime of a server in a human-readable format
func FormatUptime(startTime time.Time) string {
	duration := time.Since(startTime).Round(time.Second)

	days := int(duration.Hours() / 24)
	hours := int(duration.Hours()) % 24
	minutes := int(duration.Minutes()) % 60
	seconds := int(duration.Seconds()) % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}
