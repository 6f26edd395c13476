package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/calctool/internal/utils"
)

// displayServerRecords formats and displays running server records
func displayServerRecords(records []utils.ServerRecord, format string, showHeader bool) error {
	if len(records) == 0 {
		fmt.Println("No running MCP servers found")
		return nil
	}

	switch format {
	case "table":
		return displayServerTable(records, showHeader)
	case "json":
		return displayServerJSON(records)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// displayServerTable displays server records in a table format
func displayServerTable(records []utils.ServerRecord, showHeader bool) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	if showHeader {
		fmt.Fprintln(w, "NAME\tPID\tUPTIME")
	}

	for _, record := range records {
		fmt.Fprintf(w, "%s\t%d\t%s\n",
			record.Name, record.PID, utils.FormatUptime(record.StartTime))
	}

	return w.Flush()
}

// displayServerJSON displays server records in JSON format
func displayServerJSON(records []utils.ServerRecord) error {
	type row struct {
		Name   string `json:"name"`
		PID    int    `json:"pid"`
		Uptime string `json:"uptime"`
	}

	rows := make([]row, 0, len(records))
	for _, record := range records {
		rows = append(rows, row{
			Name:   record.Name,
			PID:    record.PID,
			Uptime: utils.FormatUptime(record.StartTime),
		})
	}

	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(data))
	return nil
}
