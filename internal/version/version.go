package version

// Version is the current version of calctool, shared by the frontend
// and every MCP server binary so they always report the same number.
const Version = "1.0.0"
