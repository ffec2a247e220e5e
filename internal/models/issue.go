package models

import (
	"strings"
	"time"
)

// IssueLevel is the severity reported for an issue.
type IssueLevel string

const (
	IssueLevelDebug   IssueLevel = "debug"
	IssueLevelInfo    IssueLevel = "info"
	IssueLevelWarning IssueLevel = "warning"
	IssueLevelError   IssueLevel = "error"
	IssueLevelFatal   IssueLevel = "fatal"
)

// ParseIssueLevel maps a free-form level string to an IssueLevel, defaulting to error.
func ParseIssueLevel(level string) IssueLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return IssueLevelDebug
	case "info":
		return IssueLevelInfo
	case "warn", "warning":
		return IssueLevelWarning
	case "fatal", "critical":
		return IssueLevelFatal
	default:
		return IssueLevelError
	}
}

// IssueStatus defines the possible states of an issue.
type IssueStatus string

const (
	IssueStatusUnresolved IssueStatus = "unresolved"
	IssueStatusResolved   IssueStatus = "resolved"
	IssueStatusArchived   IssueStatus = "archived"
)

// Issue holds the information rendered into an issue notification.
type Issue struct {
	ID        string      // Stable identifier, used in interaction custom ids
	ShortID   string      // Human readable id, e.g. "BACKEND-3F"
	Title     string      // Issue headline
	Culprit   string      // Location the issue was raised from
	Permalink string      // Link back to the issue
	Project   string      // Owning project slug
	Level     IssueLevel  // Severity
	Status    IssueStatus // Current status
	FirstSeen time.Time   // When the issue was first observed
}
