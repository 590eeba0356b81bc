package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/fatih/color"
	"github.com/khaledelg/portfolio/schema"
)

// Color variables for console output.
var (
	ActiveColor  = color.New(color.FgGreen, color.Bold) // ActiveColor highlights recently pushed projects.
	RecentColor  = color.New(color.FgYellow)            // RecentColor is for projects touched this half-year.
	DormantColor = color.New(color.FgCyan)              // DormantColor is informational.
)

// GetColorLabel returns a colored recency label for console output (table).
func GetColorLabel(label schema.RecencyLabel) string {
	text := string(label)
	switch label {
	case schema.ActiveLabel:
		return ActiveColor.Sprint(text)
	case schema.RecentLabel:
		return RecentColor.Sprint(text)
	case schema.DormantLabel:
		return DormantColor.Sprint(text)
	default:
		return text
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. An empty path means stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// TruncateText truncates text to a maximum width with an ellipsis suffix.
// Requires maxWidth > 3 so there is space for the "..." and at least one rune.
func TruncateText(text string, maxWidth int) string {
	runes := []rune(text)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return text
}

// ParseTopics splits a comma-separated topic list, dropping blanks.
// It returns nil when no topic remains so callers can treat it as "no filter".
func ParseTopics(raw string) []string {
	var topics []string
	for part := range strings.SplitSeq(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			topics = append(topics, trimmed)
		}
	}
	return topics
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	log.WithError(err).Fatal(msg)
}

// LogWarn logs a warning message.
func LogWarn(msg string, err error) {
	log.WithError(err).Warn(msg)
}
