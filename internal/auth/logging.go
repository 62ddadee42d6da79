package auth

import (
	"os"
	"strings"
	"time"
)

var loggingEnv = os.Getenv("LOGGING")

// authLogPath is where LogAuthAttempt appends its records
var authLogPath = "log/auth.log"

// LogAuthAttempt appends an authentication attempt record to log/auth.log when LOGGING=true.
// Fields: timestamp (RFC3339) | level | authType | status | identifier? | message?
// level: debug|info|warning|error|fatal
// authType: Local|...
// status: Success|Fail
// identifier: username or userID (optional)
// message: additional info (optional)
func LogAuthAttempt(level string, authType string, status string, identifier string, message string) {
	if !strings.EqualFold(loggingEnv, "true") {
		return
	}

	if err := os.MkdirAll(dirOf(authLogPath), 0o750); err != nil {
		return
	}
	f, err := os.OpenFile(authLogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return
	}
	defer func() { _ = f.Close() }()

	_, _ = f.WriteString(formatAuthLine(time.Now(), level, authType, status, identifier, message))
}

func formatAuthLine(ts time.Time, level, authType, status, identifier, message string) string {
	parts := []string{ts.UTC().Format(time.RFC3339), level, authType, status}
	if identifier != "" {
		parts = append(parts, identifier)
	}
	if message != "" {
		parts = append(parts, message)
	}
	return strings.Join(parts, " | ") + "\n"
}

func dirOf(p string) string {
	if i := strings.LastIndex(p, "/"); i > 0 {
		return p[:i]
	}
	return "."
}
