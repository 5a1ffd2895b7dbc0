package logger

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
)

// TestLogLevelFiltering verifies that messages are filtered based on log level
func TestLogLevelFiltering(t *testing.T) {
	tests := []struct {
		name         string
		logLevel     string
		messageLevel string
		message      string
		shouldAppear bool
	}{
		// trace level - should see everything
		{name: "trace sees trace", logLevel: "trace", messageLevel: "trace", message: "trace msg", shouldAppear: true},
		{name: "trace sees debug", logLevel: "trace", messageLevel: "debug", message: "debug msg", shouldAppear: true},
		{name: "trace sees info", logLevel: "trace", messageLevel: "info", message: "info msg", shouldAppear: true},
		{name: "trace sees warn", logLevel: "trace", messageLevel: "warn", message: "warn msg", shouldAppear: true},
		{name: "trace sees error", logLevel: "trace", messageLevel: "error", message: "error msg", shouldAppear: true},

		// debug level - should not see trace
		{name: "debug blocks trace", logLevel: "debug", messageLevel: "trace", message: "trace msg", shouldAppear: false},
		{name: "debug sees debug", logLevel: "debug", messageLevel: "debug", message: "debug msg", shouldAppear: true},
		{name: "debug sees error", logLevel: "debug", messageLevel: "error", message: "error msg", shouldAppear: true},

		// warn level (the default for a launcher) - quiet unless something is wrong
		{name: "warn blocks trace", logLevel: "warn", messageLevel: "trace", message: "trace msg", shouldAppear: false},
		{name: "warn blocks debug", logLevel: "warn", messageLevel: "debug", message: "debug msg", shouldAppear: false},
		{name: "warn blocks info", logLevel: "warn", messageLevel: "info", message: "info msg", shouldAppear: false},
		{name: "warn sees warn", logLevel: "warn", messageLevel: "warn", message: "warn msg", shouldAppear: true},
		{name: "warn sees error", logLevel: "warn", messageLevel: "error", message: "error msg", shouldAppear: true},

		// error level - errors only
		{name: "error blocks warn", logLevel: "error", messageLevel: "warn", message: "warn msg", shouldAppear: false},
		{name: "error sees error", logLevel: "error", messageLevel: "error", message: "error msg", shouldAppear: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cl := NewConsoleLogger(&buf, tt.logLevel)

			switch tt.messageLevel {
			case "trace":
				cl.LogTrace(tt.message)
			case "debug":
				cl.LogDebug(tt.message)
			case "info":
				cl.LogInfo(tt.message)
			case "warn":
				cl.LogWarn(tt.message)
			case "error":
				cl.LogError(tt.message)
			}

			got := buf.String()
			if tt.shouldAppear && !strings.Contains(got, tt.message) {
				t.Errorf("expected message %q in output, got %q", tt.message, got)
			}
			if !tt.shouldAppear && got != "" {
				t.Errorf("expected no output, got %q", got)
			}
		})
	}
}

// TestLogFormat verifies the [HH:MM:SS] [LEVEL] message line format
func TestLogFormat(t *testing.T) {
	var buf bytes.Buffer
	cl := NewConsoleLogger(&buf, "trace")

	cl.LogInfo("resolution started")

	line := buf.String()
	pattern := regexp.MustCompile(`^\[\d{2}:\d{2}:\d{2}\] \[INFO\] resolution started\n$`)
	if !pattern.MatchString(line) {
		t.Errorf("log line %q does not match expected format", line)
	}
}

func TestInvalidLevelFallsBackToDefault(t *testing.T) {
	var buf bytes.Buffer
	cl := NewConsoleLogger(&buf, "chatty")

	cl.LogInfo("should be filtered at the default level")
	if buf.Len() != 0 {
		t.Errorf("expected info filtered under default level, got %q", buf.String())
	}

	cl.LogWarn("should appear")
	if !strings.Contains(buf.String(), "should appear") {
		t.Errorf("expected warn to appear under default level, got %q", buf.String())
	}
}

func TestValidLevel(t *testing.T) {
	for _, level := range []string{"trace", "debug", "info", "warn", "error", " WARN "} {
		if !ValidLevel(level) {
			t.Errorf("ValidLevel(%q) = false, want true", level)
		}
	}
	for _, level := range []string{"", "verbose", "fatal"} {
		if ValidLevel(level) {
			t.Errorf("ValidLevel(%q) = true, want false", level)
		}
	}
}

func TestNilWriterDiscards(t *testing.T) {
	cl := NewConsoleLogger(nil, "trace")
	// Must not panic.
	cl.LogError("dropped")
}

func TestNoOpLogger(t *testing.T) {
	n := NewNoOpLogger()
	n.LogTrace("a")
	n.LogDebug("b")
	n.LogInfo("c")
	n.LogWarn("d")
	n.LogError("e")
}
