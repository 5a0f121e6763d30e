// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"fmt"
	"os"
	"strings"

	"github.com/apex/log"
)

// Level is the ordered severity used for threshold decisions. Trace sits
// between Debug and Info, which Apex has no slot for, so filtering is done
// here and Apex is left wide open.
type Level int

const (
	DebugLevel Level = iota
	TraceLevel
	InfoLevel
	WarningLevel
	ErrorLevel
	FatalLevel
)

var levelNames = map[Level]string{
	DebugLevel:   "Debug",
	TraceLevel:   "Trace",
	InfoLevel:    "Info",
	WarningLevel: "Warning",
	ErrorLevel:   "Error",
	FatalLevel:   "Fatal",
}

var threshold = InfoLevel

// InitLogger sets up Apex with a custom handler and a threshold from the
// AWSCTL_LOG env variable. Unrecognized values fall back to "info".
func InitLogger() {
	SetThreshold(ParseLevel(os.Getenv("AWSCTL_LOG")))
	log.SetHandler(&CustomHandler{Stdout: os.Stdout, Stderr: os.Stderr})
	// Filtering happens in emit(); Apex must not filter a second time.
	log.SetLevel(log.DebugLevel)
}

// ParseLevel maps a level name to a Level. Empty or unrecognized input
// resolves to InfoLevel.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return DebugLevel
	case "trace":
		return TraceLevel
	case "info":
		return InfoLevel
	case "warn", "warning":
		return WarningLevel
	case "error":
		return ErrorLevel
	case "fatal":
		return FatalLevel
	default:
		return InfoLevel
	}
}

// SetThreshold sets the process-wide minimum severity to emit.
func SetThreshold(l Level) {
	threshold = l
}

// Threshold returns the current threshold.
func Threshold() Level {
	return threshold
}

// CustomHandler formats entries as "(Severity) message" and routes Warning
// and above to Stderr, everything else to Stdout.
type CustomHandler struct {
	Stdout *os.File
	Stderr *os.File
}

// HandleLog implements the log.Handler interface. The severity label is
// carried as a message prefix because Apex levels cannot represent Trace or
// a non-exiting Fatal.
func (h *CustomHandler) HandleLog(e *log.Entry) error {
	label, message, found := strings.Cut(e.Message, "\x1f")
	if !found {
		// Entries created directly through Apex (WithError and friends)
		// carry a real Apex level instead of the marker.
		label, message = apexLabel(e.Level), e.Message
		if err, ok := e.Fields.Get("error").(string); ok && err != "" {
			message = message + ": " + err
		}
	}

	if ParseLevel(label) < threshold {
		return nil
	}

	w := h.Stdout
	if ParseLevel(label) >= WarningLevel {
		w = h.Stderr
	}
	fmt.Fprintf(w, "(%s) %s\n", label, message)
	return nil
}

// apexLabel maps an Apex level onto the severity label vocabulary.
func apexLabel(l log.Level) string {
	switch l {
	case log.DebugLevel:
		return "Debug"
	case log.WarnLevel:
		return "Warning"
	case log.ErrorLevel:
		return "Error"
	case log.FatalLevel:
		return "Fatal"
	default:
		return "Info"
	}
}

// emit is the single funnel for all severities. Messages below the threshold
// produce no output at all.
func emit(l Level, format string, args ...interface{}) {
	if l < threshold {
		return
	}
	log.Info(levelNames[l] + "\x1f" + fmt.Sprintf(format, args...))
}

// Debugf logs at Debug level.
func Debugf(format string, args ...interface{}) {
	emit(DebugLevel, format, args...)
}

// Debug logs at Debug level.
func Debug(msg string) {
	emit(DebugLevel, "%s", msg)
}

// Tracef logs at Trace level (between Debug and Info).
func Tracef(format string, args ...interface{}) {
	emit(TraceLevel, format, args...)
}

// Infof logs at Info level.
func Infof(format string, args ...interface{}) {
	emit(InfoLevel, format, args...)
}

// Warnf logs at Warning level.
func Warnf(format string, args ...interface{}) {
	emit(WarningLevel, format, args...)
}

// Errorf logs at Error level.
func Errorf(format string, args ...interface{}) {
	emit(ErrorLevel, format, args...)
}

// Fatalf logs at Fatal level. It never terminates the process; callers own
// the decision to exit.
func Fatalf(format string, args ...interface{}) {
	emit(FatalLevel, format, args...)
}

// WithError returns an entry with error attached. Emission still flows
// through the custom handler.
func WithError(err error) *log.Entry {
	return log.WithError(err)
}
