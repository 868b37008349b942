// Package debug writes timestamped diagnostic lines to stderr when debug
// mode is on. Messages are prefixed with a bracketed component tag such as
// "[scan]" or "[decode]".
package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/davecgh/go-spew/spew"
)

// EnvVar enables debug mode when set to a true value.
const EnvVar = "XTINSPECT_DEBUG"

var (
	mu      sync.RWMutex
	enabled bool
	noColor bool
	out     io.Writer = os.Stderr
)

// ANSI color codes
const (
	colorReset = "\033[0m"
	colorCyan  = "\033[36m"
	colorGray  = "\033[90m"
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
	MaxDepth:                6,
}

// SetDebug enables or disables debug mode
func SetDebug(enable bool) {
	mu.Lock()
	defer mu.Unlock()
	enabled = enable
}

// IsEnabled returns whether debug mode is enabled
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// EnabledFromEnv reports whether EnvVar holds a true value.
func EnabledFromEnv() bool {
	v, ok := os.LookupEnv(EnvVar)
	if !ok {
		return false
	}
	on, err := strconv.ParseBool(strings.TrimSpace(v))
	return err == nil && on
}

// SetNoColor enables or disables colored output
func SetNoColor(disable bool) {
	mu.Lock()
	defer mu.Unlock()
	noColor = disable
}

// SetOutput redirects debug output and returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := out
	out = w
	return prev
}

// emit writes one line. label is highlighted when color is on.
func emit(label, body string) {
	mu.RLock()
	w, useColor := out, !noColor
	mu.RUnlock()

	timestamp := time.Now().Format("15:04:05.000")
	if useColor {
		if label != "" {
			label = colorCyan + label + colorReset
		}
		fmt.Fprintf(w, "%s[DEBUG]%s %s%s%s %s%s\n",
			colorCyan, colorReset, colorGray, timestamp, colorReset, label, body)
		return
	}
	fmt.Fprintf(w, "[DEBUG] %s %s%s\n", timestamp, label, body)
}

// Debug prints a debug message with timestamp
func Debug(format string, args ...interface{}) {
	if !IsEnabled() {
		return
	}
	emit("", fmt.Sprintf(format, args...))
}

// DebugSection prints a section header for debug output
func DebugSection(section string) {
	if !IsEnabled() {
		return
	}
	emit("=== "+section+" ===", "")
}

// DebugValue prints key=value style debug info
func DebugValue(key string, value interface{}) {
	if !IsEnabled() {
		return
	}
	emit(key, fmt.Sprintf(" = %v", value))
}

// DebugJSON prints structured data as JSON for debugging
func DebugJSON(key string, v interface{}) {
	if !IsEnabled() {
		return
	}

	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		Debug("Failed to marshal %s to JSON: %v", key, err)
		return
	}
	emit(key, ":\n"+string(jsonBytes))
}

// DebugDump prints a Go-syntax dump of v. Unlike DebugJSON it shows
// unexported fields and fields tagged json:"-".
func DebugDump(key string, v interface{}) {
	if !IsEnabled() {
		return
	}
	emit(key, ":\n"+strings.TrimRight(dumper.Sdump(v), "\n"))
}
