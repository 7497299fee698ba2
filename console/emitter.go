// Package console prints the tagged status lines ([INFO], [FOUND], [WARNING],
// [ERROR]) a run produces on stdout.
//
// Implementations include:
//   - CLIEmitter: tagged terminal lines, colored with pterm
//   - JSONEmitter: one structured JSON event per line
package console

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pterm/pterm"
)

// Tags printed in front of each line
const (
	TagInfo    = "INFO"
	TagFound   = "FOUND"
	TagWarning = "WARNING"
	TagError   = "ERROR"
)

// Emitter receives the user-facing status lines of a run
type Emitter interface {
	// EmitInfo emits a general informational message
	EmitInfo(message string)

	// EmitFound reports one matching line from a lookup
	EmitFound(line string)

	// EmitWarning emits a non-fatal problem
	EmitWarning(message string)

	// EmitError emits a failure; message is printed before err
	EmitError(message string, err error)
}

// CLIEmitter writes "[TAG] message" lines
type CLIEmitter struct {
	out   io.Writer
	color bool
}

// NewCLIEmitter creates a terminal emitter. color=false prints the plain
// tags, which is what pipes and tests see.
func NewCLIEmitter(out io.Writer, color bool) *CLIEmitter {
	return &CLIEmitter{out: out, color: color}
}

var tagStyles = map[string]*pterm.Style{
	TagInfo:    pterm.NewStyle(pterm.FgCyan),
	TagFound:   pterm.NewStyle(pterm.FgGreen, pterm.Bold),
	TagWarning: pterm.NewStyle(pterm.FgYellow),
	TagError:   pterm.NewStyle(pterm.FgRed, pterm.Bold),
}

func (e *CLIEmitter) line(tag, message string) {
	prefix := "[" + tag + "]"
	if e.color {
		prefix = tagStyles[tag].Sprint(prefix)
	}
	fmt.Fprintln(e.out, prefix+" "+message)
}

// EmitInfo prints an [INFO] line
func (e *CLIEmitter) EmitInfo(message string) { e.line(TagInfo, message) }

// EmitFound prints a [FOUND] line
func (e *CLIEmitter) EmitFound(line string) { e.line(TagFound, line) }

// EmitWarning prints a [WARNING] line
func (e *CLIEmitter) EmitWarning(message string) { e.line(TagWarning, message) }

// EmitError prints an [ERROR] line
func (e *CLIEmitter) EmitError(message string, err error) {
	if err != nil {
		message += ": " + err.Error()
	}
	e.line(TagError, message)
}

// Event is one structured status line
type Event struct {
	Type      string                 `json:"type"` // "info", "found", "warning", "error"
	Timestamp time.Time              `json:"timestamp"`
	Message   string                 `json:"message"`
	Data      map[string]interface{} `json:"data,omitempty"`
}

// JSONEmitter writes one Event per line
type JSONEmitter struct {
	encoder *json.Encoder
	now     func() time.Time
}

// NewJSONEmitter creates a JSON emitter writing to out
func NewJSONEmitter(out io.Writer) *JSONEmitter {
	return &JSONEmitter{encoder: json.NewEncoder(out), now: time.Now}
}

func (e *JSONEmitter) emit(typ, message string, data map[string]interface{}) {
	// Encoding a fixed struct into an io.Writer only fails on write errors,
	// which there is nobody left to report to.
	_ = e.encoder.Encode(Event{Type: typ, Timestamp: e.now(), Message: message, Data: data})
}

// EmitInfo emits an info event
func (e *JSONEmitter) EmitInfo(message string) { e.emit("info", message, nil) }

// EmitFound emits a found event
func (e *JSONEmitter) EmitFound(line string) { e.emit("found", line, nil) }

// EmitWarning emits a warning event
func (e *JSONEmitter) EmitWarning(message string) { e.emit("warning", message, nil) }

// EmitError emits an error event with the cause under data.error
func (e *JSONEmitter) EmitError(message string, err error) {
	var data map[string]interface{}
	if err != nil {
		data = map[string]interface{}{"error": err.Error()}
	}
	e.emit("error", message, data)
}

// Recorder keeps emitted lines in memory, formatted like CLIEmitter without color
type Recorder struct {
	Lines []string
}

func (r *Recorder) add(tag, message string) { r.Lines = append(r.Lines, "["+tag+"] "+message) }

// EmitInfo records an [INFO] line
func (r *Recorder) EmitInfo(message string) { r.add(TagInfo, message) }

// EmitFound records a [FOUND] line
func (r *Recorder) EmitFound(line string) { r.add(TagFound, line) }

// EmitWarning records a [WARNING] line
func (r *Recorder) EmitWarning(message string) { r.add(TagWarning, message) }

// EmitError records an [ERROR] line
func (r *Recorder) EmitError(message string, err error) {
	if err != nil {
		message += ": " + err.Error()
	}
	r.add(TagError, message)
}

// Count returns how many recorded lines carry tag
func (r *Recorder) Count(tag string) int {
	n := 0
	prefix := "[" + tag + "]"
	for _, l := range r.Lines {
		if strings.HasPrefix(l, prefix) {
			n++
		}
	}
	return n
}
