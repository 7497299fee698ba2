// Package fonts checks whether the host's font registry knows the font the
// diagram is labelled with, and reports what it found.
package fonts

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/teranos/llmdiagram/errors"
	"github.com/teranos/llmdiagram/logger"
)

// DefaultCommand is the fontconfig listing tool
const DefaultCommand = "fc-list"

// DefaultArgs select one line per face with its file and family names
var DefaultArgs = []string{":", "family,file"}

// Entry is one line of the font listing
type Entry struct {
	Line     string   `json:"line"`
	File     string   `json:"file,omitempty"`
	Families []string `json:"families,omitempty"`
}

// ParseEntry splits an fc-list "family,file" line ("/path/x.ttf: Fam,Alt").
// Lines without a ": " separator keep only Line.
func ParseEntry(line string) Entry {
	e := Entry{Line: line}
	file, families, ok := strings.Cut(line, ": ")
	if !ok {
		return e
	}
	e.File = strings.TrimSpace(file)
	for _, f := range strings.Split(families, ",") {
		if f = strings.TrimSpace(f); f != "" {
			e.Families = append(e.Families, f)
		}
	}
	return e
}

// Catalog lists the fonts known to the host
type Catalog interface {
	List(ctx context.Context) ([]Entry, error)
}

// FCList queries fontconfig through an external command
type FCList struct {
	Command string
	Args    []string
}

// NewFCList creates a catalog backed by command (fc-list when empty)
func NewFCList(command string) *FCList {
	if command == "" {
		command = DefaultCommand
	}
	return &FCList{Command: command, Args: DefaultArgs}
}

// List runs the command and returns one Entry per non-empty output line
func (f *FCList) List(ctx context.Context) ([]Entry, error) {
	log := logger.LoggerFromContext(ctx, logger.ComponentLogger("fonts"))

	path, err := exec.LookPath(f.Command)
	if err != nil {
		return nil, errors.WithHint(
			errors.Wrapf(err, "font listing command %q not available", f.Command),
			"install fontconfig (it provides fc-list)")
	}

	log.Debugw("listing fonts", logger.FieldBinary, path, logger.FieldArgs, f.Args)

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, f.Args...)
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, errors.WithDetail(errors.Wrapf(err, "%s failed", f.Command), msg)
		}
		return nil, errors.Wrapf(err, "%s failed", f.Command)
	}

	var entries []Entry
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		entries = append(entries, ParseEntry(line))
	}
	log.Debugw("fonts listed", "entries", len(entries))
	return entries, nil
}

// StaticCatalog is a fixed listing, or a fixed failure when Err is set
type StaticCatalog struct {
	Entries []Entry
	Err     error
}

// NewStaticCatalog builds a catalog from raw listing lines
func NewStaticCatalog(lines ...string) *StaticCatalog {
	c := &StaticCatalog{}
	for _, l := range lines {
		c.Entries = append(c.Entries, ParseEntry(l))
	}
	return c
}

// List returns the fixed entries
func (c *StaticCatalog) List(ctx context.Context) ([]Entry, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	return c.Entries, nil
}
