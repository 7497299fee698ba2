package fonts

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/llmdiagram/errors"
)

func TestParseEntry(t *testing.T) {
	tests := []struct {
		line     string
		file     string
		families []string
	}{
		{"/usr/share/fonts/Virgil.ttf: Virgil", "/usr/share/fonts/Virgil.ttf", []string{"Virgil"}},
		{"/usr/share/fonts/dejavu/DejaVuSans.ttf: DejaVu Sans,DejaVu Sans Book", "/usr/share/fonts/dejavu/DejaVuSans.ttf", []string{"DejaVu Sans", "DejaVu Sans Book"}},
		{"/fonts/nofamily.ttf: ", "/fonts/nofamily.ttf", nil},
		{"garbage", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			e := ParseEntry(tt.line)
			assert.Equal(t, tt.line, e.Line)
			assert.Equal(t, tt.file, e.File)
			assert.Equal(t, tt.families, e.Families)
		})
	}
}

func writeScript(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts not supported")
	}
	path := filepath.Join(t.TempDir(), "fake-fc-list")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755))
	return path
}

func TestFCListParsesOutput(t *testing.T) {
	script := writeScript(t, `
echo "/usr/share/fonts/Virgil.woff2: Virgil"
echo ""
echo "/usr/share/fonts/DejaVuSans.ttf: DejaVu Sans"
`)
	entries, err := NewFCList(script).List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "/usr/share/fonts/Virgil.woff2", entries[0].File)
	assert.Equal(t, []string{"DejaVu Sans"}, entries[1].Families)
}

func TestFCListPassesArguments(t *testing.T) {
	script := writeScript(t, `echo "args: $1 $2"`)
	entries, err := NewFCList(script).List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "args: : family,file", entries[0].Line)
}

func TestFCListMissingCommand(t *testing.T) {
	_, err := NewFCList(filepath.Join(t.TempDir(), "no-such-fc-list")).List(context.Background())
	require.Error(t, err)
	assert.Contains(t, errors.Hint(err), "fontconfig")
}

func TestFCListCommandFails(t *testing.T) {
	script := writeScript(t, "echo 'cache locked' >&2\nexit 3\n")
	_, err := NewFCList(script).List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exit status 3")
	assert.Contains(t, errors.FlattenDetails(err), "cache locked")
}

func TestNewFCListDefault(t *testing.T) {
	f := NewFCList("")
	assert.Equal(t, DefaultCommand, f.Command)
	assert.Equal(t, []string{":", "family,file"}, f.Args)
}
