package fonts

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/llmdiagram/console"
)

func noHost(context.Context) (HostInfo, error) { return HostInfo{}, nil }

func TestCheck(t *testing.T) {
	catalog := NewStaticCatalog(
		"/usr/share/fonts/Virgil.woff2: Virgil",
		"/usr/share/fonts/Excalifont.ttf: Excalifont",
		"/usr/share/fonts/DejaVuSans.ttf: DejaVu Sans",
	)

	t.Run("default target", func(t *testing.T) {
		r := Check(context.Background(), catalog, "")
		assert.Equal(t, DefaultFont, r.Target)
		require.Len(t, r.Matches, 1)
		assert.True(t, r.Found())
	})

	t.Run("custom target also matches Virgil lines", func(t *testing.T) {
		r := Check(context.Background(), catalog, "Excalifont")
		assert.Len(t, r.Matches, 2)
	})

	t.Run("listing failure", func(t *testing.T) {
		r := Check(context.Background(), &StaticCatalog{Err: fmt.Errorf("boom")}, "Virgil")
		assert.False(t, r.Found())
		assert.EqualError(t, r.Err, "boom")
	})
}

func TestDiagnoseFound(t *testing.T) {
	rec := &console.Recorder{}
	catalog := NewStaticCatalog(
		"/home/u/.local/share/fonts/Virgil.woff2: Virgil",
		"/usr/share/fonts/DejaVuSans.ttf: DejaVu Sans",
	)

	r := Diagnose(context.Background(), catalog, "Virgil", rec, WithHostDetector(noHost))

	assert.True(t, r.Found())
	assert.Equal(t, []string{
		"[INFO] Setting fontname to: Virgil",
		"[INFO] Checking for Virgil font in system fonts...",
		"[FOUND] /home/u/.local/share/fonts/Virgil.woff2: Virgil",
		"[INFO] Virgil font is available to the system.",
		"[INFO] If the font is not found, make sure fg-virgil is installed and font cache is updated.",
	}, rec.Lines)
}

func TestDiagnoseNotFound(t *testing.T) {
	rec := &console.Recorder{}
	catalog := NewStaticCatalog("/usr/share/fonts/DejaVuSans.ttf: DejaVu Sans")

	r := Diagnose(context.Background(), catalog, "/opt/fonts/Virgil.ttf", rec, WithHostDetector(noHost))

	assert.False(t, r.Found())
	assert.Equal(t, 0, rec.Count(console.TagFound))
	assert.Equal(t, 1, rec.Count(console.TagWarning))
	assert.Contains(t, rec.Lines, "[WARNING] Virgil font not found in system font list or at /opt/fonts/Virgil.ttf!")
}

func TestDiagnoseEmptyTargetMeansVirgil(t *testing.T) {
	rec := &console.Recorder{}
	catalog := NewStaticCatalog("/usr/share/fonts/DejaVuSans.ttf: DejaVu Sans")

	r := Diagnose(context.Background(), catalog, "", rec, WithHostDetector(noHost))

	assert.Equal(t, DefaultFont, r.Target)
	assert.Equal(t, "[INFO] Setting fontname to: Virgil", rec.Lines[0])
	assert.Contains(t, rec.Lines, "[WARNING] Virgil font not found in system font list or at Virgil!")
}

func TestDiagnoseListingFailureDoesNotEscape(t *testing.T) {
	rec := &console.Recorder{}
	catalog := &StaticCatalog{Err: fmt.Errorf("exec: \"fc-list\": executable file not found in $PATH")}

	var r Report
	require.NotPanics(t, func() {
		r = Diagnose(context.Background(), catalog, "Virgil", rec, WithHostDetector(noHost))
	})

	assert.Error(t, r.Err)
	assert.Equal(t, 1, rec.Count(console.TagError))
	assert.Equal(t, 0, rec.Count(console.TagWarning))
	assert.Contains(t, rec.Lines[2], "[ERROR] Could not check system fonts: exec:")
	assert.Equal(t, "[INFO] If the font is not found, make sure fg-virgil is installed and font cache is updated.", rec.Lines[len(rec.Lines)-1])
}

func TestDiagnoseAppendsHostHint(t *testing.T) {
	rec := &console.Recorder{}
	debian := func(context.Context) (HostInfo, error) {
		return HostInfo{OS: "linux", Platform: "ubuntu", PlatformFamily: "debian"}, nil
	}

	Diagnose(context.Background(), NewStaticCatalog(), "Virgil", rec, WithHostDetector(debian))

	last := rec.Lines[len(rec.Lines)-1]
	assert.Contains(t, last, "fc-cache -f")
	assert.Contains(t, last, "apt-get install fontconfig")
}

func TestInstallHint(t *testing.T) {
	assert.Contains(t, InstallHint(HostInfo{OS: "darwin"}), "~/Library/Fonts")
	assert.Contains(t, InstallHint(HostInfo{OS: "linux", PlatformFamily: "arch"}), "pacman")
	assert.NotContains(t, InstallHint(HostInfo{OS: "linux", PlatformFamily: "gentoo"}), "fontconfig:")
	assert.Empty(t, InstallHint(HostInfo{OS: "plan9"}))
}
