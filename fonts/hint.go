package fonts

import (
	"context"
	"runtime"

	"github.com/shirou/gopsutil/v3/host"
)

// HostInfo is the part of the host description the install hint needs
type HostInfo struct {
	OS             string
	Platform       string
	PlatformFamily string
}

// DetectHost reads the operating system and distribution from the host
func DetectHost(ctx context.Context) (HostInfo, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return HostInfo{OS: runtime.GOOS}, err
	}
	return HostInfo{OS: info.OS, Platform: info.Platform, PlatformFamily: info.PlatformFamily}, nil
}

// fontconfig package per Linux platform family
var fontconfigPackages = map[string]string{
	"debian": "sudo apt-get install fontconfig",
	"rhel":   "sudo dnf install fontconfig",
	"fedora": "sudo dnf install fontconfig",
	"suse":   "sudo zypper install fontconfig",
	"arch":   "sudo pacman -S fontconfig",
	"alpine": "apk add fontconfig",
}

// InstallHint returns where to put the font and how to refresh the font
// cache on h, or "" when there is nothing specific to say.
func InstallHint(h HostInfo) string {
	switch h.OS {
	case "linux":
		hint := "Copy the font into ~/.local/share/fonts and run 'fc-cache -f'."
		if pkg, ok := fontconfigPackages[h.PlatformFamily]; ok {
			hint += " fc-list comes with fontconfig: " + pkg
		}
		return hint
	case "darwin":
		return "Copy the font into ~/Library/Fonts; fc-list comes with 'brew install fontconfig'."
	case "windows":
		return "Install the font for all users so Graphviz can load it; fc-list is not available natively."
	}
	return ""
}
