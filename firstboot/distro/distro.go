// Package distro identifies the running distribution and desktop
// environment. Detection happens once at start-up; the resulting Info is
// passed explicitly to every component that needs it.
package distro

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/ini.v1"
)

// ID is the canonical identifier of a supported distribution.
type ID string

const (
	Arch     ID = "arch"
	Fedora   ID = "fedora"
	Debian   ID = "debian"
	Ubuntu   ID = "ubuntu"
	OpenSUSE ID = "opensuse"
)

// Desktop is the canonical identifier of a desktop environment.
type Desktop string

const (
	GNOME   Desktop = "gnome"
	KDE     Desktop = "kde"
	Cosmic  Desktop = "cosmic"
	Generic Desktop = "generic"
)

// Info describes the target system. It is the only configuration the
// resolver and installer depend on.
type Info struct {
	ID      ID
	Name    string
	Version string
	Desktop Desktop
}

// DefaultOSReleasePath is where os-release(5) lives on every supported
// distribution.
const DefaultOSReleasePath = "/etc/os-release"

// Detect reads the os-release file at path and returns the canonical
// distribution identity. A missing or unusable file is fatal to the
// caller: without a distro identity the resolver cannot function.
func Detect(path string) (Info, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return Info{}, fmt.Errorf("cannot identify distribution: %w", err)
	}

	section := cfg.Section("")
	id := strings.Trim(section.Key("ID").String(), `"`)
	like := strings.Trim(section.Key("ID_LIKE").String(), `"`)

	canonical, ok := canonicalID(id)
	if !ok {
		// ID_LIKE lists parent distros, nearest first.
		for _, candidate := range strings.Fields(like) {
			if canonical, ok = canonicalID(candidate); ok {
				break
			}
		}
	}
	if !ok {
		return Info{}, fmt.Errorf("unsupported distribution %q (ID_LIKE=%q)", id, like)
	}

	return Info{
		ID:      canonical,
		Name:    strings.Trim(section.Key("NAME").String(), `"`),
		Version: strings.Trim(section.Key("VERSION_ID").String(), `"`),
		Desktop: CurrentDesktop(),
	}, nil
}

func canonicalID(id string) (ID, bool) {
	switch strings.ToLower(id) {
	case "arch", "archlinux", "manjaro", "endeavouros", "cachyos":
		return Arch, true
	case "fedora", "nobara":
		return Fedora, true
	case "ubuntu", "linuxmint", "pop":
		return Ubuntu, true
	case "debian":
		return Debian, true
	case "opensuse", "opensuse-tumbleweed", "opensuse-leap", "suse":
		return OpenSUSE, true
	}
	return "", false
}

// CurrentDesktop normalizes XDG_CURRENT_DESKTOP into a canonical value.
func CurrentDesktop() Desktop {
	return NormalizeDesktop(os.Getenv("XDG_CURRENT_DESKTOP"))
}

// NormalizeDesktop collapses a desktop-environment identifier into the
// small canonical set used to select environment-specific package
// lists. Unrecognized values yield Generic, never an error.
func NormalizeDesktop(value string) Desktop {
	v := strings.ToLower(value)
	switch {
	case strings.Contains(v, "gnome"):
		return GNOME
	case strings.Contains(v, "kde"), strings.Contains(v, "plasma"):
		return KDE
	case strings.Contains(v, "cosmic"):
		return Cosmic
	}
	return Generic
}
