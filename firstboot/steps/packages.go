package steps

import "github.com/m-217/firstboot/firstboot/distro"

// Package catalogs. Keys are logical names; the resolver maps them to
// concrete per-distro identifiers at install time.

var baseUtilities = []string{
	"build-tools",
	"curl",
	"fastfetch",
	"fzf",
	"git",
	"openssh",
	"rsync",
	"wget",
	"zoxide",
}

var nativeDefault = []string{
	"bat",
	"btop",
	"firefox",
	"gimp",
	"htop",
	"libreoffice",
	"ntfs",
	"telegram",
	"vlc",
	"vscode",
}

var nativeMinimal = []string{
	"bat",
	"btop",
	"firefox",
	"htop",
	"libreoffice",
	"ntfs",
	"vlc",
}

var nativeDesktop = map[distro.Desktop][]string{
	distro.KDE:    {"gwenview", "kdeconnect", "okular", "qbittorrent", "spectacle"},
	distro.GNOME:  {"celluloid", "dconf-editor", "gnome-tweaks", "seahorse", "transmission-gtk"},
	distro.Cosmic: {"power-profiles-daemon", "transmission-gtk"},
}

// desktopRemovals lists packages the target desktop replaces with its
// own tooling.
var desktopRemovals = map[distro.Desktop][]string{
	distro.KDE:    {"htop"},
	distro.GNOME:  {"epiphany", "gnome-contacts", "gnome-maps", "gnome-music", "gnome-tour", "htop", "totem"},
	distro.Cosmic: {"htop"},
}

var universalDefault = []string{
	"brave-bin",
	"heroic-games-launcher-bin",
	"spotify",
	"stremio",
}

var universalMinimal = []string{
	"brave-bin",
	"stremio",
}

var universalDesktop = map[distro.Desktop][]string{
	distro.KDE:    {"net.davidotek.pupgui2"},
	distro.GNOME:  {"com.mattjakeman.ExtensionManager"},
	distro.Cosmic: {"dev.edfloreshz.CosmicTweaks"},
}

var services = []string{
	"bluetooth.service",
	"fstrim.timer",
	"sshd.service",
	"ufw.service",
}

// NativeKeys returns the native-channel package keys for the chosen
// mode and desktop. Base utilities install in their own step and are
// not included here.
func NativeKeys(mode Mode, desk distro.Desktop) []string {
	var keys []string
	if mode == ModeMinimal {
		keys = append(keys, nativeMinimal...)
	} else {
		keys = append(keys, nativeDefault...)
		keys = append(keys, nativeDesktop[desk]...)
	}
	return keys
}

// UniversalKeys returns the universal-channel package keys for the
// chosen mode and desktop.
func UniversalKeys(mode Mode, desk distro.Desktop) []string {
	var keys []string
	if mode == ModeMinimal {
		keys = append(keys, universalMinimal...)
	} else {
		keys = append(keys, universalDefault...)
		keys = append(keys, universalDesktop[desk]...)
	}
	return keys
}

// DesktopRemovals returns the packages to remove for the detected
// desktop. Unrecognized desktops yield nothing.
func DesktopRemovals(desk distro.Desktop) []string {
	return desktopRemovals[desk]
}
