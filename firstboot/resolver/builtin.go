package resolver

import "github.com/m-217/firstboot/firstboot/distro"

// builtin is the fallback tier consulted when the mapping document has
// no usable entry. It carries only the names that genuinely diverge
// between distributions; everything else falls through to identity.
var builtin = map[distro.ID]map[string]string{
	distro.Arch: {
		"vscode":         "visual-studio-code-bin",
		"kernel-headers": "linux-headers",
		"build-tools":    "base-devel",
		"openssh":        "openssh",
		"libreoffice":    "libreoffice-fresh",
		"telegram":       "telegram-desktop",
		"ntfs":           "ntfs-3g",
		"gpu-nvidia":     "nvidia-dkms nvidia-utils",
		"gpu-amd":        "xf86-video-amdgpu mesa",
		"gpu-intel":      "mesa xf86-video-intel",
	},
	distro.Fedora: {
		"vscode":         "code",
		"kernel-headers": "kernel-headers kernel-devel",
		"build-tools":    "make automake gcc gcc-c++",
		"openssh":        "openssh-server",
		"libreoffice":    "libreoffice",
		"telegram":       "telegram-desktop",
		"ntfs":           "ntfs-3g",
		"gpu-nvidia":     "akmod-nvidia",
		"gpu-amd":        "mesa-dri-drivers",
		"gpu-intel":      "mesa-dri-drivers",
	},
	distro.Debian: {
		"vscode":         "code",
		"kernel-headers": "linux-headers-amd64",
		"build-tools":    "build-essential",
		"openssh":        "openssh-server",
		"libreoffice":    "libreoffice",
		"telegram":       "telegram-desktop",
		"ntfs":           "ntfs-3g",
		"gpu-nvidia":     "nvidia-driver",
		"gpu-amd":        "firmware-amd-graphics",
		"gpu-intel":      "intel-media-va-driver",
	},
	distro.Ubuntu: {
		"vscode":         "code",
		"kernel-headers": "linux-headers-generic",
		"build-tools":    "build-essential",
		"openssh":        "openssh-server",
		"libreoffice":    "libreoffice",
		"telegram":       "telegram-desktop",
		"ntfs":           "ntfs-3g",
		"gpu-nvidia":     "nvidia-driver-535",
		"gpu-amd":        "mesa-vulkan-drivers",
		"gpu-intel":      "intel-media-va-driver",
	},
	distro.OpenSUSE: {
		"vscode":         "code",
		"kernel-headers": "kernel-default-devel",
		"build-tools":    "patterns-devel-base-devel_basis",
		"openssh":        "openssh",
		"libreoffice":    "libreoffice",
		"telegram":       "telegram-desktop",
		"ntfs":           "ntfs-3g",
		"gpu-nvidia":     "nvidia-video-G06",
		"gpu-amd":        "Mesa-dri",
		"gpu-intel":      "Mesa-dri",
	},
}
