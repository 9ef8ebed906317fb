// Package installer turns lists of logical package keys into install
// operations across the native and universal channels, producing a
// per-key report. No failure in one key ever aborts the rest of a
// batch.
package installer

import (
	"context"
	"strings"

	log "github.com/sirupsen/logrus"

	pm "github.com/m-217/firstboot/firstboot/packagemanager"
	"github.com/m-217/firstboot/firstboot/resolver"
)

// Installer binds the resolver to the channels available on this
// system. AUR is nil on anything but Arch, or when no helper is
// installed; Primary and Backup may be nil when a channel's tool is
// absent.
type Installer struct {
	Resolver *resolver.Resolver
	Native   pm.NativeManager
	AUR      pm.NativeManager
	Primary  pm.UniversalManager
	Backup   pm.UniversalManager
}

// InstallNative resolves each key for the native channel and installs
// every concrete package the resolution expands to. Each concrete name
// is installed and reported independently.
func (i *Installer) InstallNative(ctx context.Context, keys []string) Report {
	var report Report
	for _, key := range keys {
		resolved := i.Resolver.ResolveNative(key)
		for _, pkg := range strings.Fields(resolved) {
			report = append(report, i.installOne(ctx, key, pkg))
		}
	}
	return report
}

func (i *Installer) installOne(ctx context.Context, key, pkg string) KeyResult {
	res := KeyResult{Key: key, Package: pkg, Channel: i.Native.Name()}

	if i.Native.IsInstalled(ctx, pkg) {
		res.Status = StatusSkipped
		res.Detail = "already installed"
		return res
	}

	log.WithFields(log.Fields{"key": key, "package": pkg}).Info("Installing")
	if err := i.Native.Install(ctx, pkg); err != nil {
		res.Status = StatusFailed
		res.Detail = err.Error()
		log.WithError(err).WithField("package", pkg).Warn("Native install failed")
		return res
	}

	res.Status = StatusOK
	return res
}

// RemoveNative resolves each key and removes the packages that are
// installed. Absent packages are reported as skipped.
func (i *Installer) RemoveNative(ctx context.Context, keys []string) Report {
	var report Report
	for _, key := range keys {
		resolved := i.Resolver.ResolveNative(key)
		for _, pkg := range strings.Fields(resolved) {
			res := KeyResult{Key: key, Package: pkg, Channel: i.Native.Name()}
			if !i.Native.IsInstalled(ctx, pkg) {
				res.Status = StatusSkipped
				res.Detail = "not installed"
				report = append(report, res)
				continue
			}
			if err := i.Native.Remove(ctx, pkg); err != nil {
				res.Status = StatusFailed
				res.Detail = err.Error()
			} else {
				res.Status = StatusOK
			}
			report = append(report, res)
		}
	}
	return report
}

// InstallUniversal installs each key through the first channel that
// succeeds, in strict order: the native/AUR channel with the original
// key, then the primary universal channel, then the backup one. The
// first success short-circuits; exhausting all three marks the key
// failed, and processing always continues with the next key.
func (i *Installer) InstallUniversal(ctx context.Context, keys []string) Report {
	var report Report
	for _, key := range keys {
		report = append(report, i.installUniversalOne(ctx, key))
	}
	return report
}

func (i *Installer) installUniversalOne(ctx context.Context, key string) KeyResult {
	var detail []string

	// Native attempt keeps the suffixed key verbatim: on Arch an AUR
	// helper resolves "-bin"/"-git" variants directly. The resolution
	// may expand to several names; each installs as its own argument.
	if mgr := i.nativeChannel(); mgr != nil {
		pkgs := strings.Fields(i.Resolver.ResolveNative(key))
		missing := 0
		for _, pkg := range pkgs {
			if !mgr.IsInstalled(ctx, pkg) {
				missing++
			}
		}
		if missing == 0 {
			return KeyResult{Key: key, Package: strings.Join(pkgs, " "), Channel: mgr.Name(), Status: StatusSkipped, Detail: "already installed"}
		}

		var nativeErr error
		for _, pkg := range pkgs {
			if mgr.IsInstalled(ctx, pkg) {
				continue
			}
			log.WithFields(log.Fields{"key": key, "package": pkg, "channel": mgr.Name()}).Info("Installing")
			if nativeErr = mgr.Install(ctx, pkg); nativeErr != nil {
				break
			}
		}
		if nativeErr == nil {
			return KeyResult{Key: key, Package: strings.Join(pkgs, " "), Channel: mgr.Name(), Status: StatusOK}
		}
		detail = append(detail, mgr.Name()+": "+nativeErr.Error())
	}

	// Universal lookups use the base name with the variant suffix
	// stripped.
	base := resolver.BaseName(key)
	for _, channel := range []pm.UniversalManager{i.Primary, i.Backup} {
		if channel == nil {
			continue
		}
		id := i.Resolver.ResolveUniversal(base, channel.Channel())
		if id == "" {
			id = base
		}
		if channel.IsInstalled(ctx, id) {
			return KeyResult{Key: key, Package: id, Channel: channel.Channel(), Status: StatusSkipped, Detail: "already installed"}
		}
		log.WithFields(log.Fields{"key": key, "channel": channel.Channel(), "id": id}).Info("Installing")
		err := channel.Install(ctx, id)
		if err == nil {
			return KeyResult{Key: key, Package: id, Channel: channel.Channel(), Status: StatusOK}
		}
		detail = append(detail, channel.Channel()+": "+err.Error())
	}

	log.WithField("key", key).Warn("All channels failed")
	return KeyResult{Key: key, Status: StatusFailed, Detail: strings.Join(detail, "; ")}
}

func (i *Installer) nativeChannel() pm.NativeManager {
	if i.AUR != nil {
		return i.AUR
	}
	return i.Native
}
