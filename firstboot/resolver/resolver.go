// Package resolver translates logical, distro-agnostic package keys
// into the identifiers the current distribution's channels install.
package resolver

import (
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/m-217/firstboot/firstboot/distro"
)

// Universal channel names.
const (
	ChannelFlatpak = "flatpak"
	ChannelSnap    = "snap"
)

// Resolver answers lookups for one target distribution. Lookups walk
// three tiers: the mapping document, the built-in table, and finally
// the key itself. A lookup never fails; worst case the logical name is
// assumed to already be the concrete one.
type Resolver struct {
	doc    *Document
	distro distro.ID
}

// New returns a resolver for the given distribution. doc may be nil
// when no mapping document is available; resolution then degrades to
// the built-in table.
func New(doc *Document, id distro.ID) *Resolver {
	return &Resolver{doc: doc, distro: id}
}

// ResolveNative returns the concrete native-channel identifier for key.
// Precedence: distro-specific mapping entry, then the "common" entry,
// then the built-in per-distro table, then key unchanged. The result
// may hold several space-separated package names.
func (r *Resolver) ResolveNative(key string) string {
	if entry := r.entry(key); entry != nil {
		if v := entry[string(r.distro)]; v != "" {
			return v
		}
		if v := entry["common"]; v != "" {
			return v
		}
	}

	if v := builtin[r.distro][key]; v != "" {
		return v
	}

	log.WithFields(log.Fields{"key": key, "distro": r.distro}).
		Debug("No mapping for key, assuming the logical name is concrete")
	return key
}

// ResolveUniversal returns the channel-specific identifier for key, or
// "" when no mapping exists. Callers treat "" as "use the base logical
// name as a heuristic identifier".
func (r *Resolver) ResolveUniversal(key, channel string) string {
	if entry := r.entry(key); entry != nil {
		return entry[channel]
	}
	return ""
}

// Channels returns the primary and backup universal channel for the
// target distribution, honoring an override in the mapping document.
func (r *Resolver) Channels() (primary, backup string) {
	if r.doc != nil {
		if order := r.doc.Channels[string(r.distro)]; len(order) == 2 {
			return order[0], order[1]
		}
	}
	// Ubuntu ships snap; everywhere else flatpak is the default.
	if r.distro == distro.Ubuntu {
		return ChannelSnap, ChannelFlatpak
	}
	return ChannelFlatpak, ChannelSnap
}

func (r *Resolver) entry(key string) Entry {
	if r.doc == nil {
		return nil
	}
	return r.doc.Packages[key]
}

// BaseName strips a trailing variant-packaging suffix ("-bin", "-git")
// from an AUR-style key. Universal-channel lookups use the base name;
// the native attempt keeps the suffixed key verbatim.
func BaseName(key string) string {
	for _, suffix := range []string{"-bin", "-git"} {
		if strings.HasSuffix(key, suffix) {
			return strings.TrimSuffix(key, suffix)
		}
	}
	return key
}
