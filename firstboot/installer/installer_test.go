package installer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m-217/firstboot/firstboot/distro"
	"github.com/m-217/firstboot/firstboot/resolver"
)

// fakeNative scripts a native manager and records the calls it sees,
// tagged into a shared trace so cross-channel ordering can be checked.
type fakeNative struct {
	name       string
	installed  map[string]bool
	installErr map[string]error
	removeErr  map[string]error
	trace      *[]string
}

func (f *fakeNative) Name() string { return f.name }

func (f *fakeNative) Install(_ context.Context, pkg string) error {
	*f.trace = append(*f.trace, f.name+" install "+pkg)
	return f.installErr[pkg]
}

func (f *fakeNative) Remove(_ context.Context, pkg string) error {
	*f.trace = append(*f.trace, f.name+" remove "+pkg)
	return f.removeErr[pkg]
}

func (f *fakeNative) IsInstalled(_ context.Context, pkg string) bool {
	return f.installed[pkg]
}

func (f *fakeNative) Refresh(context.Context) error    { return nil }
func (f *fakeNative) UpgradeAll(context.Context) error { return nil }

type fakeUniversal struct {
	channel    string
	installed  map[string]bool
	installErr map[string]error
	trace      *[]string
}

func (f *fakeUniversal) Channel() string { return f.channel }

func (f *fakeUniversal) Install(_ context.Context, id string) error {
	*f.trace = append(*f.trace, f.channel+" install "+id)
	return f.installErr[id]
}

func (f *fakeUniversal) IsInstalled(_ context.Context, id string) bool {
	return f.installed[id]
}

func (f *fakeUniversal) EnsureReady(context.Context) error { return nil }

func newFixture(trace *[]string) (*fakeNative, *fakeUniversal, *fakeUniversal) {
	native := &fakeNative{
		name:       "pacman",
		installed:  map[string]bool{},
		installErr: map[string]error{},
		removeErr:  map[string]error{},
		trace:      trace,
	}
	flatpak := &fakeUniversal{channel: "flatpak", installed: map[string]bool{}, installErr: map[string]error{}, trace: trace}
	snap := &fakeUniversal{channel: "snap", installed: map[string]bool{}, installErr: map[string]error{}, trace: trace}
	return native, flatpak, snap
}

func TestInstallNativePerKeyReport(t *testing.T) {
	var trace []string
	native, _, _ := newFixture(&trace)
	native.installed["curl"] = true
	native.installErr["badpkg"] = errors.New("exit status 1")

	inst := &Installer{
		Resolver: resolver.New(nil, distro.Arch),
		Native:   native,
	}

	report := inst.InstallNative(context.Background(), []string{"curl", "badpkg", "htop"})

	assert.Len(t, report, 3)
	assert.Equal(t, StatusSkipped, report[0].Status)
	assert.Equal(t, StatusFailed, report[1].Status)
	assert.Equal(t, StatusOK, report[2].Status)
	// The failing key must not abort the rest of the batch.
	assert.Contains(t, trace, "pacman install htop")
}

func TestInstallNativeExpandsMultiplePackages(t *testing.T) {
	var trace []string
	native, _, _ := newFixture(&trace)
	native.installErr["gcc-c++"] = errors.New("exit status 1")

	doc := &resolver.Document{Packages: map[string]resolver.Entry{
		"build-tools": {"fedora": "make gcc gcc-c++"},
	}}
	inst := &Installer{
		Resolver: resolver.New(doc, distro.Fedora),
		Native:   native,
	}

	report := inst.InstallNative(context.Background(), []string{"build-tools"})

	// One logical key, three concrete packages, each reported on its own.
	assert.Len(t, report, 3)
	assert.Equal(t, StatusOK, report[0].Status)
	assert.Equal(t, "make", report[0].Package)
	assert.Equal(t, StatusOK, report[1].Status)
	assert.Equal(t, StatusFailed, report[2].Status)
	assert.Equal(t, "gcc-c++", report[2].Package)
}

func TestInstallUniversalFallbackOrdering(t *testing.T) {
	var trace []string
	native, flatpak, snap := newFixture(&trace)
	native.installErr["spotify"] = errors.New("not in repos")
	flatpak.installErr["spotify"] = errors.New("no such ref")

	inst := &Installer{
		Resolver: resolver.New(nil, distro.Arch),
		Native:   native,
		Primary:  flatpak,
		Backup:   snap,
	}

	report := inst.InstallUniversal(context.Background(), []string{"spotify"})

	assert.Len(t, report, 1)
	assert.Equal(t, StatusOK, report[0].Status)
	assert.Equal(t, "snap", report[0].Channel)
	// Every tier is attempted exactly once, in order, with no skips.
	assert.Equal(t, []string{
		"pacman install spotify",
		"flatpak install spotify",
		"snap install spotify",
	}, trace)
}

func TestInstallUniversalShortCircuitsOnFirstSuccess(t *testing.T) {
	var trace []string
	native, flatpak, snap := newFixture(&trace)

	inst := &Installer{
		Resolver: resolver.New(nil, distro.Arch),
		Native:   native,
		Primary:  flatpak,
		Backup:   snap,
	}

	report := inst.InstallUniversal(context.Background(), []string{"stremio"})

	assert.Equal(t, StatusOK, report[0].Status)
	assert.Equal(t, "pacman", report[0].Channel)
	assert.Equal(t, []string{"pacman install stremio"}, trace)
}

func TestInstallUniversalSuffixStripping(t *testing.T) {
	var trace []string
	native, flatpak, snap := newFixture(&trace)
	native.installErr["brave-bin"] = errors.New("no AUR helper")

	doc := &resolver.Document{Packages: map[string]resolver.Entry{
		"brave": {"flatpak": "com.brave.Browser"},
	}}
	inst := &Installer{
		Resolver: resolver.New(doc, distro.Arch),
		Native:   native,
		Primary:  flatpak,
		Backup:   snap,
	}

	report := inst.InstallUniversal(context.Background(), []string{"brave-bin"})

	// Native attempt sees the suffixed key; the flatpak lookup uses the
	// stripped base name and finds its mapped identifier.
	assert.Equal(t, StatusOK, report[0].Status)
	assert.Equal(t, []string{
		"pacman install brave-bin",
		"flatpak install com.brave.Browser",
	}, trace)
}

func TestInstallUniversalNativeAttemptExpandsMultiplePackages(t *testing.T) {
	var trace []string
	native, flatpak, snap := newFixture(&trace)

	doc := &resolver.Document{Packages: map[string]resolver.Entry{
		"gaming-tools": {"arch": "steam lutris"},
	}}
	inst := &Installer{
		Resolver: resolver.New(doc, distro.Arch),
		Native:   native,
		Primary:  flatpak,
		Backup:   snap,
	}

	report := inst.InstallUniversal(context.Background(), []string{"gaming-tools"})

	// Two concrete names, two invocations, never one joined argument.
	assert.Equal(t, StatusOK, report[0].Status)
	assert.Equal(t, "steam lutris", report[0].Package)
	assert.Equal(t, []string{
		"pacman install steam",
		"pacman install lutris",
	}, trace)
}

func TestInstallUniversalNativeMultiPackageFailureFallsThrough(t *testing.T) {
	var trace []string
	native, flatpak, snap := newFixture(&trace)
	native.installErr["lutris"] = errors.New("not in repos")

	doc := &resolver.Document{Packages: map[string]resolver.Entry{
		"gaming-tools": {"arch": "steam lutris", "flatpak": "com.valvesoftware.Steam"},
	}}
	inst := &Installer{
		Resolver: resolver.New(doc, distro.Arch),
		Native:   native,
		Primary:  flatpak,
		Backup:   snap,
	}

	report := inst.InstallUniversal(context.Background(), []string{"gaming-tools"})

	assert.Equal(t, StatusOK, report[0].Status)
	assert.Equal(t, "flatpak", report[0].Channel)
	assert.Equal(t, []string{
		"pacman install steam",
		"pacman install lutris",
		"flatpak install com.valvesoftware.Steam",
	}, trace)
}

func TestInstallUniversalPrefersAURChannel(t *testing.T) {
	var trace []string
	native, flatpak, snap := newFixture(&trace)
	aur := &fakeNative{
		name:       "yay",
		installed:  map[string]bool{},
		installErr: map[string]error{},
		trace:      &trace,
	}

	inst := &Installer{
		Resolver: resolver.New(nil, distro.Arch),
		Native:   native,
		AUR:      aur,
		Primary:  flatpak,
		Backup:   snap,
	}

	report := inst.InstallUniversal(context.Background(), []string{"heroic-games-launcher-bin"})

	assert.Equal(t, StatusOK, report[0].Status)
	assert.Equal(t, "yay", report[0].Channel)
	assert.Equal(t, []string{"yay install heroic-games-launcher-bin"}, trace)
}

func TestInstallUniversalAllChannelsFail(t *testing.T) {
	var trace []string
	native, flatpak, snap := newFixture(&trace)
	native.installErr["ghost"] = errors.New("not found")
	flatpak.installErr["ghost"] = errors.New("not found")
	snap.installErr["ghost"] = errors.New("not found")

	inst := &Installer{
		Resolver: resolver.New(nil, distro.Arch),
		Native:   native,
		Primary:  flatpak,
		Backup:   snap,
	}

	report := inst.InstallUniversal(context.Background(), []string{"ghost", "htop"})

	assert.Equal(t, StatusFailed, report[0].Status)
	assert.NotEmpty(t, report[0].Detail)
	// The next key still gets its attempts.
	assert.Equal(t, StatusOK, report[1].Status)
}

func TestInstallUniversalSkipsWhenAlreadyInstalled(t *testing.T) {
	var trace []string
	native, flatpak, snap := newFixture(&trace)
	native.installed["discord"] = true

	inst := &Installer{
		Resolver: resolver.New(nil, distro.Arch),
		Native:   native,
		Primary:  flatpak,
		Backup:   snap,
	}

	report := inst.InstallUniversal(context.Background(), []string{"discord"})

	assert.Equal(t, StatusSkipped, report[0].Status)
	assert.Empty(t, trace)
}

func TestRemoveNative(t *testing.T) {
	var trace []string
	native, _, _ := newFixture(&trace)
	native.installed["htop"] = true

	inst := &Installer{
		Resolver: resolver.New(nil, distro.Arch),
		Native:   native,
	}

	report := inst.RemoveNative(context.Background(), []string{"htop", "epiphany"})

	assert.Equal(t, StatusOK, report[0].Status)
	assert.Equal(t, StatusSkipped, report[1].Status)
	assert.Equal(t, []string{"pacman remove htop"}, trace)
}

func TestReportFilters(t *testing.T) {
	r := Report{
		{Key: "a", Status: StatusOK},
		{Key: "b", Status: StatusFailed},
		{Key: "c", Status: StatusSkipped},
		{Key: "d", Status: StatusOK},
	}

	assert.Len(t, r.Installed(), 2)
	assert.Len(t, r.Failed(), 1)
	assert.Equal(t, "b", r.Failed()[0].Key)
}
