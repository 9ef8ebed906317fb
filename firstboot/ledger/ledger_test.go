package ledger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "completed_steps"))
}

func TestIsCompleteBeforeAnyMark(t *testing.T) {
	l := newTestLedger(t)
	assert.False(t, l.IsComplete("gaming_install_packages"))
	assert.False(t, l.HasAnyProgress())
}

func TestMarkCompleteIsIdempotent(t *testing.T) {
	l := newTestLedger(t)

	assert.NoError(t, l.MarkComplete("kde_configure_shortcuts"))
	assert.True(t, l.IsComplete("kde_configure_shortcuts"))

	// Repeated marks must not duplicate the entry.
	assert.NoError(t, l.MarkComplete("kde_configure_shortcuts"))
	assert.NoError(t, l.MarkComplete("kde_configure_shortcuts"))
	assert.True(t, l.IsComplete("kde_configure_shortcuts"))

	data, err := os.ReadFile(l.Path())
	assert.NoError(t, err)
	assert.Equal(t, "kde_configure_shortcuts\n", string(data))
}

func TestMarkingOneStepDoesNotAffectAnother(t *testing.T) {
	l := newTestLedger(t)

	assert.NoError(t, l.MarkComplete("gaming_install_packages"))
	assert.True(t, l.IsComplete("gaming_install_packages"))
	assert.False(t, l.IsComplete("kde_install_packages"))
}

func TestExactLineMatchOnly(t *testing.T) {
	l := newTestLedger(t)

	err := os.WriteFile(l.Path(), []byte("gaming_install_packages\nkde_configure_shortcuts\n"), 0644)
	assert.NoError(t, err)

	assert.True(t, l.IsComplete("kde_configure_shortcuts"))
	assert.False(t, l.IsComplete("kde_install_packages"))
	assert.False(t, l.IsComplete("gaming"))
}

func TestClear(t *testing.T) {
	l := newTestLedger(t)

	assert.NoError(t, l.MarkComplete("gaming_install_packages"))
	assert.True(t, l.HasAnyProgress())

	assert.NoError(t, l.Clear())
	assert.False(t, l.IsComplete("gaming_install_packages"))
	assert.False(t, l.HasAnyProgress())

	// Clearing an absent record must not error.
	assert.NoError(t, l.Clear())
}

func TestTornFinalLineIsIgnored(t *testing.T) {
	l := newTestLedger(t)

	assert.NoError(t, l.MarkComplete("update_system"))
	// Simulate a crash mid-append.
	f, err := os.OpenFile(l.Path(), os.O_APPEND|os.O_WRONLY, 0644)
	assert.NoError(t, err)
	_, err = f.WriteString("install_pack")
	assert.NoError(t, err)
	assert.NoError(t, f.Close())

	assert.True(t, l.IsComplete("update_system"))
	assert.False(t, l.IsComplete("install_packages"))

	// The torn entry is distinct from the full name, so a rerun of the
	// interrupted step appends normally.
	assert.NoError(t, l.MarkComplete("install_packages"))
	assert.True(t, l.IsComplete("install_packages"))
}

func TestCompletedPreservesOrder(t *testing.T) {
	l := newTestLedger(t)

	assert.NoError(t, l.MarkComplete("check_prerequisites"))
	assert.NoError(t, l.MarkComplete("update_system"))
	assert.NoError(t, l.MarkComplete("install_packages"))

	assert.Equal(t, []string{"check_prerequisites", "update_system", "install_packages"}, l.Completed())
}

func TestUnreadableLedgerReadsAsEmpty(t *testing.T) {
	l := New(filepath.Join(t.TempDir(), "dir-not-file"))
	assert.NoError(t, os.Mkdir(l.Path(), 0755))

	assert.False(t, l.IsComplete("anything"))
	assert.False(t, l.HasAnyProgress())
}
