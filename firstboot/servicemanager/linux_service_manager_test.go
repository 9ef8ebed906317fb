package servicemanager

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	cm "github.com/m-217/firstboot/firstboot/commandmanager"
)

type MockCommandManager struct {
	mock.Mock
}

func (m *MockCommandManager) Run(ctx context.Context, config cm.CommandConfig) (cm.CommandResult, error) {
	args := m.Called(ctx, config)
	return args.Get(0).(cm.CommandResult), args.Error(1)
}

func (m *MockCommandManager) LookPath(tool string) bool {
	args := m.Called(tool)
	return args.Bool(0)
}

func TestEnableServiceNow(t *testing.T) {
	mockCM := new(MockCommandManager)
	lsm := &LinuxServiceManager{CommandManager: mockCM}

	mockCM.On("Run", mock.Anything, cm.CommandConfig{
		Command: "systemctl",
		Sudo:    true,
		Args:    []string{"enable", "--now", "ufw.service"},
	}).Return(cm.CommandResult{}, nil)

	assert.NoError(t, lsm.EnableServiceNow("ufw.service"))
	mockCM.AssertExpectations(t)
}

func TestCheckServiceStatus(t *testing.T) {
	mockCM := new(MockCommandManager)
	lsm := &LinuxServiceManager{CommandManager: mockCM}

	mockCM.On("Run", mock.Anything, cm.CommandConfig{
		Command: "systemctl",
		Args:    []string{"is-active", "sshd.service"},
	}).Return(cm.CommandResult{STDOUT: "active\n"}, nil)

	status, err := lsm.CheckServiceStatus("sshd.service")
	assert.NoError(t, err)
	assert.Equal(t, Active, status)
}

func TestIsServiceEnabled(t *testing.T) {
	mockCM := new(MockCommandManager)
	lsm := &LinuxServiceManager{CommandManager: mockCM}

	mockCM.On("Run", mock.Anything, cm.CommandConfig{
		Command: "systemctl",
		Args:    []string{"is-enabled", "bluetooth.service"},
	}).Return(cm.CommandResult{STDOUT: "enabled\n"}, nil)

	enabled, err := lsm.IsServiceEnabled("bluetooth.service")
	assert.NoError(t, err)
	assert.True(t, enabled)
}
