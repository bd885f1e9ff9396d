package service

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeStub installs a fake systemctl into a fresh PATH and returns after the
// environment is set. The script body decides exit code and output.
func writeStub(t *testing.T, script string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script stubs require a unix shell")
	}

	dir := t.TempDir()
	stub := filepath.Join(dir, "systemctl")
	require.NoError(t, os.WriteFile(stub, []byte("#!/bin/sh\n"+script), 0755))
	t.Setenv("PATH", dir)
}

func TestStatusActive(t *testing.T) {
	writeStub(t, "exit 0\n")

	c := NewController()
	assert.Equal(t, StatusActive, c.Status(context.Background()))
}

func TestStatusInactive(t *testing.T) {
	writeStub(t, "echo inactive\nexit 3\n")

	c := NewController()
	assert.Equal(t, StatusInactive, c.Status(context.Background()))
}

func TestStatusUnknownWhenBinaryMissing(t *testing.T) {
	// An empty PATH means systemctl cannot be found at all.
	t.Setenv("PATH", t.TempDir())

	c := NewController()
	assert.Equal(t, StatusUnknown, c.Status(context.Background()))
}

func TestStatusPassesUserScopeArguments(t *testing.T) {
	// The stub only succeeds when called the way the panel must call it.
	writeStub(t, `[ "$1" = "--user" ] || exit 4
[ "$2" = "is-active" ] || exit 4
[ "$3" = "smarttype" ] || exit 4
exit 0
`)

	c := NewController()
	assert.Equal(t, StatusActive, c.Status(context.Background()))
}

func TestStartSuccess(t *testing.T) {
	writeStub(t, "exit 0\n")

	c := NewController()
	assert.NoError(t, c.Start(context.Background()))
}

func TestStartFailureCapturesDiagnostic(t *testing.T) {
	writeStub(t, "echo 'Failed to start smarttype.service: Unit not found.' >&2\nexit 1\n")

	c := NewController()
	err := c.Start(context.Background())

	require.Error(t, err)
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "start", svcErr.Verb)
	assert.Contains(t, svcErr.Output, "Unit not found")
	assert.Contains(t, err.Error(), "Unit not found")
}

func TestStopAndRestartUseTheirVerbs(t *testing.T) {
	// Fail on everything so the verb is visible in the error.
	writeStub(t, "echo \"verb=$2\" >&2\nexit 1\n")

	c := NewController()

	err := c.Stop(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "verb=stop")

	err = c.Restart(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "verb=restart")
}

func TestRunErrorWhenBinaryMissing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	c := NewController()
	err := c.Restart(context.Background())

	require.Error(t, err)
	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "restart", svcErr.Verb)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "Active", StatusActive.String())
	assert.Equal(t, "Inactive", StatusInactive.String())
	assert.Equal(t, "Unknown", StatusUnknown.String())
}
