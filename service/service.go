// Package service controls the SmartType daemon through systemd.
//
// Every operation is one bounded systemctl invocation in user scope. The
// daemon's real state lives in systemd; nothing is cached here.
package service

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// ServiceName is the systemd unit the panel manages.
const ServiceName = "smarttype"

// DefaultTimeout bounds each systemctl invocation so a hung service manager
// cannot block the panel indefinitely.
const DefaultTimeout = 10 * time.Second

// Status is the daemon's state as reported by systemctl is-active.
type Status int

const (
	StatusUnknown Status = iota
	StatusActive
	StatusInactive
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "Active"
	case StatusInactive:
		return "Inactive"
	default:
		return "Unknown"
	}
}

// ServiceError reports a failed service operation together with the
// diagnostic text systemctl printed.
type ServiceError struct {
	Verb   string
	Output string
	Err    error
}

func (e *ServiceError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("systemctl %s %s: %v: %s", e.Verb, ServiceName, e.Err, e.Output)
	}
	return fmt.Sprintf("systemctl %s %s: %v", e.Verb, ServiceName, e.Err)
}

func (e *ServiceError) Unwrap() error { return e.Err }

// Controller issues start/stop/restart/status requests for the daemon's
// systemd unit. The zero value is not usable; use NewController.
type Controller struct {
	service string
	timeout time.Duration
}

func NewController() *Controller {
	return &Controller{
		service: ServiceName,
		timeout: DefaultTimeout,
	}
}

// Start starts the daemon.
func (c *Controller) Start(ctx context.Context) error {
	return c.run(ctx, "start")
}

// Stop stops the daemon.
func (c *Controller) Stop(ctx context.Context) error {
	return c.run(ctx, "stop")
}

// Restart restarts the daemon. Called after every save so the daemon picks up
// the new settings.
func (c *Controller) Restart(ctx context.Context) error {
	return c.run(ctx, "restart")
}

// Status polls systemctl is-active. Exit 0 means active, a clean non-zero
// exit means inactive, and any invocation failure (systemctl missing, no
// permission, timeout) degrades to StatusUnknown. Status never returns an
// error; the display has a gray state for exactly this case.
func (c *Controller) Status(ctx context.Context) Status {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "systemctl", "--user", "is-active", c.service)
	err := cmd.Run()
	if err == nil {
		return StatusActive
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && ctx.Err() == nil {
		return StatusInactive
	}
	return StatusUnknown
}

func (c *Controller) run(ctx context.Context, verb string) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "systemctl", "--user", verb, c.service)
	output, err := cmd.CombinedOutput()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			err = fmt.Errorf("timed out after %s: %w", c.timeout, err)
		}
		return &ServiceError{
			Verb:   verb,
			Output: strings.TrimSpace(string(output)),
			Err:    err,
		}
	}
	return nil
}
