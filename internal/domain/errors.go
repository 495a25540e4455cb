package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors
var (
	// ErrInvalidAddress is returned when an Ethereum address is invalid
	ErrInvalidAddress = errors.New("invalid address")

	// ErrAuditMismatch is returned when declared and deployed records differ
	ErrAuditMismatch = errors.New("declared and deployed deployments differ")
)

// ConfigNotFoundError is returned when the project root holds none of the
// expected configuration files.
type ConfigNotFoundError struct {
	Root       string
	Candidates []string
}

func (e *ConfigNotFoundError) Error() string {
	switch len(e.Candidates) {
	case 0:
		return fmt.Sprintf("no configuration found in %s", e.Root)
	case 1:
		return fmt.Sprintf("no %s found in %s", e.Candidates[0], e.Root)
	default:
		return fmt.Sprintf("none of %s found in %s", strings.Join(e.Candidates, ", "), e.Root)
	}
}

// ConfigParseError is returned when the declared deployments file is malformed
type ConfigParseError struct {
	Path    string
	Network string // empty when the file as a whole can't be parsed
	Err     error
}

func (e *ConfigParseError) Error() string {
	if e.Network != "" {
		return fmt.Sprintf("failed to parse %s: network %q: %v", e.Path, e.Network, e.Err)
	}
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

func (e *ConfigParseError) Unwrap() error {
	return e.Err
}

// DeploymentsDirNotFoundError is returned when the deployments directory is absent
type DeploymentsDirNotFoundError struct {
	Path string
}

func (e *DeploymentsDirNotFoundError) Error() string {
	return fmt.Sprintf("deployments directory not found: %s", e.Path)
}

// InvalidFlagCombinationError is returned by the command layer when flags
// can't be used together.
type InvalidFlagCombinationError struct {
	Flag   string
	Reason string
}

func (e *InvalidFlagCombinationError) Error() string {
	return fmt.Sprintf("invalid use of --%s: %s", e.Flag, e.Reason)
}

// NetworkNotFoundError is returned when a network filter matches nothing
type NetworkNotFoundError struct {
	Network     string
	Suggestions []string
}

func (e *NetworkNotFoundError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("network %q not found", e.Network)
	}
	return fmt.Sprintf("network %q not found (did you mean %s?)", e.Network, strings.Join(e.Suggestions, ", "))
}
