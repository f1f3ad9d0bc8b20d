// Package sandbox provides capability-based filesystem access control.
// It wraps the file operations applets need and restricts them to
// pre-authorized path prefixes.
package sandbox

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Common sandbox errors.
var (
	ErrAccessDenied = errors.New("access denied: path not in sandbox")
	ErrReadOnly     = errors.New("write access denied: sandbox is read-only")
)

// Permission represents file access permissions.
type Permission uint8

const (
	PermNone  Permission = 0
	PermRead  Permission = 1 << iota // Can stat paths
	PermWrite                        // Can create directories
)

// PathRule grants a permission on a path prefix.
type PathRule struct {
	Path       string // Path prefix (resolved to absolute)
	Permission Permission
}

// covers reports whether abs is the rule path itself or lies beneath it.
func (r PathRule) covers(abs string) bool {
	rest, ok := strings.CutPrefix(abs, r.Path)
	if !ok {
		return false
	}
	return rest == "" || strings.HasPrefix(rest, string(filepath.Separator))
}

// Config holds sandbox configuration.
type Config struct {
	AllowedPaths []PathRule
	// AllowCwd adds a rule for the working directory at Init time.
	AllowCwd bool
	// CwdPermission defaults to read/write when AllowCwd is set.
	CwdPermission Permission
}

type state struct {
	mu      sync.RWMutex
	rules   []PathRule
	enabled bool
}

// Native builds start with the sandbox off.
var global = &state{}

// Init installs the rules from cfg and enables the sandbox.
func Init(cfg *Config) error {
	var rules []PathRule
	if cfg.AllowCwd {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		perm := cfg.CwdPermission
		if perm == PermNone {
			perm = PermRead | PermWrite
		}
		rules = append(rules, PathRule{Path: cwd, Permission: perm})
	}
	for _, rule := range cfg.AllowedPaths {
		abs, err := filepath.Abs(rule.Path)
		if err != nil {
			continue
		}
		rules = append(rules, PathRule{Path: abs, Permission: rule.Permission})
	}

	global.mu.Lock()
	defer global.mu.Unlock()
	global.rules = rules
	global.enabled = true
	return nil
}

// Disable turns access checks off.
func Disable() {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.enabled = false
}

// IsEnabled returns whether the sandbox is enabled.
func IsEnabled() bool {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.enabled
}

func checkAccess(path string, perm Permission) error {
	global.mu.RLock()
	defer global.mu.RUnlock()

	if !global.enabled {
		return nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return ErrAccessDenied
	}

	denied := ErrAccessDenied
	for _, rule := range global.rules {
		if !rule.covers(abs) {
			continue
		}
		if rule.Permission&perm == perm {
			return nil
		}
		if perm&PermWrite != 0 && rule.Permission&PermWrite == 0 {
			denied = ErrReadOnly
		}
	}
	return denied
}

// Mkdir creates a single directory within the sandbox.
func Mkdir(path string, perm os.FileMode) error {
	if err := checkAccess(path, PermWrite); err != nil {
		return err
	}
	return os.Mkdir(path, perm)
}

// Stat returns file info within the sandbox.
func Stat(path string) (os.FileInfo, error) {
	if err := checkAccess(path, PermRead); err != nil {
		return nil, err
	}
	return os.Stat(path)
}
