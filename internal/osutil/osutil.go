// Package osutil is a small seam over the OS calls involved in
// resolving the journal and config directories. Path-resolution
// failures (no home dir, unwritable config dir) are otherwise
// impossible to reach from a test.
package osutil

import "os"

// PathProvider is the set of OS calls storage and config path
// resolution go through.
type PathProvider interface {
	UserConfigDir() (string, error)
	MkdirAll(path string, perm os.FileMode) error
}

// DefaultPathProvider forwards straight to the os package.
type DefaultPathProvider struct{}

func (DefaultPathProvider) UserConfigDir() (string, error) {
	return os.UserConfigDir()
}

func (DefaultPathProvider) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Provider is what production code calls through. Tests swap it with
// SetProvider and restore it with ResetProvider.
var Provider PathProvider = DefaultPathProvider{}

func SetProvider(p PathProvider) {
	Provider = p
}

func ResetProvider() {
	Provider = DefaultPathProvider{}
}
