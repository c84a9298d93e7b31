// Package pkgmanager installs npm packages into the target project with the
// package manager its lock file indicates.
package pkgmanager
