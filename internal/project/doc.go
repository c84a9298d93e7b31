// Package project manages the per-project configuration file written by init
// and read by add, the framework presets that seed it, the mapping from
// registry file paths to project paths, and rollback of a failed init.
package project
