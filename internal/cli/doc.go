// Package cli defines the Cobra command tree for the ruixen-ui CLI. Each file
// registers one top-level command with the root command. Commands delegate to
// internal/workflow and only handle flags, wiring and exit status.
package cli
