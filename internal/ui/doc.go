// Package ui renders user-facing command output and asks the interactive
// questions init and add need.
package ui
