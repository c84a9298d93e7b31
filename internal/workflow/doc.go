// Package workflow drives the init, add and list commands by composing
// detection, configuration, registry resolution, file writing, dependency
// reconciliation and token merging.
package workflow
