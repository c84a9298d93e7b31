// Package scaffold renders the files the CLI generates rather than fetches:
// the className-merging utils module and the default Tailwind configuration
// skeletons. Templates are embedded into the binary.
package scaffold
