// Package manifest reads a JavaScript project's package.json and the
// package.json files of its installed dependencies.
package manifest
