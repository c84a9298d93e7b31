// Package registry fetches component definitions from the remote registry and
// resolves a request for one or more components into the dependency-first list
// of components to install. It validates the registry document against an
// embedded JSON schema, builds and flattens internal dependency trees, and
// fetches component source files.
package registry
