// Package framework identifies which supported React framework a project is
// built with by inspecting its package.json and file tree.
package framework
