// Package deps reconciles the package versions a component requires with the
// versions already installed in the target project, deciding what the package
// manager still needs to install.
package deps
