package project

import (
	"path"
	"regexp"

	"github.com/ruixen-labs/ruixen-ui/internal/framework"
)

var atAliasImport = regexp.MustCompile(`from\s+(['"])@/`)

// ResolveComponentPath maps a registry file path to its project-relative
// destination: <components>/ui/<file name>.
func ResolveComponentPath(src string, aliases Aliases) string {
	return path.Join(aliases.Components, "ui", path.Base(src))
}

// ImportAlias returns the path alias component imports use in the framework.
func ImportAlias(fw framework.Framework) string {
	if fw == framework.ReactRouter {
		return "~"
	}
	return "@"
}

// RewriteImports rewrites "@/" imports to the framework's alias.
func RewriteImports(content string, fw framework.Framework) string {
	if ImportAlias(fw) == "@" {
		return content
	}
	return atAliasImport.ReplaceAllString(content, "from ${1}~/")
}
