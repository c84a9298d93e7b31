package framework

import (
	"bytes"
	"io/fs"

	"github.com/PuerkitoBio/goquery"
	"github.com/bmatcuk/doublestar/v4"

	"github.com/ruixen-labs/ruixen-ui/internal/manifest"
)

// Framework is a supported project framework.
type Framework string

const (
	NextJS      Framework = "nextjs"
	ViteReact   Framework = "vite-react"
	ReactRouter Framework = "react-router"
	Unknown     Framework = "unknown"
)

// DisplayName returns the human-readable framework name.
func (f Framework) DisplayName() string {
	switch f {
	case NextJS:
		return "Next.js"
	case ViteReact:
		return "Vite + React"
	case ReactRouter:
		return "React Router 7"
	default:
		return "Unknown"
	}
}

// AppStructure is the Next.js routing layout.
type AppStructure string

const (
	AppRouter        AppStructure = "app-router"
	PagesRouter      AppStructure = "pages-router"
	UnknownStructure AppStructure = "unknown"
)

// Details records the evidence behind a detection.
type Details struct {
	HasConfig              bool
	HasReactDependency     bool
	HasFrameworkDependency bool
	AppStructure           AppStructure // Next.js only
	ConfigFiles            []string
}

// Detection is the result of Detect.
type Detection struct {
	Framework Framework
	Version   string // declared range of the framework package, if any
	Details   Details
}

// Supported reports whether the framework is one the CLI can configure.
func (d Detection) Supported() bool {
	return d.Framework != Unknown
}

// Config file patterns per framework.
const (
	nextConfigGlob        = "next.config.{js,mjs,ts}"
	reactRouterConfigGlob = "react-router.config.{ts,js}"
	viteConfigGlob        = "vite.config.{js,ts,mjs}"
)

var reactRouterIndicators = []string{
	"app/routes.ts",
	"app/root.tsx",
	"app/entry.client.tsx",
	"app/entry.server.tsx",
}

var viteReactIndicators = []string{
	"src/App.tsx",
	"src/App.jsx",
	"src/main.tsx",
	"src/main.jsx",
}

// Detect inspects the project rooted at fsys. Next.js is checked first, then
// React Router in framework mode, then Vite with React. Anything else,
// including Create React App, is Unknown.
func Detect(fsys fs.FS) Detection {
	pkg, err := manifest.Read(fsys)
	if err != nil {
		return Detection{Framework: Unknown, Details: Details{ConfigFiles: []string{}}}
	}

	deps := pkg.All()
	hasReact := has(deps, "react")

	// Next.js
	nextConfigs := glob(fsys, nextConfigGlob)
	hasNext := has(deps, "next")
	if hasNext || len(nextConfigs) > 0 {
		return Detection{
			Framework: NextJS,
			Version:   deps["next"],
			Details: Details{
				HasConfig:              len(nextConfigs) > 0,
				HasReactDependency:     hasReact,
				HasFrameworkDependency: hasNext,
				AppStructure:           nextStructure(fsys),
				ConfigFiles:            nextConfigs,
			},
		}
	}

	// React Router 7 framework mode
	rrConfigs := glob(fsys, reactRouterConfigGlob)
	hasReactRouter := has(deps, "react-router")
	if hasReactRouter && hasReact {
		if anyExists(fsys, reactRouterIndicators) || has(deps, "@react-router/dev") || len(rrConfigs) > 0 {
			return Detection{
				Framework: ReactRouter,
				Version:   deps["react-router"],
				Details: Details{
					HasConfig:              len(rrConfigs) > 0,
					HasReactDependency:     true,
					HasFrameworkDependency: true,
					ConfigFiles:            rrConfigs,
				},
			}
		}
	}

	// Vite + React
	viteConfigs := glob(fsys, viteConfigGlob)
	hasVite := has(deps, "vite")
	if (hasVite || len(viteConfigs) > 0) && hasReact {
		isReact := has(deps, "@vitejs/plugin-react") || has(deps, "@vitejs/plugin-react-swc") ||
			anyExists(fsys, viteReactIndicators) || hasReactRoot(fsys, "index.html")
		if isReact {
			return Detection{
				Framework: ViteReact,
				Version:   deps["vite"],
				Details: Details{
					HasConfig:              len(viteConfigs) > 0,
					HasReactDependency:     true,
					HasFrameworkDependency: hasVite,
					ConfigFiles:            viteConfigs,
				},
			}
		}
	}

	return Detection{
		Framework: Unknown,
		Details: Details{
			HasReactDependency: hasReact,
			ConfigFiles:        []string{},
		},
	}
}

func nextStructure(fsys fs.FS) AppStructure {
	if exists(fsys, "app/layout.tsx") {
		return AppRouter
	}
	if anyExists(fsys, []string{"pages/_app.tsx", "pages/_app.js", "pages/index.tsx", "pages/index.js"}) {
		return PagesRouter
	}
	return UnknownStructure
}

// hasReactRoot reports whether the HTML file has an element with id "root".
func hasReactRoot(fsys fs.FS, name string) bool {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return false
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return false
	}
	return doc.Find("#root").Length() > 0
}

func glob(fsys fs.FS, pattern string) []string {
	matches, err := doublestar.Glob(fsys, pattern)
	if err != nil || matches == nil {
		return []string{}
	}
	return matches
}

func has(deps map[string]string, name string) bool {
	_, ok := deps[name]
	return ok
}

func exists(fsys fs.FS, name string) bool {
	_, err := fs.Stat(fsys, name)
	return err == nil
}

func anyExists(fsys fs.FS, names []string) bool {
	for _, n := range names {
		if exists(fsys, n) {
			return true
		}
	}
	return false
}
