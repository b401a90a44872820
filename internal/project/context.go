// Package project holds the immutable snapshot of everything the integration
// tasks need to know about the target project. A Context is assembled once by
// the CLI layer after flag and path resolution and is read-only for the
// lifetime of a run.
package project

import (
	"fmt"
	"path/filepath"
)

// Toolchain identifies the supported project scaffold. It determines which
// configuration file is edited and which matcher set applies.
type Toolchain string

const (
	ToolchainVite   Toolchain = "vite"
	ToolchainRollup Toolchain = "rollup"
	ToolchainNext   Toolchain = "next"
)

// ParseToolchain validates a user-supplied toolchain name.
func ParseToolchain(s string) (Toolchain, error) {
	switch Toolchain(s) {
	case ToolchainVite, ToolchainRollup, ToolchainNext:
		return Toolchain(s), nil
	}
	return "", fmt.Errorf("unsupported toolchain %q (want vite, rollup or next)", s)
}

// Location is a resolved file or directory, kept in both absolute and
// project-root-relative form. The relative form appears in messages and in
// generated configuration.
type Location struct {
	Abs string
	Rel string
}

// Loc builds a Location from the project root and a root-relative path.
func Loc(root, rel string) Location {
	return Location{Abs: filepath.Join(root, rel), Rel: filepath.ToSlash(rel)}
}

// Context describes one target project. Tasks receive it by reference and
// never modify it.
type Context struct {
	Root      string
	Toolchain Toolchain

	// TypeScript selects the typed variants of generated files and grammars.
	TypeScript bool
	// Subscriptions enables the realtime channel (GraphQL subscriptions over
	// WebSocket) in the generated environment.
	Subscriptions bool

	MainEntry   Location // file whose root JSX gets wrapped
	Config      Location // toolchain configuration file
	Environment Location // Relay environment module to generate
	Schema      Location // GraphQL schema file
	ArtifactDir Location // directory for compiler-generated artifacts
}

// ScriptExt returns the extension for generated script files.
func (c *Context) ScriptExt() string {
	if c.TypeScript {
		return ".ts"
	}
	return ".js"
}

// RelayLanguage returns the language name used in Relay compiler settings.
func (c *Context) RelayLanguage() string {
	if c.TypeScript {
		return "typescript"
	}
	return "javascript"
}
