package mutate

import (
	"testing"

	"relaywire/internal/ast"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// An existing aliased import is reused under its alias; no declaration is
// inserted.
func TestEnsureImportReusesAlias(t *testing.T) {
	src := `import { RelayEnvironmentProvider as Provider } from "react-relay";
`
	tree := parseFixture(t, src, ast.DialectTSX)

	local, res := EnsureImport(tree, ImportSpec{
		Module: "react-relay",
		Name:   "RelayEnvironmentProvider",
		Local:  "RelayEnvironmentProvider",
	})
	assert.Equal(t, "Provider", local)
	assert.False(t, res.Applied)
	assert.Empty(t, res.Edits)
}

func TestEnsureImportReusesPlainNamedImport(t *testing.T) {
	src := `import { graphql, RelayEnvironmentProvider } from "react-relay";
`
	tree := parseFixture(t, src, ast.DialectTSX)

	local, res := EnsureImport(tree, ImportSpec{Module: "react-relay", Name: "RelayEnvironmentProvider", Local: "X"})
	assert.Equal(t, "RelayEnvironmentProvider", local)
	assert.False(t, res.Applied)
}

func TestEnsureImportReusesDefault(t *testing.T) {
	src := `import Env from "./RelayEnvironment";
`
	tree := parseFixture(t, src, ast.DialectTSX)

	local, res := EnsureImport(tree, ImportSpec{Module: "./RelayEnvironment", Default: true, Local: "RelayEnvironment"})
	assert.Equal(t, "Env", local)
	assert.False(t, res.Applied)
}

// A default import of the same module does not satisfy a named request.
func TestEnsureImportDefaultDoesNotSatisfyNamed(t *testing.T) {
	src := `import relay from "react-relay";
`
	tree := parseFixture(t, src, ast.DialectTSX)

	local, res := EnsureImport(tree, ImportSpec{Module: "react-relay", Name: "RelayEnvironmentProvider", Local: "RelayEnvironmentProvider"})
	assert.Equal(t, "RelayEnvironmentProvider", local)
	assert.True(t, res.Applied)
}

func TestEnsureImportInsertsAfterLastImport(t *testing.T) {
	src := `import React from "react";
import App from "./App";

console.log(App);
`
	tree := parseFixture(t, src, ast.DialectJavaScript)

	local, res := EnsureImport(tree, ImportSpec{Module: "vite-plugin-relay", Default: true, Local: "relay"})
	require.Equal(t, "relay", local)

	want := `import React from "react";
import App from "./App";
import relay from "vite-plugin-relay";

console.log(App);
`
	assert.Equal(t, want, applyResult(t, src, res))
}

func TestEnsureImportIntoImportlessFile(t *testing.T) {
	src := `const x = 1;
`
	tree := parseFixture(t, src, ast.DialectJavaScript)

	_, res := EnsureImport(tree, ImportSpec{Module: "react-relay", Name: "RelayEnvironmentProvider", Local: "RelayEnvironmentProvider"})
	want := `import { RelayEnvironmentProvider } from "react-relay";
const x = 1;
`
	assert.Equal(t, want, applyResult(t, src, res))
}

// Directives such as "use client" stay above the inserted import.
func TestEnsureImportRespectsDirectives(t *testing.T) {
	src := `"use client";

const x = 1;
`
	tree := parseFixture(t, src, ast.DialectJavaScript)

	_, res := EnsureImport(tree, ImportSpec{Module: "m", Name: "a", Local: "a"})
	out := applyResult(t, src, res)
	assert.Equal(t, "\"use client\";\nimport { a } from \"m\";\n\nconst x = 1;\n", out)
}

func TestEnsureImportAliasWhenLocalDiffers(t *testing.T) {
	tree := parseFixture(t, "const x = 1;\n", ast.DialectJavaScript)

	_, res := EnsureImport(tree, ImportSpec{Module: "m", Name: "orig", Local: "renamed"})
	require.True(t, res.Applied)
	assert.Contains(t, res.Edits[0].Text, "import { orig as renamed } from \"m\";")
}
