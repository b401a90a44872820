package main

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"

	"relaywire/internal/fsio"
	"relaywire/internal/project"
)

// resolveContext validates the target project and builds the immutable
// context the tasks consume. The core only transforms; deciding whether the
// project is in a runnable shape happens here.
func resolveContext(files fsio.Access, root string, toolchain project.Toolchain) (*project.Context, error) {
	scriptExts := []string{".js", ".mjs", ".cjs"}
	entryExts := []string{".jsx", ".js"}
	if typescript {
		scriptExts = []string{".ts", ".mts", ".js", ".mjs"}
		entryExts = []string{".tsx", ".ts"}
	}

	var configBase string
	switch toolchain {
	case project.ToolchainVite:
		configBase = "vite.config"
	case project.ToolchainRollup:
		configBase = "rollup.config"
	case project.ToolchainNext:
		configBase = "next.config"
		// Next configs stay plain JS even in TypeScript projects.
		scriptExts = []string{".js", ".mjs"}
	}

	configPath, err := files.FindFile(root, configBase, scriptExts)
	if err != nil {
		if errors.Is(err, fsio.ErrNoMatch) {
			return nil, fmt.Errorf("no %s configuration found in %s: %w", toolchain, root, err)
		}
		return nil, err
	}

	entryPath, err := findEntry(files, root, toolchain, entryExts)
	if err != nil {
		return nil, err
	}

	artifacts := artifactRel
	if artifacts == "" {
		artifacts = path.Join(srcDir, "__generated__")
		if toolchain == project.ToolchainNext {
			artifacts = "__generated__"
		}
	}

	ext := ".js"
	if typescript {
		ext = ".ts"
	}

	return &project.Context{
		Root:          root,
		Toolchain:     toolchain,
		TypeScript:    typescript,
		Subscriptions: subscriptions,
		MainEntry:     locFromAbs(root, entryPath),
		Config:        locFromAbs(root, configPath),
		Environment:   project.Loc(root, path.Join(srcDir, "RelayEnvironment"+ext)),
		Schema:        project.Loc(root, schemaRel),
		ArtifactDir:   project.Loc(root, artifacts),
	}, nil
}

// findEntry locates the file whose JSX gets wrapped: pages/_app for Next,
// src/main or src/index for bundler projects.
func findEntry(files fsio.Access, root string, toolchain project.Toolchain, exts []string) (string, error) {
	if toolchain == project.ToolchainNext {
		p, err := files.FindFile(filepath.Join(root, "pages"), "_app", exts)
		if err != nil && errors.Is(err, fsio.ErrNoMatch) {
			return "", fmt.Errorf("no pages/_app component found in %s: %w", root, err)
		}
		return p, err
	}

	dir := filepath.Join(root, filepath.FromSlash(srcDir))
	p, err := files.FindFile(dir, "main", exts)
	if err != nil && errors.Is(err, fsio.ErrNoMatch) {
		p, err = files.FindFile(dir, "index", exts)
	}
	if err != nil && errors.Is(err, fsio.ErrNoMatch) {
		return "", fmt.Errorf("no application entry (main or index) found in %s: %w", dir, err)
	}
	return p, err
}

func locFromAbs(root, abs string) project.Location {
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		rel = abs
	}
	return project.Location{Abs: abs, Rel: filepath.ToSlash(rel)}
}
