// relaywire wires the Relay GraphQL framework into an existing JavaScript or
// TypeScript project by structurally editing its configuration and entry
// files. Every edit is idempotent: running relaywire twice leaves the project
// byte-identical to running it once.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"relaywire/internal/fsio"
	"relaywire/internal/project"
	"relaywire/internal/setup"
	"relaywire/internal/task"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose       bool
	rootDir       string
	toolchainName string
	typescript    bool
	subscriptions bool
	srcDir        string
	schemaRel     string
	artifactRel   string
	dryRun        bool

	// Logger
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "relaywire",
	Short: "relaywire - add Relay to an existing JS/TS project",
	Long: `relaywire integrates the Relay GraphQL framework into an existing
JavaScript or TypeScript project.

It edits the toolchain configuration (Vite, Rollup or Next.js), wraps the
root JSX in RelayEnvironmentProvider, and generates the Relay environment,
schema placeholder and compiler configuration. All edits are structural and
idempotent: files already in the desired shape are left byte-identical.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.Encoding = "console"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		return nil
	},
	RunE: runSetup,
}

func init() {
	flags := rootCmd.Flags()
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&rootDir, "root", ".", "project root directory")
	flags.StringVar(&toolchainName, "toolchain", "", "project toolchain: vite, rollup or next (required)")
	flags.BoolVar(&typescript, "typescript", false, "generate TypeScript sources")
	flags.BoolVar(&subscriptions, "subscriptions", false, "wire a realtime channel (GraphQL subscriptions over WebSocket)")
	flags.StringVar(&srcDir, "src", "src", "source directory, relative to the project root")
	flags.StringVar(&schemaRel, "schema", "schema.graphql", "GraphQL schema path, relative to the project root")
	flags.StringVar(&artifactRel, "artifacts", "", "artifact directory (default <src>/__generated__)")
	flags.BoolVar(&dryRun, "dry-run", false, "show the changes without writing any file")
	_ = rootCmd.MarkFlagRequired("toolchain")
}

func runSetup(cmd *cobra.Command, args []string) error {
	defer func() { _ = logger.Sync() }()

	toolchain, err := project.ParseToolchain(toolchainName)
	if err != nil {
		return err
	}
	root, err := filepath.Abs(rootDir)
	if err != nil {
		return fmt.Errorf("resolve project root: %w", err)
	}

	var files fsio.Access = fsio.NewOS()
	var recorder *fsio.Recorder
	if dryRun {
		recorder = fsio.NewRecorder(fsio.NewOverlay(afero.NewOsFs()))
		files = recorder
	}

	ctx, err := resolveContext(files, root, toolchain)
	if err != nil {
		return err
	}
	logger.Debug("project context resolved",
		zap.String("toolchain", string(ctx.Toolchain)),
		zap.String("config", ctx.Config.Rel),
		zap.String("entry", ctx.MainEntry.Rel),
		zap.Bool("typescript", ctx.TypeScript),
		zap.Bool("subscriptions", ctx.Subscriptions))

	runner := task.NewRunner(ctx, &zapObserver{logger: logger})
	result := runner.RunAll(setup.Tasks(ctx, files))
	logger.Debug("run finished", zap.String("run_id", result.ID), zap.Bool("succeeded", result.Succeeded()))

	printSummary(os.Stdout, &result)
	if recorder != nil {
		printDiffs(os.Stdout, recorder.Records)
	}

	if !result.Succeeded() {
		return fmt.Errorf("%d task(s) failed", len(result.Failed()))
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
