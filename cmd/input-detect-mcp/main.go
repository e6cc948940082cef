package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ironsheep/input-detect-mcp/internal/config"
	"github.com/ironsheep/input-detect-mcp/internal/render"
	"github.com/ironsheep/input-detect-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "input-detect-mcp",
		Short: "MCP server that detects form input types in design documents",
		Long: `input-detect-mcp classifies selected frames, groups and instances of a
design document JSON export as HTML form input types.

It communicates via MCP protocol over stdin/stdout. Configure it in your
MCP client (e.g., Claude Desktop).

Environment variables:
  ` + config.LogLevelEnv + `=debug    Enable debug logging`,
		Version:      Version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			level, _ := cfg.SlogLevel()

			// Logs go to stderr; stdout is for MCP protocol
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			logger.Debug("starting", "version", Version, "built", BuildTime, "commit", GitCommit)

			server.Version = Version
			highlight := cfg.HighlightColor()
			srv := server.New(
				server.WithLogger(logger),
				server.WithPreview(render.Options{Scale: cfg.Preview.Scale, Highlight: &highlight}),
			)

			if cfg.Document.Path != "" {
				if err := srv.Preload(cfg.Document.Path, cfg.Document.Selection); err != nil {
					return fmt.Errorf("preload %s: %w", cfg.Document.Path, err)
				}
			}

			if err := srv.Serve(cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
				logger.Error("server error", "error", err)
				return err
			}
			return nil
		},
	}
	root.SetVersionTemplate(versionText())
	root.Flags().StringVarP(&configPath, "config", "c", "", "path to YAML config file")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), versionText())
		},
	})

	return root
}

func versionText() string {
	return fmt.Sprintf("input-detect-mcp %s\n  Build time: %s\n  Git commit: %s\n", Version, BuildTime, GitCommit)
}
