// Package main provides the arrayview CLI: it exposes a native vector to a
// script runtime and prints what the script left in native memory.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/born-ml/arrayview/internal/config"
)

const version = "v0.1.0-dev"

var (
	logger  *zap.Logger
	verbose bool
	length  int
	dtype   string
)

var rootCmd = &cobra.Command{
	Use:   "arrayview",
	Short: "Share native numeric buffers with script runtimes without copying",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if verbose {
			cfg.Log.Level = zapcore.DebugLevel.String()
		}
		var err error
		logger, err = cfg.Log.Logger()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "arrayview %s\n", version)
	},
}

var luaCmd = &cobra.Command{
	Use:   "lua <script>",
	Short: "Run a Lua script with the native vector bound to global v",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		out, err := runLua(cmd.Context(), config.Load().Lua, args[0], string(source), dtype, length)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

var goCmd = &cobra.Command{
	Use:   "go <script>",
	Short: "Run an interpreted Go script's Run(*arrayview.View) against the native vector",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		out, err := runGo(cmd.Context(), string(source), dtype, length)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	for _, cmd := range []*cobra.Command{luaCmd, goCmd} {
		cmd.Flags().IntVar(&length, "len", 4, "Length of the native vector")
		cmd.Flags().StringVar(&dtype, "dtype", "float32", "Element type: float32, float64 or int32")
	}
	rootCmd.AddCommand(versionCmd, luaCmd, goCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
