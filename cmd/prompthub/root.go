// Root command wiring for the prompthub CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/prompthub/internal/paths"
	"github.com/mesh-intelligence/prompthub/internal/sqlite"
	"github.com/mesh-intelligence/prompthub/pkg/prompthub"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// store is the process-wide storage handle, opened once by the pre-run hook
// and closed by the post-run hook. Commands never open their own handle.
var store *sqlite.Store

var rootCmd = &cobra.Command{
	Use:     "prompthub",
	Short:   "PromptHub is a personal prompt library",
	Version: prompthub.Version,
	Long: `PromptHub manages reusable prompt templates tagged with a category and a
target model. Prompts may contain {name} placeholders that are filled in
when the prompt is copied. All data lives in a local embedded database
with JSON export/import backup.`,
	PersistentPreRunE:  openStore,
	PersistentPostRunE: closeStore,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: platform data dir)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(promptCmd)
	rootCmd.AddCommand(categoryCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}

// openStore loads configuration and opens the storage handle. Skipped for
// commands that never touch storage.
func openStore(cmd *cobra.Command, args []string) error {
	switch cmd.Name() {
	case "help", "version", "completion":
		return nil
	}

	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	initLogging(cfg)

	dataDir, err := paths.ResolveDataDir(flagDataDir, cfg.GetString(cfgKeyDataDir))
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}

	store, err = sqlite.Open(dataDir)
	if err != nil {
		return err
	}
	return nil
}

func closeStore(cmd *cobra.Command, args []string) error {
	if store != nil {
		return store.Close()
	}
	return nil
}
