// Export writes the whole library to a backup file.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/prompthub/internal/sqlite"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the library to a backup file",
	Long: `Export writes every prompt, category, and LLM to a single JSON document.
The file is written atomically so an interrupted export never leaves a
truncated backup behind.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		doc, err := store.Export(cmd.Context())
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}
		if err := sqlite.WriteBackupFile(exportOut, doc); err != nil {
			return fmt.Errorf("write backup: %w", err)
		}
		fmt.Printf("Exported %d prompts, %d categories, %d LLMs to %s\n",
			len(doc.Prompts), len(doc.Categories), len(doc.LLMs), exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "prompthub_backup.json", "backup file path")
}
