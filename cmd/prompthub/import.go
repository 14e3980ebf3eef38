// Import replaces the library from a backup file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the library from a backup file",
	Long: `Import validates a backup document and replaces the entire library with
its contents in one transaction. A rejected document leaves the library
untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read backup: %w", err)
		}
		if err := store.ImportJSON(cmd.Context(), raw); err != nil {
			return fmt.Errorf("import: %w", err)
		}
		fmt.Printf("Imported library from %s\n", args[0])
		return nil
	},
}
