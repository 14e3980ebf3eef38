// Init command creates the configuration and data directories and the
// database file.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the prompt library storage",
	Long:  `Init creates the configuration directory, a default config.yaml, and the database file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// The storage handle is already opened (and the schema migrated)
		// by the persistent pre-run hook.
		fmt.Printf("Initialized prompt library at %s\n", store.Path())
		return nil
	},
}
