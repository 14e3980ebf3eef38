// Version command for the prompthub CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/prompthub/pkg/prompthub"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the prompthub version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("prompthub", prompthub.Version)
	},
}
