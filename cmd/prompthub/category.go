// Category commands manage the category list prompts refer to.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/prompthub/pkg/types"
)

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage categories",
}

func init() {
	categoryCmd.AddCommand(categoryAddCmd)
	categoryCmd.AddCommand(categoryListCmd)
	categoryCmd.AddCommand(categoryRenameCmd)
	categoryCmd.AddCommand(categoryDeleteCmd)
}

var categoryAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := store.AddCategory(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("add category: %w", err)
		}
		if flagJSON {
			return printJSON(types.Category{ID: id, Name: args[0]})
		}
		fmt.Printf("Added category: %s (%s)\n", args[0], id)
		return nil
	},
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		categories, err := store.Categories(cmd.Context())
		if err != nil {
			return fmt.Errorf("list categories: %w", err)
		}
		if flagJSON {
			return printJSON(categories)
		}
		if len(categories) == 0 {
			fmt.Println("No categories found.")
			return nil
		}
		for _, c := range categories {
			fmt.Printf("%s  %s\n", c.ID, c.Name)
		}
		return nil
	},
}

var categoryRenameCmd = &cobra.Command{
	Use:   "rename <id> <name>",
	Short: "Rename a category",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := store.UpdateCategory(cmd.Context(), args[0], args[1]); err != nil {
			return fmt.Errorf("rename category: %w", err)
		}
		fmt.Printf("Renamed category %s to %q\n", args[0], args[1])
		return nil
	},
}

var categoryDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a category",
	Long: `Delete removes a category. Prompts that referred to it keep their
category id and are shown with an "Unknown" label until reassigned.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := store.DeleteCategory(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("delete category: %w", err)
		}
		fmt.Printf("Deleted category: %s\n", args[0])
		return nil
	},
}
