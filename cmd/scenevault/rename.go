package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"
)

var renameCmd = &cobra.Command{
	Use:   "rename <old> <new>",
	Short: "Rename a scene collection",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		vault, _, err := openVault(cmd)
		if err != nil {
			fmt.Printf("Error opening vault: %v\n", err)
			os.Exit(1)
		}

		oldName, newName := args[0], args[1]
		ctx := cmd.Context()

		if !slices.Contains(vault.List(), oldName) {
			fmt.Printf("No collection named %q\n", oldName)
			os.Exit(1)
		}

		// Rename always targets the active collection.
		if err := vault.Load(ctx, oldName); err != nil {
			fmt.Printf("Error loading %q: %v\n", oldName, err)
			os.Exit(1)
		}
		if err := vault.Manager().Rename(ctx, newName); err != nil {
			fmt.Printf("Error renaming %q: %v\n", oldName, err)
			os.Exit(1)
		}
		fmt.Printf("Renamed %q to %q\n", oldName, newName)
	},
}

func init() {
	rootCmd.AddCommand(renameCmd)
}
