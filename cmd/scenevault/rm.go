package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Remove a scene collection",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		vault, _, err := openVault(cmd)
		if err != nil {
			fmt.Printf("Error opening vault: %v\n", err)
			os.Exit(1)
		}

		name := args[0]
		if !slices.Contains(vault.List(), name) {
			fmt.Printf("No collection named %q\n", name)
			os.Exit(1)
		}
		if err := vault.Manager().Remove(cmd.Context(), name); err != nil {
			fmt.Printf("Error removing %q: %v\n", name, err)
			os.Exit(1)
		}
		fmt.Printf("Removed collection %q\n", name)
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
}
