package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new empty scene collection",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		vault, _, err := openVault(cmd)
		if err != nil {
			fmt.Printf("Error opening vault: %v\n", err)
			os.Exit(1)
		}

		name := args[0]
		if !vault.Manager().Create(cmd.Context(), name) {
			fmt.Printf("Cannot create %q: names must be non-empty and free of '/', '\\' and '.'\n", name)
			os.Exit(1)
		}
		fmt.Printf("Created collection %q\n", name)
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
}
