package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"
)

var dupCmd = &cobra.Command{
	Use:   "dup <from> <to>",
	Short: "Duplicate a scene collection",
	Long:  `Loads the source collection and copies its document byte-for-byte to a new name.`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		vault, _, err := openVault(cmd)
		if err != nil {
			fmt.Printf("Error opening vault: %v\n", err)
			os.Exit(1)
		}

		from, to := args[0], args[1]
		ctx := cmd.Context()

		if !slices.Contains(vault.List(), from) {
			fmt.Printf("No collection named %q\n", from)
			os.Exit(1)
		}

		// Load the source first so the flush inside Duplicate snapshots the
		// right collection, not whatever happened to be active.
		if err := vault.Load(ctx, from); err != nil {
			fmt.Printf("Error loading %q: %v\n", from, err)
			os.Exit(1)
		}
		if err := vault.Manager().Duplicate(ctx, from, to); err != nil {
			fmt.Printf("Error duplicating %q: %v\n", from, err)
			os.Exit(1)
		}
		fmt.Printf("Duplicated %q to %q\n", from, to)
	},
}

func init() {
	rootCmd.AddCommand(dupCmd)
}
