package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var saveCmd = &cobra.Command{
	Use:   "save [name]",
	Short: "Re-save a scene collection",
	Long:  `Loads the named collection (or the active one) and writes it back immediately, migrating older documents to the current schema versions on the way.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		vault, _, err := openVault(cmd)
		if err != nil {
			fmt.Printf("Error opening vault: %v\n", err)
			os.Exit(1)
		}

		name := ""
		if len(args) > 0 {
			name = args[0]
		}
		ctx := cmd.Context()

		if err := vault.Load(ctx, name); err != nil {
			fmt.Printf("Error loading collection: %v\n", err)
			os.Exit(1)
		}
		if err := vault.Flush(ctx); err != nil {
			fmt.Printf("Error saving collection: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Saved collection %q\n", vault.Active())
	},
}

func init() {
	rootCmd.AddCommand(saveCmd)
}
