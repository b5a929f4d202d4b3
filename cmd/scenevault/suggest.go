package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <base>",
	Short: "Suggest a free collection name",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		vault, _, err := openVault(cmd)
		if err != nil {
			fmt.Printf("Error opening vault: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(vault.Manager().SuggestName(args[0]))
	},
}

func init() {
	rootCmd.AddCommand(suggestCmd)
}
