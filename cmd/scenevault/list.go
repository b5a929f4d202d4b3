package main

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the known scene collections",
	Run: func(cmd *cobra.Command, args []string) {
		vault, _, err := openVault(cmd)
		if err != nil {
			fmt.Printf("Error opening vault: %v\n", err)
			os.Exit(1)
		}

		names := vault.List()
		if len(names) == 0 {
			fmt.Println("No collections yet. Create one with 'scenevault create <name>'.")
			return
		}

		p := termenv.ColorProfile()
		active := vault.Active()
		for _, name := range names {
			if name == active {
				fmt.Println(termenv.String("* " + name).Foreground(p.Color("#34d399")).Bold())
				continue
			}
			fmt.Println("  " + name)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
