package main

import (
	"fmt"

	"github.com/castkit/scenevault"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of scenevault",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("scenevault version %s\n", scenevault.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
