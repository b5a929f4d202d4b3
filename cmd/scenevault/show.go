package main

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show the contents of a scene collection",
	Long:  `Loads the named collection (or the active one) and prints its scenes, sources and transition.`,
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
		if err := vault.Load(cmd.Context(), name); err != nil {
			fmt.Printf("Error loading collection: %v\n", err)
			os.Exit(1)
		}

		p := termenv.ColorProfile()
		heading := func(s string) {
			fmt.Println(termenv.String(s).Foreground(p.Color("#818cf8")).Bold())
		}

		heading("Collection: " + vault.Active())

		heading("Scenes")
		for _, sc := range vault.Scenes().Scenes() {
			marker := "  "
			if sc.Active {
				marker = "* "
			}
			fmt.Printf("%s%s (%d items)\n", marker, sc.Name, len(vault.Scenes().Items(sc.ID)))
		}

		heading("Sources")
		for _, src := range vault.Sources().Sources() {
			if src.Channel > 0 {
				fmt.Printf("  %s [%s, channel %d]\n", src.Name, src.Kind, src.Channel)
				continue
			}
			fmt.Printf("  %s [%s]\n", src.Name, src.Kind)
		}

		tr := vault.Transition().Transition()
		heading("Transition")
		fmt.Printf("  %s (%d ms)\n", tr.Kind, tr.DurationMs)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
