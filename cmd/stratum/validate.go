package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stratumsim/stratum/pkg/deck"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a deck for consistency",
	Long:  `Parses the deck and reports every structural problem it finds.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(cmd); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Deck is valid.")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("deck")
	d, err := deck.Load(path)
	if err != nil {
		return err
	}
	if _, _, _, err := d.Build(); err != nil {
		return err
	}
	return nil
}
