package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var columnsCmd = &cobra.Command{
	Use:   "columns",
	Short: "Extract the vertical columns of the deck's grid",
	Long: `Partitions the active grid cells into vertical columns, one line per
column, each listing cell ids in increasing depth order.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runColumns(cmd); err != nil {
			fmt.Fprintf(os.Stderr, "columns failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(columnsCmd)
}

func runColumns(cmd *cobra.Command) error {
	model, err := loadModel(cmd)
	if err != nil {
		return err
	}
	cols, err := model.Columns()
	if err != nil {
		return err
	}
	for i, col := range cols {
		fmt.Printf("column %d:", i)
		for _, c := range col {
			fmt.Printf(" %d", c)
		}
		fmt.Println()
	}
	return nil
}
