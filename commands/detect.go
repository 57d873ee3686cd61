package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/penwyp/timeline-viz/internal/data/detect"
	"github.com/penwyp/timeline-viz/internal/data/source"
)

var detectCmd = &cobra.Command{
	Use:   "detect <input.csv>",
	Short: "Print the timestamp columns detected in a CSV header",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		columns, err := detectColumnsForFile(args[0])
		if err != nil {
			return err
		}
		if len(columns) == 0 {
			fmt.Println("No timestamp columns detected")
			return nil
		}
		for _, col := range columns {
			fmt.Println(col)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(detectCmd)
}

func detectColumnsForFile(path string) ([]string, error) {
	table, err := source.ReadCSV(path)
	if err != nil {
		return nil, err
	}
	return detect.Columns(table.Columns), nil
}
