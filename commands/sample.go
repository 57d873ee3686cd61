package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/penwyp/timeline-viz/internal/testing/fixtures"
)

var (
	sampleEntities int
	sampleType     string
	sampleOut      string
	sampleSeed     int64

	sampleCmd = &cobra.Command{
		Use:   "sample",
		Short: "Generate a sample CSV for trying out the tool",
		RunE: func(cmd *cobra.Command, args []string) error {
			seed := sampleSeed
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			opts := fixtures.GeneratorOptions{
				Entities: sampleEntities,
				Type:     sampleType,
				Seed:     seed,
			}
			if err := fixtures.WriteCSV(sampleOut, opts); err != nil {
				return err
			}
			fmt.Printf("Wrote %d %s entities to %s\n", sampleEntities, sampleType, sampleOut)
			return nil
		},
	}
)

func init() {
	sampleCmd.Flags().IntVar(&sampleEntities, "entities", 5,
		"Number of entities to generate")
	sampleCmd.Flags().StringVar(&sampleType, "type", "generic",
		"Entity type (generic, patient, order, task)")
	sampleCmd.Flags().StringVar(&sampleOut, "out", "sample.csv",
		"Output CSV path")
	sampleCmd.Flags().Int64Var(&sampleSeed, "seed", 0,
		"Random seed (0 = time-based)")
	rootCmd.AddCommand(sampleCmd)
}
