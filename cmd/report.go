package cmd

import (
	"fmt"

	"github.com/jsphweid/synchro/chart"
	"github.com/jsphweid/synchro/db"
	"github.com/jsphweid/synchro/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Reports on the chart library",
	Long:  `Reports on the chart library`,
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := db.Open()
		if err != nil {
			return err
		}
		return report(lib)
	},
}

type libraryReport struct {
	numCharts   int
	numTaps     int
	numHolds    int
	totalLength int
	tilesPerSec []float32
	unordered   []string
}

func analyzeLibrary(lib db.Library) (libraryReport, error) {
	var r libraryReport
	list, err := lib.List()
	if err != nil {
		return r, err
	}
	for _, summary := range list {
		c, err := lib.Get(summary.Name)
		if err != nil {
			return r, err
		}
		s := chart.Summarize(c)
		r.numCharts += 1
		r.numTaps += s.NumTaps
		r.numHolds += s.NumHolds
		r.totalLength += c.Length
		r.tilesPerSec = append(r.tilesPerSec, float32(len(c.Tiles))/float32(util.Max(c.Length, 1)))
		if s.Unordered {
			r.unordered = append(r.unordered, summary.Name)
		}
	}
	return r, nil
}

func report(lib db.Library) error {
	r, err := analyzeLibrary(lib)
	if err != nil {
		return err
	}
	fmt.Printf("charts: %v\n", r.numCharts)
	fmt.Printf("taps: %v, holds: %v\n", r.numTaps, r.numHolds)
	fmt.Printf("total length: %vs\n", r.totalLength)
	fmt.Printf("tiles per second: %v\n", r.tilesPerSec)
	if len(r.unordered) > 0 {
		fmt.Printf("charts with unordered tiles: %v\n", r.unordered)
	}
	return nil
}
