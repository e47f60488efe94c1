package cmd

import (
	"os"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/jsphweid/synchro/chart"
	"github.com/jsphweid/synchro/db"
	"github.com/jsphweid/synchro/midi"
	"github.com/spf13/cobra"
)

var (
	importOpts midi.Options
	importOut  string
	importSave bool
)

func init() {
	importCmd.Flags().Float64Var(&importOpts.LengthSeconds, "length", 0, "song length in seconds (0 fits the last note)")
	importCmd.Flags().IntVar(&importOpts.OffsetMs, "offset", 0, "milliseconds to skip from the start of the file")
	importCmd.Flags().StringVar(&importOpts.SongName, "song", "", "song name")
	importCmd.Flags().StringVar(&importOpts.Artist, "artist", "", "artist")
	importCmd.Flags().StringVarP(&importOut, "out", "o", "", "output file (default stdout)")
	importCmd.Flags().BoolVar(&importSave, "save", false, "also store the chart in the library")
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import <file.mid>",
	Short: "Converts a MIDI file into a chart",
	Long:  `Converts a MIDI file into a chart. Lanes come from pitch mod 4 and notes of 400ms or more become holds.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return importMidi(args[0])
	},
}

func importMidi(path string) error {
	logger := newLogger()
	parsed, err := midi.ReadMidiFile(path)
	if err != nil {
		return err
	}
	c, stats := midi.Convert(parsed, importOpts)
	logger.Info("converted", "file", path, "spans", stats.Spans, "taps", stats.Taps, "holds", stats.Holds, "skipped", stats.Skipped)

	if importSave {
		lib, err := db.Open()
		if err != nil {
			return err
		}
		name := db.Slug(c.SongName)
		if err := lib.Save(name, c); err != nil {
			return err
		}
		logger.Info("saved to library", "name", name)
	}

	if importOut == "" {
		return chart.Write(os.Stdout, c)
	}
	f, err := os.Create(importOut)
	if err != nil {
		return fault.Wrap(err, fmsg.With("could not create "+importOut))
	}
	defer f.Close()
	return chart.Write(f, c)
}
