package cmd

import (
	"os"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/jsphweid/synchro/chart"
	"github.com/jsphweid/synchro/constants"
	"github.com/jsphweid/synchro/editor"
	"github.com/jsphweid/synchro/logging"
	"github.com/jsphweid/synchro/tui"
	"github.com/spf13/cobra"
)

var (
	editLength   float64
	editSongName string
	editArtist   string
	editOut      string
)

func init() {
	editCmd.Flags().Float64Var(&editLength, "length", constants.DefaultSongLengthSeconds, "song length in seconds (a loaded chart keeps its own)")
	editCmd.Flags().StringVar(&editSongName, "song", "", "song name written into the chart")
	editCmd.Flags().StringVar(&editArtist, "artist", "", "artist written into the chart")
	editCmd.Flags().StringVarP(&editOut, "out", "o", "chart.json", "where the write key saves the chart")
	rootCmd.AddCommand(editCmd)
}

var editCmd = &cobra.Command{
	Use:   "edit [chart.json]",
	Short: "Edits a chart in the terminal",
	Long:  `Opens the mouse-driven terminal editor, optionally starting from an existing chart.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var from string
		if len(args) == 1 {
			from = args[0]
		}
		return edit(from)
	},
}

func edit(from string) error {
	logger := newLogger()
	// stderr belongs to the terminal ui once it starts
	quiet := logging.Discard()
	e := editor.New(editLength, quiet)
	opts := tui.Options{SongName: editSongName, Artist: editArtist, OutPath: editOut}

	if from != "" {
		f, err := os.Open(from)
		if err != nil {
			return fault.Wrap(err, fmsg.With("could not open chart "+from))
		}
		c, err := chart.Decode(f)
		f.Close()
		if err != nil {
			return err
		}
		if skipped := e.Load(c); skipped > 0 {
			logger.Warn("tiles did not fit the grid", "skipped", skipped)
		}
		if opts.SongName == "" {
			opts.SongName = c.SongName
		}
		if opts.Artist == "" {
			opts.Artist = c.Artist
		}
	}
	return tui.Run(e, opts, quiet)
}
