package cmd

import (
	"fmt"
	"os"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/jsphweid/synchro/chart"
	"github.com/jsphweid/synchro/editor"
	"github.com/jsphweid/synchro/logging"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <chart.json>",
	Short: "Inspects a chart",
	Long:  `Prints tile counts for a chart and checks that it survives a round trip through the editor.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspect(args[0])
	},
}

func inspect(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fault.Wrap(err, fmsg.With("could not open chart "+path))
	}
	defer f.Close()
	c, err := chart.Decode(f)
	if err != nil {
		return err
	}

	s := chart.Summarize(c)
	fmt.Printf("song: %v by %v (%vs)\n", c.SongName, c.Artist, c.Length)
	fmt.Printf("tiles: %v (%v tap, %v hold)\n", len(c.Tiles), s.NumTaps, s.NumHolds)
	fmt.Printf("per slot: %v\n", s.PerSlot)
	fmt.Printf("span: %vms - %vms, held for %vms\n", s.FirstMs, s.LastMs, s.HoldMs)
	if s.Unordered {
		fmt.Println("warning: tiles are not ordered by press time")
	}

	e := editor.New(float64(c.Length), logging.Discard())
	skipped := e.Load(c)
	if e.LengthSeconds() > float64(c.Length) {
		fmt.Printf("warning: tiles run past the stated %vs, the editor opens it as %vs\n", c.Length, e.LengthSeconds())
	}
	if merged := len(c.Tiles) - skipped - e.NumNotes(); merged > 0 {
		fmt.Printf("warning: %v tiles overlap and would be merged by the editor\n", merged)
	}
	return nil
}
