package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/MeKo-Tech/lineboil/internal/boil"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the available boil presets",
	RunE:  runPresets,
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}

func runPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tINTENSITY\tFRAME RATE\tNOISE FREQUENCY")

	for _, name := range boil.PresetNames() {
		p, _ := boil.Preset(name)
		fmt.Fprintf(w, "%s\t%g\t%g\t%g\n", name, p.Intensity, p.FrameRate, p.NoiseFrequency)
	}

	return w.Flush()
}
