package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/MeKo-Tech/lineboil/assets"
	"github.com/MeKo-Tech/lineboil/internal/scene"
)

var scenesCmd = &cobra.Command{
	Use:   "scenes",
	Short: "List the embedded example scenes",
	Long:  "List the example scenes shipped with the binary, usable as --scene example:<name>.",
	RunE:  runScenes,
}

func init() {
	rootCmd.AddCommand(scenesCmd)
}

func runScenes(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tENTITIES\tUSAGE")

	fmt.Fprintf(w, "%s\t%d\t%s\n", "default", len(scene.Default().Entities), "(used when --scene is empty)")

	for _, name := range assets.SceneNames() {
		data, err := assets.Scene(name)
		if err != nil {
			return err
		}
		sc, err := scene.Parse(data)
		if err != nil {
			return fmt.Errorf("embedded scene %s: %w", name, err)
		}
		fmt.Fprintf(w, "%s\t%d\t--scene example:%s\n", name, len(sc.Entities), name)
	}

	return w.Flush()
}
