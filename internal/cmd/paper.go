package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MeKo-Tech/lineboil/internal/render"
	"github.com/MeKo-Tech/lineboil/internal/scene"
)

var paperCmd = &cobra.Command{
	Use:   "paper",
	Short: "Generate a paper background texture",
	Long:  "Generate the noise-grained paper texture the renderer composites frames onto, as a standalone PNG.",
	RunE:  runPaper,
}

func init() {
	rootCmd.AddCommand(paperCmd)

	paperCmd.Flags().StringP("output", "o", "paper.png", "Output PNG path")
	paperCmd.Flags().String("size", "640x480", "Texture size in pixels (WxH)")
	paperCmd.Flags().Int64("seed", 1337, "Deterministic seed for the grain")
	paperCmd.Flags().String("color", "#f4f0e8", "Base paper color (#rrggbb)")

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"paper.output", "output"},
		{"paper.size", "size"},
		{"paper.seed", "seed"},
		{"paper.color", "color"},
	}

	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, paperCmd.Flags().Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

func runPaper(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	output := viper.GetString("paper.output")
	size := viper.GetString("paper.size")
	seed := viper.GetInt64("paper.seed")
	colorStr := viper.GetString("paper.color")

	width, height, err := parseSize(size)
	if err != nil {
		return fmt.Errorf("invalid size: %w", err)
	}

	base, err := scene.ParseColor(colorStr)
	if err != nil {
		return err
	}

	img := render.GeneratePaper(width, height, seed, base)
	if err := render.WritePNG(output, img, "default"); err != nil {
		return err
	}

	logger.Info("Paper texture generated",
		"output", output,
		"size", fmt.Sprintf("%dx%d", width, height),
		"seed", seed,
	)
	return nil
}
