package cmd

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MeKo-Tech/lineboil/internal/framestore"
)

var packCmd = &cobra.Command{
	Use:   "pack",
	Short: "Pack rendered frames into an archive",
	Long:  `Pack an existing folder of rendered PNG frames into a .boil frame archive.`,
	RunE:  runPack,
}

func init() {
	rootCmd.AddCommand(packCmd)

	packCmd.Flags().String("input-dir", "./frames", "Input directory containing frame PNGs")
	packCmd.Flags().StringP("output", "o", "", "Output archive file path (required)")
	packCmd.Flags().String("name", "lineboil", "Animation name")
	packCmd.Flags().String("description", "line boil animation", "Animation description")
	packCmd.Flags().Float64("fps", 12, "Playback frame rate stored in the archive metadata")

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"pack.input_dir", "input-dir"},
		{"pack.output", "output"},
		{"pack.name", "name"},
		{"pack.description", "description"},
		{"pack.fps", "fps"},
	}

	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, packCmd.Flags().Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

func runPack(cmd *cobra.Command, args []string) error {
	inputDir := viper.GetString("pack.input_dir")
	outputFile := viper.GetString("pack.output")
	name := viper.GetString("pack.name")
	description := viper.GetString("pack.description")
	fps := viper.GetFloat64("pack.fps")

	if logger == nil {
		initLogging()
	}

	if outputFile == "" {
		return fmt.Errorf("--output is required")
	}

	if _, err := os.Stat(inputDir); os.IsNotExist(err) {
		return fmt.Errorf("input directory does not exist: %s", inputDir)
	}

	logger.Info("Packing frames into archive",
		"input_dir", inputDir,
		"output", outputFile,
		"name", name,
	)

	frames, err := scanFramesDirectory(inputDir)
	if err != nil {
		return fmt.Errorf("failed to scan frames directory: %w", err)
	}

	if len(frames) == 0 {
		return fmt.Errorf("no frames found in %s", inputDir)
	}

	logger.Info("Found frames", "count", len(frames))

	// Frame size comes from the first frame
	width, height, err := pngSize(frames[0].path)
	if err != nil {
		return fmt.Errorf("failed to read first frame: %w", err)
	}

	metadata := framestore.Metadata{
		Name:        name,
		Format:      "png",
		Version:     "1.0",
		FPS:         fps,
		Width:       width,
		Height:      height,
		FrameCount:  len(frames),
		Description: description,
	}

	writer, err := framestore.New(outputFile, metadata)
	if err != nil {
		return fmt.Errorf("failed to create frame archive: %w", err)
	}
	defer writer.Close()

	logger.Info("Packing frames...")
	for i, frame := range frames {
		pngData, err := os.ReadFile(frame.path)
		if err != nil {
			logger.Error("Failed to read frame", "path", frame.path, "error", err)
			continue
		}

		if err := writer.WriteFrame(frame.index, pngData); err != nil {
			logger.Error("Failed to write frame", "index", frame.index, "error", err)
			continue
		}

		if (i+1)%100 == 0 {
			logger.Info("Progress", "packed", i+1, "total", len(frames))
		}
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush frames: %w", err)
	}

	logger.Info("Packing complete", "output", outputFile, "frames", len(frames))
	return nil
}

type frameInfo struct {
	index int
	path  string
}

// scanFramesDirectory scans a directory for frame files, sorted by index.
func scanFramesDirectory(dir string) ([]frameInfo, error) {
	// Pattern: frame_0000.png
	pattern := regexp.MustCompile(`^frame_(\d+)\.png$`)

	var frames []frameInfo

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		filename := filepath.Base(path)
		matches := pattern.FindStringSubmatch(filename)
		if matches == nil {
			return nil
		}

		index, _ := strconv.Atoi(matches[1])

		frames = append(frames, frameInfo{
			index: index,
			path:  path,
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(frames, func(i, j int) bool {
		return frames[i].index < frames[j].index
	})

	return frames, nil
}

// pngSize reads the dimensions of a PNG file without decoding the pixels.
func pngSize(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}
