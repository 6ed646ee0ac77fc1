package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MeKo-Tech/lineboil/assets"
	"github.com/MeKo-Tech/lineboil/internal/framestore"
	"github.com/MeKo-Tech/lineboil/internal/render"
	"github.com/MeKo-Tech/lineboil/internal/scene"
	"github.com/MeKo-Tech/lineboil/internal/worker"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render an animation",
	Long:  `Render a scene as a sequence of line boil animation frames.`,
	RunE:  runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	// Animation flags
	renderCmd.Flags().Float64("fps", 12, "Output frame rate (frames per second)")
	renderCmd.Flags().Float64P("duration", "d", 2, "Animation length in seconds")
	renderCmd.Flags().Int("frames", 0, "Frame count; overrides --duration when positive")

	// Image flags
	renderCmd.Flags().String("size", "640x480", "Frame size in pixels (WxH)")
	renderCmd.Flags().String("png-compression", "default", "PNG compression (default, speed, best, none)")
	renderCmd.Flags().Float64("post-blur", 0, "Gaussian blur sigma applied to the ink layer (0 disables)")

	// Boil flags
	renderCmd.Flags().String("preset", "", "Override every entity's boil preset (subtle, aggressive)")
	renderCmd.Flags().Float64("seed-shift", 0, "Added to every entity seed to re-roll the wobble")

	// Execution flags
	renderCmd.Flags().IntP("workers", "w", 0, "Number of parallel workers (default: number of CPUs)")
	renderCmd.Flags().Bool("progress", true, "Show progress bar")
	renderCmd.Flags().Bool("allow-failures", false, "Continue even if some frames fail")

	// Output format flags
	renderCmd.Flags().String("format", "folder", "Output format: folder or archive")
	renderCmd.Flags().String("output-file", "", "Output file path for archive format (e.g., anim.boil)")

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"render.fps", "fps"},
		{"render.duration", "duration"},
		{"render.frames", "frames"},
		{"render.size", "size"},
		{"render.png_compression", "png-compression"},
		{"render.post_blur", "post-blur"},
		{"render.preset", "preset"},
		{"render.seed_shift", "seed-shift"},
		{"render.workers", "workers"},
		{"render.progress", "progress"},
		{"render.allow_failures", "allow-failures"},
		{"render.format", "format"},
		{"render.output_file", "output-file"},
	}

	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, renderCmd.Flags().Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

func runRender(cmd *cobra.Command, args []string) error {
	fps := viper.GetFloat64("render.fps")
	duration := viper.GetFloat64("render.duration")
	frames := viper.GetInt("render.frames")
	size := viper.GetString("render.size")
	pngCompression := viper.GetString("render.png_compression")
	postBlur := viper.GetFloat64("render.post_blur")
	preset := viper.GetString("render.preset")
	seedShift := viper.GetFloat64("render.seed_shift")
	workers := viper.GetInt("render.workers")
	showProgress := viper.GetBool("render.progress")
	allowFailures := viper.GetBool("render.allow_failures")
	format := viper.GetString("render.format")
	outputFile := viper.GetString("render.output_file")
	outputDir := viper.GetString("output-dir")

	if logger == nil {
		initLogging()
	}

	if format != "folder" && format != "archive" {
		return fmt.Errorf("invalid format %q: must be 'folder' or 'archive'", format)
	}
	if format == "archive" && outputFile == "" {
		return fmt.Errorf("--output-file is required when using --format=archive")
	}

	if fps <= 0 {
		return fmt.Errorf("--fps must be positive")
	}
	if frames <= 0 {
		if duration <= 0 {
			return fmt.Errorf("--duration must be positive (or set --frames)")
		}
		frames = int(duration * fps)
	}
	if frames <= 0 {
		return fmt.Errorf("nothing to render: %g seconds at %g fps", duration, fps)
	}

	width, height, err := parseSize(size)
	if err != nil {
		return fmt.Errorf("invalid size: %w", err)
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	sc, err := loadScene()
	if err != nil {
		return err
	}

	renderer, err := render.New(sc, render.Options{
		Width:          width,
		Height:         height,
		PostBlurSigma:  float32(postBlur),
		PresetOverride: preset,
		SeedShift:      seedShift,
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to init renderer: %w", err)
	}

	logger.Info("Starting animation render",
		"scene", sc.Name,
		"frames", frames,
		"fps", fps,
		"size", fmt.Sprintf("%dx%d", width, height),
		"workers", workers,
		"format", format,
	)

	// Setup output
	var output *render.Output
	var archive *framestore.Writer
	if format == "archive" {
		archive, err = framestore.New(outputFile, framestore.Metadata{
			Name:        sc.Name,
			Format:      "png",
			Version:     "1.0",
			FPS:         fps,
			Width:       width,
			Height:      height,
			FrameCount:  frames,
			Description: "line boil animation",
		})
		if err != nil {
			return fmt.Errorf("failed to create frame archive: %w", err)
		}
		defer archive.Close()

		output = render.NewArchiveOutput(renderer, archive, pngCompression)
	} else {
		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		output = render.NewFolderOutput(renderer, outputDir, pngCompression)
	}

	// Setup context with signal handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("Received interrupt signal, cancelling...")
		cancel()
	}()

	// Build task list
	tasks := make([]worker.Task, 0, frames)
	for i := 0; i < frames; i++ {
		tasks = append(tasks, worker.Task{
			Frame: i,
			Time:  float64(i) / fps,
		})
	}

	progress := worker.NewProgress(len(tasks), showProgress)

	pool := worker.New(worker.Config{
		Workers:    workers,
		Renderer:   output,
		OnProgress: progress.Callback(),
	})

	results := pool.Run(ctx, tasks)
	progress.Done()

	var failedCount int
	for _, r := range results {
		if r.Err != nil {
			failedCount++
			logger.Error("Frame render failed", "frame", r.Task.Frame, "error", r.Err)
		}
	}

	logger.Info(progress.Summary())

	if failedCount > 0 {
		if allowFailures {
			logger.Warn("Some frames failed to render, but continuing due to --allow-failures flag", "failed_count", failedCount)
		} else {
			return fmt.Errorf("%d frames failed to render", failedCount)
		}
	}

	if format == "archive" {
		if err := archive.Flush(); err != nil {
			return fmt.Errorf("failed to flush frame archive: %w", err)
		}
		logger.Info("Archive render complete", "output", outputFile, "frames", frames)
	} else {
		logger.Info("Folder render complete", "output_dir", outputDir, "frames", frames)
	}

	return nil
}

// loadScene loads the scene named by --scene, or the built-in demo scene.
// Paths of the form example:<name> refer to the embedded example scenes.
func loadScene() (*scene.Scene, error) {
	path := viper.GetString("scene")
	if path == "" {
		return scene.Default(), nil
	}

	if name, ok := strings.CutPrefix(path, "example:"); ok {
		data, err := assets.Scene(name)
		if err != nil {
			return nil, fmt.Errorf("unknown example scene %q (have: %s)", name, strings.Join(assets.SceneNames(), ", "))
		}
		sc, err := scene.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse example scene %s: %w", name, err)
		}
		return sc, nil
	}

	sc, err := scene.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load scene: %w", err)
	}
	return sc, nil
}

// parseSize parses a "WxH" size string into width and height.
func parseSize(s string) (int, int, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "x")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected WxH, got %q", s)
	}

	width, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid width: %w", err)
	}
	height, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid height: %w", err)
	}

	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("size must be positive, got %dx%d", width, height)
	}

	return width, height, nil
}
