package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MeKo-Tech/lineboil/internal/framestore"
)

// Output renders frames and persists them, either as numbered PNG files in a
// directory or into a .boil archive. It satisfies the worker pool's renderer
// interface, so frames can be produced in parallel; the archive writer
// serializes its own inserts.
type Output struct {
	renderer    *Renderer
	dir         string
	archive     *framestore.Writer
	compression string
}

// NewFolderOutput writes each frame as dir/frame_NNNN.png.
func NewFolderOutput(r *Renderer, dir, compression string) *Output {
	return &Output{
		renderer:    r,
		dir:         dir,
		compression: compression,
	}
}

// NewArchiveOutput writes frames into an open .boil archive.
func NewArchiveOutput(r *Renderer, archive *framestore.Writer, compression string) *Output {
	return &Output{
		renderer:    r,
		archive:     archive,
		compression: compression,
	}
}

// RenderFrame renders the frame at time t and stores it. The returned ref is
// the file path in folder mode, or the frame index in archive mode.
func (o *Output) RenderFrame(ctx context.Context, frame int, t float64) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	img := o.renderer.Frame(t)

	data, err := EncodePNG(img, o.compression)
	if err != nil {
		return "", fmt.Errorf("frame %d: %w", frame, err)
	}

	if o.archive != nil {
		if err := o.archive.WriteFrame(frame, data); err != nil {
			return "", fmt.Errorf("frame %d: %w", frame, err)
		}
		return fmt.Sprintf("frame %d", frame), nil
	}

	path := filepath.Join(o.dir, fmt.Sprintf("frame_%04d.png", frame))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("frame %d: %w", frame, err)
	}
	return path, nil
}
