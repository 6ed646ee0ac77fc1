// Package framestore reads and writes .boil frame archives: a single SQLite
// file holding a rendered animation as gzip-compressed PNG frames plus a
// metadata table describing how to play it back.
package framestore

import (
	"fmt"
	"strconv"
)

// Metadata describes a stored animation.
type Metadata struct {
	Name        string  // scene name
	Format      string  // frame encoding (png)
	Version     string  // archive format version
	FPS         float64 // playback rate
	Width       int     // frame width in pixels
	Height      int     // frame height in pixels
	FrameCount  int     // total frames
	Description string
}

// ToMap converts Metadata to a map for database insertion.
func (m Metadata) ToMap() map[string]string {
	result := make(map[string]string)

	if m.Name != "" {
		result["name"] = m.Name
	}
	if m.Format != "" {
		result["format"] = m.Format
	}
	if m.Version != "" {
		result["version"] = m.Version
	}
	if m.FPS > 0 {
		result["fps"] = strconv.FormatFloat(m.FPS, 'f', -1, 64)
	}
	if m.Width > 0 {
		result["width"] = strconv.Itoa(m.Width)
	}
	if m.Height > 0 {
		result["height"] = strconv.Itoa(m.Height)
	}
	if m.FrameCount > 0 {
		result["frame_count"] = strconv.Itoa(m.FrameCount)
	}
	if m.Description != "" {
		result["description"] = m.Description
	}

	return result
}

// FromMap rebuilds Metadata from stored key/value pairs.
func FromMap(kv map[string]string) (Metadata, error) {
	m := Metadata{
		Name:        kv["name"],
		Format:      kv["format"],
		Version:     kv["version"],
		Description: kv["description"],
	}

	var err error
	if v, ok := kv["fps"]; ok {
		if m.FPS, err = strconv.ParseFloat(v, 64); err != nil {
			return Metadata{}, fmt.Errorf("invalid fps %q: %w", v, err)
		}
	}
	if v, ok := kv["width"]; ok {
		if m.Width, err = strconv.Atoi(v); err != nil {
			return Metadata{}, fmt.Errorf("invalid width %q: %w", v, err)
		}
	}
	if v, ok := kv["height"]; ok {
		if m.Height, err = strconv.Atoi(v); err != nil {
			return Metadata{}, fmt.Errorf("invalid height %q: %w", v, err)
		}
	}
	if v, ok := kv["frame_count"]; ok {
		if m.FrameCount, err = strconv.Atoi(v); err != nil {
			return Metadata{}, fmt.Errorf("invalid frame_count %q: %w", v, err)
		}
	}
	return m, nil
}
