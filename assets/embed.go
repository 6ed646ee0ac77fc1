// Package assets embeds the example scene files shipped with the binary.
package assets

import (
	"embed"
	"strings"
)

// ScenesFS embeds the example scenes selectable with --scene example:<name>.
//
// NOTE: go:embed patterns must not use ".." and must be relative to this file.
// Keeping the embed source here (repo-root assets/) allows us to embed assets
// without duplicating files.
//
//go:embed scenes/*.yaml
var ScenesFS embed.FS

// SceneNames lists the embedded example scene names, without extension.
func SceneNames() []string {
	entries, err := ScenesFS.ReadDir("scenes")
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if strings.HasSuffix(name, ".yaml") {
			names = append(names, strings.TrimSuffix(name, ".yaml"))
		}
	}
	return names
}

// Scene returns the raw YAML of a named embedded scene.
func Scene(name string) ([]byte, error) {
	return ScenesFS.ReadFile("scenes/" + name + ".yaml")
}
