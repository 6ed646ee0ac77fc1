package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MeKo-Tech/lineboil/internal/framestore"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a frame archive with a browser player",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", "127.0.0.1:8080", "Listen address (host:port)")
	serveCmd.Flags().String("archive", "", "Frame archive to serve (required)")
	serveCmd.Flags().String("cache-control", "no-store", "Cache-Control header for served frames")

	mustBind := func(key string, name string) {
		if err := viper.BindPFlag(key, serveCmd.Flags().Lookup(name)); err != nil {
			panic(fmt.Sprintf("failed to bind flag: %v", err))
		}
	}

	mustBind("serve.addr", "addr")
	mustBind("serve.archive", "archive")
	mustBind("serve.cache_control", "cache-control")
}

func runServe(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	addr := viper.GetString("serve.addr")
	archivePath := viper.GetString("serve.archive")
	cacheControl := viper.GetString("serve.cache_control")

	if archivePath == "" {
		return fmt.Errorf("--archive is required")
	}

	reader, err := framestore.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	defer reader.Close()

	meta, err := reader.Metadata()
	if err != nil {
		return fmt.Errorf("failed to read archive metadata: %w", err)
	}
	count, err := reader.FrameCount()
	if err != nil {
		return fmt.Errorf("failed to count frames: %w", err)
	}
	if meta.FrameCount == 0 {
		meta.FrameCount = count
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		http.Redirect(w, r, "/player/", http.StatusFound)
	})

	mux.HandleFunc("/player/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(playerHTML))
	})

	mux.HandleFunc("/metadata", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"name":        meta.Name,
			"fps":         meta.FPS,
			"width":       meta.Width,
			"height":      meta.Height,
			"frame_count": meta.FrameCount,
		})
	})

	mux.Handle("/frames/", withCORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/frames/")
		name = strings.TrimSuffix(name, ".png")
		index, err := strconv.Atoi(name)
		if err != nil || index < 0 {
			http.NotFound(w, r)
			return
		}

		data, err := reader.ReadFrame(index)
		if err != nil {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", cacheControl)
		_, _ = w.Write(data)
	})))

	logger.Info("player listening",
		"addr", addr,
		"archive", archivePath,
		"frames", meta.FrameCount,
		"fps", meta.FPS,
	)

	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	return srv.ListenAndServe()
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

const playerHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>lineboil player</title>
<style>body{background:#222;margin:0;display:flex;align-items:center;justify-content:center;height:100vh}img{image-rendering:pixelated}</style>
</head>
<body>
<img id="frame" alt="frame">
<script>
fetch('/metadata').then(r => r.json()).then(meta => {
  const img = document.getElementById('frame');
  let i = 0;
  const frames = [];
  for (let n = 0; n < meta.frame_count; n++) {
    const pre = new Image();
    pre.src = '/frames/' + n + '.png';
    frames.push(pre);
  }
  setInterval(() => {
    img.src = frames[i].src;
    i = (i + 1) % meta.frame_count;
  }, 1000 / meta.fps);
});
</script>
</body>
</html>
`
