//go:build js && wasm
// +build js,wasm

package main

import (
	"encoding/json"
	"fmt"
	"syscall/js"
)

// FrameRequest represents a frame lookup request from JS
type FrameRequest struct {
	Frame int `json:"frame"`
}

type FrameResponse struct {
	Key      string `json:"key"`
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

// frameURL is called from JavaScript to resolve a frame reference
// In the browser we cannot open the SQLite archive directly, but we *can*
// provide a canonical URL builder so the page code can reliably hit a
// backend `lineboil serve` instance.
func frameURL(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return map[string]string{"error": "missing arguments"}
	}

	reqStr := args[0].String()
	var req FrameRequest
	if err := json.Unmarshal([]byte(reqStr), &req); err != nil {
		return map[string]string{"error": fmt.Sprintf("failed to parse request: %v", err)}
	}

	if req.Frame < 0 {
		return map[string]string{"error": "frame must be non-negative"}
	}

	key := fmt.Sprintf("%d", req.Frame)
	return FrameResponse{
		Key:      key,
		Filename: key + ".png",
		URL:      "/frames/" + key + ".png",
	}
}

// initPlayer is called on page load to set up the WASM module
func initPlayer(this js.Value, args []js.Value) interface{} {
	fmt.Println("Lineboil WASM module initialized")
	return map[string]string{"status": "ready"}
}

func main() {
	c := make(chan struct{})

	js.Global().Set("lineboilFrameURL", js.FuncOf(frameURL))
	js.Global().Set("lineboilInit", js.FuncOf(initPlayer))

	fmt.Println("Lineboil WASM module loaded")
	<-c
}
