package main

import "github.com/MeKo-Tech/lineboil/internal/cmd"

func main() {
	cmd.Execute()
}
