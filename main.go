package main

import "github.com/nvr-ai/go-pixelkit/cmd"

func main() {
	cmd.Execute()
}
