package main

import "textlab/internal/cli"

func main() {
	cli.Execute()
}
