package main

import "xdgkit/internal/cli"

func main() {
	cli.Execute()
}
