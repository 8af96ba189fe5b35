package main

import "github.com/goliatone/go-urlfor/internal/cli"

func main() {
	cli.Execute()
}
