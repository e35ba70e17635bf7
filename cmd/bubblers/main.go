package main

import "github.com/iheanyi/bubblers/internal/cli"

func main() {
	cli.Execute()
}
