package main

import "github.com/goujonmael/resmon/internal/cli"

func main() {
	cli.Execute()
}
