package main

import "ciftify/internal/cli"

func main() {
	cli.Execute()
}
