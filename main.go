package main

import "github.com/lazharichir/showdown/cli"

func main() {
	cli.Execute()
}
