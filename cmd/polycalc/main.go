package main

import "github.com/jonathanmweiss/go-poly/internal/cli"

func main() {
	cli.Execute()
}
