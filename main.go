package main

import "unabbreviator/internal/cli"

func main() {
	cli.Execute()
}
