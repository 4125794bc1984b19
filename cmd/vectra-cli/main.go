package main

import "vectra/cmd/vectra-cli/cmd"

func main() {
	cmd.Execute()
}
