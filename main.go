package main

import "github.com/nereus-ocean/nereus/cmd"

func main() {
	cmd.Execute()
}
