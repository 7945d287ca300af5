package main

import "sculink/cmd/sculinkctl/cmds"

func main() {
	cmds.Execute()
}
