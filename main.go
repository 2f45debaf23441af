package main

import "github.com/kasuboski/discern/cmd"

func main() {
	cmd.Execute()
}
