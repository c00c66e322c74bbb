package main

import "github.com/watarik/ghdash/cmd"

func main() {
	cmd.Execute()
}
