package main

import "figtrack/cmd/figtrack/cmd"

func main() {
	cmd.Execute()
}
