package main

import "sprint-burndown/cmd"

func main() {
	cmd.Execute()
}
