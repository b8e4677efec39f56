package main

import "github.com/krank-09/task-tracker/cmd"

func main() {
	cmd.Execute()
}
