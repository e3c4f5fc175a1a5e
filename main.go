package main

import "github.com/jessicacardoso1/taskmanager-web/cmd"

func main() {
	cmd.Execute()
}
