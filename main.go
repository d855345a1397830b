package main

import "leftpad/cmd"

func main() {
	cmd.Execute()
}
