package main

import "webapp-standalone/cmd"

func main() {
	cmd.Execute()
}
