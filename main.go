package main

import "fintrack/cmd"

func main() {
	cmd.Execute()
}
