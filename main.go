package main

import "github.com/pizzadesk/pizzadesk/cmd"

func main() {
	cmd.Execute()
}
