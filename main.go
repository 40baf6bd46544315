package main

import "github.com/jjenkins/waiver/cmd"

func main() {
	cmd.Execute()
}
