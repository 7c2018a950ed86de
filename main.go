package main

import "github.com/Rorical/RoriInspect/cmd"

func main() {
	cmd.Execute()
}
