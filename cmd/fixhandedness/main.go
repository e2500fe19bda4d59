package main

import "github.com/oshokin/autofix-handedness/cmd/fixhandedness/cmd"

func main() {
	cmd.Execute()
}
