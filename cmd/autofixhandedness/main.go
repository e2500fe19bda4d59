package main

import "github.com/oshokin/autofix-handedness/cmd/autofixhandedness/cmd"

func main() {
	cmd.Execute()
}
