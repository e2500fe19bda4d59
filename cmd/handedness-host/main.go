package main

import "github.com/oshokin/autofix-handedness/cmd/handedness-host/cmd"

func main() {
	cmd.Execute()
}
