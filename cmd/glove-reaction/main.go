package main

import "github.com/oshokin/autofix-handedness/cmd/glove-reaction/cmd"

func main() {
	cmd.Execute()
}
