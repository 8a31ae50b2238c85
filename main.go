package main

import "github.com/rnwolfe/habitkit/cmd"

func main() {
	cmd.Execute()
}
