package main

import "github.com/notargets/gonanpack/cmd"

func main() {
	cmd.Execute()
}
