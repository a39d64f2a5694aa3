package main

import "github.com/arl/slicegeom/cmd/slicegeom/cmd"

func main() {
	cmd.Execute()
}
