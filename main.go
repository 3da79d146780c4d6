package main

import "github.com/sweeplab/logsweep/cmd"

func main() {
	cmd.Execute()
}
