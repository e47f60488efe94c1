package main

import "github.com/jsphweid/synchro/cmd"

func main() {
	cmd.Execute()
}
