package main

import "github.com/jsphweid/jsb/cmd"

func main() {
	cmd.Execute()
}
