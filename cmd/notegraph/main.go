package main

import "notegraph/cmd/notegraph/cmd"

func main() {
	cmd.Execute()
}
