package main

import "go-autoheader/cmd"

func main() {
	cmd.Execute()
}
