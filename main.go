package main

import "github.com/shotbridge/shotbridge/cmd"

func main() {
	cmd.Execute()
}
