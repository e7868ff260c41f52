package main

import "github.com/julienpequegnot/wayfare/cmd"

func main() {
	cmd.Execute()
}
