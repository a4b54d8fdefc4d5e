package main

import "github.com/vibast-solutions/node-go-pinelabs/cmd"

func main() {
	cmd.Execute()
}
