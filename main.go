package main

import "github.com/clarete/lispinho/cmd"

func main() {
	cmd.Execute()
}
