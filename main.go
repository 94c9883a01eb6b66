package main

import "github.com/alexiusacademia/goflex/cmd"

func main() {
	cmd.Execute()
}
