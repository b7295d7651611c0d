package main

import "github.com/marcodamonte/typedrills/cmd"

// Each subcommand runs one drill.
//
// Run:
//
//	go run . stack 1 2 3
//	go run . find users 2
//	go run . response users 99
func main() {
	cmd.Execute()
}
