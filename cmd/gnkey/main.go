// Package main provides the gnkey command line application.
package main

import "github.com/gnames/gnkey/cmd"

func main() {
	cmd.Execute()
}
