// Package main provides the entry point for the hexpick color picker.
package main

import "hexpick/internal/cli"

func main() {
	cli.Execute()
}
