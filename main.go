// Package main is the entry point for the wpprep CLI.
package main

import "wpprep.dev/pkg/wpprep/cmd"

func main() {
	cmd.Execute()
}
