package main

import "fmt"

// Version is the program version, overridable at build time with
// -ldflags "-X main.Version=...".
var Version = "0.1.0"

// Run executes the version command.
func (c *VersionCmd) Run(deps *Dependencies) error {
	fmt.Fprintf(deps.Stdout, "web2llm %s\n", Version)
	return nil
}
