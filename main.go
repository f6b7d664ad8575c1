/*
Copyright © 2026 ocservctl authors
*/
package main

import (
	"github.com/ocserv-admin/ocservctl/cmd"
)

// TODO: use -ldflags to set the right version at build time
var version = "v0.1.0"

func main() {
	cmd.Version = version
	cmd.Execute()
}
