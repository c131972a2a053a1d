// Command bosl is the CLI front end for the bosl interpreter: run a
// script file or inline source, dump its parsed AST, or print version
// information.
package main

import (
	"fmt"
	"os"

	"github.com/bolthur/bosl-go/cmd/bosl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
