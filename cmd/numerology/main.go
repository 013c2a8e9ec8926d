// Command numerology computes readings and manages PDF reports from the shell.
package main

import (
	"os"

	"github.com/jsamuelsen/numerology-service/internal/cli"
)

// Version is injected at build time.
var Version = "dev"

func main() {
	os.Exit(cli.Execute(Version))
}
