// SPDX-License-Identifier: MIT

// Command minuscule explores minuscule posets and verifies the φ bijection.
package main

import (
	"os"

	"github.com/katalvlaran/minuscule/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
