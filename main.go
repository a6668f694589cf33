// plantcurator recommends indoor plants from six preference answers.
package main

import (
	"os"

	"github.com/duynguyendang/plantcurator/pkg/cli"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
