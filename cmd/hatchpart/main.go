// Command hatchpart manages partitions of relational catalog tables.
package main

import (
	"os"

	"github.com/mugiliam/hatchrelclient/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
