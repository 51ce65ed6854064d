package main

import (
	"os"

	"github.com/jobtools/missingjobs/cmd/missingjobs/commands"
)

func main() {
	os.Exit(commands.Execute())
}
