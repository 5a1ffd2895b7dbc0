package main

import (
	"os"

	"github.com/harrison/atglob/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute(os.Args[1:]))
}
