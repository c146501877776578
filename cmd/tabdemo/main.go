package main

import (
	"flag"

	"github.com/justyntemme/tabstrip/internal/app"
)

func main() {
	debug := flag.Bool("debug", false, "Enable verbose debug logging")
	flag.Parse()

	app.Main(*debug)
}
