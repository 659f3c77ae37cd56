package main

import (
	"os"

	"github.com/pgdsn-tools/pgdsn/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
