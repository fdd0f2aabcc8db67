package main

import (
	"os"

	"paydesk/cmd/paydesk/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
