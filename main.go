package main

import (
	"os"

	"github.com/shashikanthshadow/talentscout/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
