package main

import (
	"fmt"
	"os"

	"trading-dashboard/cmd/dashctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
