package main

import (
	"os"

	"github.com/Kilat-Pet-Delivery/service-pets/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
