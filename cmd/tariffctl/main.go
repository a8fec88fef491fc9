// Package main is the entry point for tariffctl, the operator CLI for
// managing rate-service tariff tables.
package main

import (
	"os"

	"github.com/spedire/rate-service/cmd/tariffctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
