// Package main is the greenmix command-line tool. It runs the sizing,
// allocation and load-profile calculators locally without a database.
package main

import (
	"os"

	"github.com/aristath/greenmix/pkg/logger"
)

func main() {
	log := logger.New(logger.Config{
		Level:  os.Getenv("LOG_LEVEL"),
		Pretty: true,
		Output: os.Stderr,
	})

	if err := newRootCmd(log).Execute(); err != nil {
		os.Exit(1)
	}
}
