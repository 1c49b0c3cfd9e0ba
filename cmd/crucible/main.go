// Command crucible finds the cheapest route across a digit cost grid for a
// mover that may not reverse and must keep each straight run within a
// minimum and maximum length.
//
// It supports two commands:
//  1. "solve" – one top-left → bottom-right query, optionally drawing the route
//  2. "sweep" – the same query for a range of maximum run lengths, run in parallel
//
// Grids are read from the file argument, or from stdin when it is absent or "-".
// Every flag can also be set through a CRUCIBLE_* environment variable, and a
// .env file in the working directory is loaded first when present.
package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "crucible"
)

func main() {
	log := logrus.New()

	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.WithError(err).Warn("loading .env file")
		}
	} else {
		log.Debug("loaded environment variables from .env file")
	}

	a := &app{in: os.Stdin, out: os.Stdout, log: log}
	if err := a.command().Run(context.Background(), os.Args); err != nil {
		log.WithError(err).Error("crucible failed")
		os.Exit(1)
	}
}
