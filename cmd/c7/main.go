// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the c7 CLI, a terminal client
// for the Context7 documentation API. All real work happens in
// internal/cli so the command surface is testable with substituted
// streams and a stub API.
package main

import (
	"fmt"
	"os"

	"github.com/meshdocs/c7/internal/api"
	"github.com/meshdocs/c7/internal/cli"
	"github.com/meshdocs/c7/internal/config"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	args := os.Args[1:]

	cfg, err := config.Load(config.ConfigFlag(args), version)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cli.Version = version
	os.Exit(cli.Run(args, api.NewClient(cfg), os.Stdout, os.Stderr))
}
