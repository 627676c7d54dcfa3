// Encore - A terminal playlist with undo history and local profiles
//
// Copyright (c) Manav Panchal
//
// Licensed under the SEGV License, Version 1.0
// See LICENSE file for full license text.

package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/manav03panchal/encore/cmd"
	"github.com/manav03panchal/encore/internal/runtime"
)

func main() {
	// ENCORE_* values from a local .env; real environment variables win.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(runtime.ExitCode(err))
	}
}
