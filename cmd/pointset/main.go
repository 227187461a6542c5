package main

import (
	"fmt"
	"os"

	"github.com/cropsight/pointset/internal/pkg/cli"
	"github.com/cropsight/pointset/internal/pkg/env"
	"github.com/cropsight/pointset/internal/pkg/filesystem/aferofs"
)

func main() {
	// Load ENVs
	envs, err := env.FromOs()
	if err != nil {
		fmt.Printf("cannot load envs: %s\n", err)
		os.Exit(1)
	}

	// Run command
	cmd := cli.NewRootCommand(os.Stdin, os.Stdout, os.Stderr, envs, aferofs.NewLocalFs)
	os.Exit(cmd.Execute())
}
