package main

import (
	"fmt"

	// Packages
	version "github.com/mutablelogic/go-llmcheck/pkg/version"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type VersionCommand struct {
	Server bool `name:"server" help:"Also report the version of the runtime server"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *VersionCommand) Run(globals *Globals) error {
	fmt.Println(version.New(execName()))
	if !cmd.Server {
		return nil
	}

	client, err := globals.Client()
	if err != nil {
		return err
	}
	server, err := client.Version(globals.ctx)
	if err != nil {
		return err
	}
	fmt.Println("server:", server)
	return nil
}
