package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/kanzi/charthub/internal/cmd"
)

// Set via -ldflags "-X main.Version=... -X main.Commit=..."
var (
	Version = "dev"
	Commit  = "none"
)

func main() {
	cmd.Version = Version
	cmd.Commit = Commit

	// fang prints the returned error; any failure exits 1
	if err := fang.Execute(
		context.Background(),
		cmd.RootCmd,
		fang.WithVersion(Version),
		fang.WithCommit(Commit),
		fang.WithNotifySignal(os.Interrupt, os.Kill),
	); err != nil {
		os.Exit(1)
	}
}
