package main

import (
	"fmt"
	"os"

	"github.com/cristianoliveira/inbox/cmd"
	"github.com/cristianoliveira/inbox/internal/colors"
	"github.com/cristianoliveira/inbox/internal/logging"
)

func main() {
	os.Exit(run(cmd.Execute))
}

func run(execute func() error) int {
	defer func() {
		if err := client.Close(); err != nil {
			colors.Warning(fmt.Sprintf("close storage: %v", err))
		}
		_ = logging.ShutdownGlobal()
	}()

	if err := execute(); err != nil {
		colors.Error(err.Error())
		return 1
	}
	return 0
}
