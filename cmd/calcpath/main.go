package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/calcpath/internal/cli"
)

var version = "dev"

func main() {
	cli.SetVersion(version)

	if err := cli.Execute(); err != nil {
		var exit *cli.ExitError
		if errors.As(err, &exit) {
			if exit.Err != nil {
				cli.PrintError(os.Stderr, exit.Err.Error())
			}
			os.Exit(exit.Code)
		}
		cli.PrintError(os.Stderr, fmt.Sprint(err))
		os.Exit(1)
	}
}
