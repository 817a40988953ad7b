package main

import (
	"os"

	"github.com/urfave/cli/v2"

	fossil "github.com/OilerNetwork/fossil-L1-L2-relayer"
)

func versionCmd(*cli.Context) error {
	fossil.PrintVersion(os.Stdout)
	return nil
}
