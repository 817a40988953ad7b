package main

import (
	"os"

	"github.com/urfave/cli/v2"

	fossil "github.com/OilerNetwork/fossil-L1-L2-relayer"
	fossilcommon "github.com/OilerNetwork/fossil-L1-L2-relayer/common"
	"github.com/OilerNetwork/fossil-L1-L2-relayer/config"
	"github.com/OilerNetwork/fossil-L1-L2-relayer/log"
)

const appName = "fossil-relayer"

var (
	configFileFlag = cli.StringSliceFlag{
		Name:     config.FlagCfg,
		Aliases:  []string{"c"},
		Usage:    "Configuration file(s)",
		Required: false,
	}
	componentsFlag = cli.StringSliceFlag{
		Name:     config.FlagComponents,
		Aliases:  []string{"co"},
		Usage:    "List of components to run",
		Required: false,
		Value: cli.NewStringSlice(
			fossilcommon.VERIFIER, fossilcommon.L1WATCHER, fossilcommon.RPC,
		),
	}
	saveConfigFlag = cli.StringFlag{
		Name:     config.FlagSaveConfigPath,
		Aliases:  []string{"s"},
		Usage:    "Save final configuration into the indicated path (name: " + config.SaveConfigFileName + ")",
		Required: false,
	}
)

func main() {
	app := cli.NewApp()
	app.Name = appName
	app.Version = fossil.Version
	flags := []cli.Flag{
		&configFileFlag,
		&componentsFlag,
		&saveConfigFlag,
	}
	app.Commands = []*cli.Command{
		{
			Name:   "version",
			Usage:  "Application version and build",
			Action: versionCmd,
		},
		{
			Name:   "run",
			Usage:  "Run the fossil relayer",
			Action: start,
			Flags:  flags,
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
		os.Exit(1)
	}
}
