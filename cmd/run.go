package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"

	jRPC "github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/urfave/cli/v2"

	fossil "github.com/OilerNetwork/fossil-L1-L2-relayer"
	fossilcommon "github.com/OilerNetwork/fossil-L1-L2-relayer/common"
	"github.com/OilerNetwork/fossil-L1-L2-relayer/config"
	"github.com/OilerNetwork/fossil-L1-L2-relayer/l1watcher"
	"github.com/OilerNetwork/fossil-L1-L2-relayer/log"
	"github.com/OilerNetwork/fossil-L1-L2-relayer/mmrstore"
	"github.com/OilerNetwork/fossil-L1-L2-relayer/rpc"
	"github.com/OilerNetwork/fossil-L1-L2-relayer/verifier"
)

func start(cliCtx *cli.Context) error {
	c, err := config.Load(cliCtx)
	if err != nil {
		return err
	}

	log.Init(c.Log)

	if c.Log.Environment == log.EnvironmentDevelopment {
		fossil.PrintVersion(os.Stdout)
		log.Info("Starting application")
	} else if c.Log.Environment == log.EnvironmentProduction {
		logVersion()
	}

	components := cliCtx.StringSlice(config.FlagComponents)

	// every component reads or writes the MMR state
	storage, err := mmrstore.NewMMRStorage(log.WithFields("module", "mmrstore"), c.MMRStore)
	if err != nil {
		log.Fatal(err)
	}
	gateway := runVerifierGatewayIfNeeded(components, *c, storage)
	l1Client := runL1ClientIfNeeded(components, c.L1Watcher.URLRPCL1)

	for _, component := range components {
		switch component {
		case fossilcommon.L1WATCHER:
			watcher, err := l1watcher.New(
				log.WithFields("module", fossilcommon.L1WATCHER),
				c.L1Watcher,
				l1Client,
				storage,
			)
			if err != nil {
				log.Fatal(err)
			}
			go watcher.Start(cliCtx.Context)
		case fossilcommon.RPC:
			server := createRPC(c.RPC, gateway, storage)
			go func() {
				if err := server.Start(); err != nil {
					log.Fatal(err)
				}
			}()
		}
	}

	waitSignal(nil)

	return nil
}

func runVerifierGatewayIfNeeded(
	components []string, c config.Config, storage *mmrstore.MMRStorage,
) *verifier.Gateway {
	if !isNeeded([]string{fossilcommon.VERIFIER}, components) {
		return nil
	}
	logger := log.WithFields("module", fossilcommon.VERIFIER)
	groth16Verifier, err := verifier.NewGroth16Verifier(c.Verifier.VerifyingKeyPath)
	if err != nil {
		log.Fatal(err)
	}
	return verifier.NewGateway(logger, c.Verifier, groth16Verifier, storage)
}

func runL1ClientIfNeeded(components []string, urlRPCL1 string) *ethclient.Client {
	if !isNeeded([]string{fossilcommon.L1WATCHER}, components) {
		return nil
	}
	log.Debugf("dialing L1 client at: %s", urlRPCL1)
	l1Client, err := ethclient.Dial(urlRPCL1)
	if err != nil {
		log.Fatalf("failed to create client for L1 using URL: %s. Err:%v", urlRPCL1, err)
	}

	return l1Client
}

func createRPC(cfg jRPC.Config, gateway *verifier.Gateway, storage *mmrstore.MMRStorage) *jRPC.Server {
	logger := log.WithFields("module", fossilcommon.RPC)
	var proofGateway rpc.ProofGateway
	if gateway != nil {
		proofGateway = gateway
	}
	services := []jRPC.Service{
		{
			Name: rpc.FOSSIL,
			Service: rpc.NewFossilEndpoints(
				logger,
				cfg.WriteTimeout.Duration,
				cfg.ReadTimeout.Duration,
				proofGateway,
				storage,
			),
		},
	}

	return jRPC.NewServer(cfg, services, jRPC.WithLogger(logger.GetSugaredLogger()))
}

func isNeeded(casesWhereNeeded, actualCases []string) bool {
	for _, actualCase := range actualCases {
		for _, caseWhereNeeded := range casesWhereNeeded {
			if actualCase == caseWhereNeeded {
				return true
			}
		}
	}

	return false
}

func logVersion() {
	log.Infow("Starting application",
		// version is already logged by default
		"gitRevision", fossil.GitRev,
		"gitBranch", fossil.GitBranch,
		"goVersion", runtime.Version(),
		"built", fossil.BuildDate,
		"os/arch", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	)
}

func waitSignal(cancelFuncs []context.CancelFunc) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt)

	for sig := range signals {
		switch sig {
		case os.Interrupt, os.Kill:
			log.Info("terminating application gracefully...")

			exitStatus := 0
			for _, cancel := range cancelFuncs {
				cancel()
			}
			os.Exit(exitStatus)
		}
	}
}
