package config

import (
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultConfig(t *testing.T) {
	cfg, err := LoadFile(nil, "")
	require.NoError(t, err)

	require.Equal(t, "development", string(cfg.Log.Environment))
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, "/tmp/fossil_relayer.sqlite", cfg.MMRStore.DBPath)
	require.Equal(t, common.Address{}, cfg.Verifier.SenderAddress)
	require.Equal(t, "FinalizedBlock", cfg.L1Watcher.BlockFinality)
	require.Equal(t, time.Second*30, cfg.L1Watcher.PollInterval.Duration)
	require.Equal(t, "http://localhost:8545", cfg.L1Watcher.URLRPCL1)
	require.Equal(t, 5576, cfg.RPC.Port)
}

func TestLoadConfigWithOverrides(t *testing.T) {
	override := `
VerifierSenderAddress = "0x1234567890123456789012345678901234567890"

[L1Watcher]
PollInterval = "5s"
`
	cfg, err := LoadFile([]FileData{{Name: "override", Content: override}}, "")
	require.NoError(t, err)

	require.Equal(t,
		common.HexToAddress("0x1234567890123456789012345678901234567890"),
		cfg.Verifier.SenderAddress,
	)
	require.Equal(t, time.Second*5, cfg.L1Watcher.PollInterval.Duration)
	// untouched defaults survive the override
	require.Equal(t, "FinalizedBlock", cfg.L1Watcher.BlockFinality)
}

func TestSaveConfig(t *testing.T) {
	cfg, err := LoadFile(nil, t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, cfg)

	asString, err := SaveConfigToString(*cfg)
	require.NoError(t, err)
	require.NotEmpty(t, asString)
}
