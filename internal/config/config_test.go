package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DescartesNetwork/sen-js-sub001/pkg/program/farm"
	"github.com/DescartesNetwork/sen-js-sub001/pkg/program/swap"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "https://api.devnet.solana.com", cfg.RPC)
	assert.Equal(t, swap.SENSWAP_PROGRAM_ID, cfg.SwapProgram)
	assert.Equal(t, farm.SENFARM_PROGRAM_ID, cfg.FarmProgram)
	assert.Equal(t, solana.TokenProgramID, cfg.TokenProgram)
	assert.Equal(t, uint64(10_000_000), cfg.Slippage)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.Simulate)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	program := solana.NewWallet().PublicKey()
	farmProgram, tokenProgram := solana.NewWallet().PublicKey(), solana.NewWallet().PublicKey()
	t.Setenv("SEN_RPC", "http://localhost:8899")
	t.Setenv("SEN_SWAP_PROGRAM", program.String())
	t.Setenv("SEN_FARM_PROGRAM", farmProgram.String())
	t.Setenv("SEN_TOKEN_PROGRAM", tokenProgram.String())
	t.Setenv("SEN_SLIPPAGE", "5000")
	t.Setenv("SEN_SIMULATE", "false")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8899", cfg.RPC)
	assert.Equal(t, program, cfg.SwapProgram)
	assert.Equal(t, farmProgram, cfg.FarmProgram)
	assert.Equal(t, tokenProgram, cfg.TokenProgram)
	assert.Equal(t, uint64(5000), cfg.Slippage)
	assert.False(t, cfg.Simulate)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sen.yaml"), []byte("rpc: http://127.0.0.1:8899\nlog-level: debug\n"), 0o600))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8899", cfg.RPC)
	assert.Equal(t, "debug", cfg.LogLevel)

	// variables win over the file
	t.Setenv("SEN_LOG_LEVEL", "warn")
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SEN_PRIVATE_KEY=from-dotenv\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("SEN_PRIVATE_KEY") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.PrivateKey)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Setenv("SEN_FARM_PROGRAM", "not-a-key")
	_, err := Load("")
	assert.Error(t, err)

	t.Setenv("SEN_FARM_PROGRAM", farm.SENFARM_PROGRAM_ID.String())
	t.Setenv("SEN_SLIPPAGE", "1000000001")
	_, err = Load("")
	assert.Error(t, err)
}
