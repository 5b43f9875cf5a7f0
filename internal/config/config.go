// Package config loads client settings from sen.yaml, .env and SEN_* variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/DescartesNetwork/sen-js-sub001/pkg/oracle"
	"github.com/DescartesNetwork/sen-js-sub001/pkg/program/farm"
	"github.com/DescartesNetwork/sen-js-sub001/pkg/program/swap"
)

// Config holds the resolved settings of a client process.
type Config struct {
	RPC          string
	SwapProgram  solana.PublicKey
	FarmProgram  solana.PublicKey
	TokenProgram solana.PublicKey
	// Slippage is the accepted shortfall in parts per oracle.FeeDecimals.
	Slippage   uint64
	LogLevel   string
	Simulate   bool
	PrivateKey string
}

// Load reads .env (when present), then an optional config file, then SEN_* variables.
// Without cfgFile, sen.yaml in the working directory is used if it exists.
func Load(cfgFile string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("SEN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("rpc", "https://api.devnet.solana.com")
	v.SetDefault("swap-program", swap.SENSWAP_PROGRAM_ID.String())
	v.SetDefault("farm-program", farm.SENFARM_PROGRAM_ID.String())
	v.SetDefault("token-program", solana.TokenProgramID.String())
	v.SetDefault("slippage", uint64(10_000_000))
	v.SetDefault("log-level", "info")
	v.SetDefault("simulate", true)
	v.SetDefault("private-key", "")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("sen")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := Config{
		RPC:        v.GetString("rpc"),
		Slippage:   v.GetUint64("slippage"),
		LogLevel:   v.GetString("log-level"),
		Simulate:   v.GetBool("simulate"),
		PrivateKey: v.GetString("private-key"),
	}
	var err error
	if cfg.SwapProgram, err = programID(v, "swap-program"); err != nil {
		return Config{}, err
	}
	if cfg.FarmProgram, err = programID(v, "farm-program"); err != nil {
		return Config{}, err
	}
	if cfg.TokenProgram, err = programID(v, "token-program"); err != nil {
		return Config{}, err
	}
	if cfg.Slippage > oracle.FeeDecimals {
		return Config{}, fmt.Errorf("slippage %d exceeds %d", cfg.Slippage, oracle.FeeDecimals)
	}
	return cfg, nil
}

func programID(v *viper.Viper, key string) (solana.PublicKey, error) {
	id, err := solana.PublicKeyFromBase58(v.GetString(key))
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("%s: %w", key, err)
	}
	return id, nil
}
