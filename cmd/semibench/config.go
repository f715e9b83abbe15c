package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// errInvalidConfig flags configuration values out of range.
var errInvalidConfig = errors.New("semibench: invalid configuration")

// runConfig holds the parameters of a workload run.
type runConfig struct {
	Ops     int
	Keys    int
	Seed    int64
	Metrics bool
	NoColor bool
}

// initConfig loads env files and binds the flags of cmd to v.
func initConfig(v *viper.Viper, cmd *cobra.Command) error {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	v.SetEnvPrefix("semibench")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v.BindPFlags(cmd.Flags())
}

func readRunConfig(v *viper.Viper) (runConfig, error) {
	conf := runConfig{
		Ops:     v.GetInt("ops"),
		Keys:    v.GetInt("keys"),
		Seed:    v.GetInt64("seed"),
		Metrics: v.GetBool("metrics"),
		NoColor: v.GetBool("no-color"),
	}
	if conf.Ops < 0 {
		return conf, fmt.Errorf("%w: ops must not be negative, is %d", errInvalidConfig, conf.Ops)
	}
	if conf.Keys <= 0 {
		return conf, fmt.Errorf("%w: keys must be positive, is %d", errInvalidConfig, conf.Keys)
	}
	return conf, nil
}

func (conf runConfig) String() string {
	return fmt.Sprintf("ops=%d keys=%d seed=%d", conf.Ops, conf.Keys, conf.Seed)
}
