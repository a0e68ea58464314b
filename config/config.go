// Package config loads the settings of the command line application.
//
// Settings come, by increasing priority, from defaults, a tsk.yaml file in
// the working directory and TSK_* environment variables. A .env file, if
// any, is loaded into the environment first.
package config

import (
	"errors"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	DataDir string
	Logger  LoggerConfig
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

// Defaults.
const (
	DefaultDataDir  = "."
	DefaultLevel    = "warn"
	DefaultEncoding = "console"
)

// Load reads the configuration. The configuration file is searched in
// paths, or in the working directory when none is given.
func Load(paths ...string) (*Config, error) {
	_ = godotenv.Load() // optional

	v := viper.New()
	v.SetConfigName("tsk")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{"."}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetEnvPrefix("TSK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("data_dir", DefaultDataDir)
	v.SetDefault("log.level", DefaultLevel)
	v.SetDefault("log.encoding", DefaultEncoding)
	v.SetDefault("log.disable_caller", true)
	v.SetDefault("log.disable_stacktrace", true)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	return &Config{
		DataDir: v.GetString("data_dir"),
		Logger: LoggerConfig{
			Level:             v.GetString("log.level"),
			Encoding:          v.GetString("log.encoding"),
			DisableCaller:     v.GetBool("log.disable_caller"),
			DisableStacktrace: v.GetBool("log.disable_stacktrace"),
		},
	}, nil
}
