// Package config declares the n2kgen command line. Every flag can also be
// set through the environment or a JSON, YAML or TOML config file.
package config

import (
	"github.com/alecthomas/kong"

	"github.com/n2kgen/n2kgen/internal/cmd"
)

type Log struct {
	Level string `help:"Log level: trace, debug, info, warn, error" default:"info" enum:"trace,debug,info,warn,error" env:"N2KGEN_LOG_LEVEL"`
	File  string `help:"Also write logs to this file" env:"N2KGEN_LOG_FILE"`
}

type CLI struct {
	ConfigFile string           `name:"config" help:"Configuration file (.json, .yaml, .yml or .toml)" env:"N2KGEN_CONFIG"`
	Version    kong.VersionFlag `help:"Print the version and exit"`
	Log        Log              `embed:"" prefix:"log."`

	Generate cmd.Generate      `cmd:"" help:"Generate message type declarations and decode/encode stubs"`
	List     cmd.List          `cmd:"" help:"List registry messages and how their fields resolve"`
	Config   cmd.ConfigCommand `cmd:"" help:"Manage configuration files"`
}
