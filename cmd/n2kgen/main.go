package main

import (
	"os"
	"strings"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"

	"github.com/n2kgen/n2kgen/internal/codegen/common"
	"github.com/n2kgen/n2kgen/internal/config"
	"github.com/n2kgen/n2kgen/internal/configpaths"
	"github.com/n2kgen/n2kgen/internal/log"
)

func main() {
	userCfg := findUserConfig(os.Args[1:])
	jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths(userCfg)

	version, err := common.GetVersion()
	if err != nil {
		version = "unknown"
	}

	var cli config.CLI
	ctx := kong.Parse(&cli,
		kong.Name("n2kgen"),
		kong.Description("NMEA 2000 message type generator"),
		kong.UsageOnError(),
		kong.Vars{"version": version},
		// Flags and env override config values; files are tried in priority order.
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)

	logger, closeFiles, err := log.SetupLogger(cli.Log.Level, cli.Log.File)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		os.Exit(2)
	}
	defer func() {
		for _, c := range closeFiles {
			_ = c.Close()
		}
	}()

	logger.Debug("Starting n2kgen", "version", version, "command", ctx.Command())

	ctx.Bind(logger)
	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}

func findUserConfig(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if strings.HasPrefix(a, "--config=") {
			return a[len("--config="):]
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return os.Getenv("N2KGEN_CONFIG")
}
