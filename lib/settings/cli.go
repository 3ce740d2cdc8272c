package settings

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func HandleConfigCommand(logger *zap.SugaredLogger) {
	os.Exit(RunConfigCommand(os.Stdout, os.Args[2:], logger))
}

// RunConfigCommand executes one `config` subcommand and returns the exit code.
func RunConfigCommand(w io.Writer, args []string, logger *zap.SugaredLogger) int {
	if len(args) < 1 {
		printConfigHelp(w)
		return 1
	}

	InitSettings(logger)
	switch args[0] {
	case "show":
		configShow(w)
	case "dump":
		configDump(w)
	case "env":
		configEnv(w)
	case "get":
		return configGet(w, args[1:])
	case "init":
		configInit(w)
	default:
		fmt.Fprintln(w, "Unknown config command:", args[0])
		printConfigHelp(w)
		return 1
	}
	return 0
}

func configShow(w io.Writer) {
	fmt.Fprintf(w,
		"%-25s %-30s %-12s %-12s %s\n",
		"JSON KEY",
		"ENV VAR",
		"CURRENT",
		"DEFAULT",
		"DESCRIPTION",
	)

	for _, c := range Registry {
		fmt.Fprintf(w,
			"%-25s %-30s %-12v %-12v %s\n",
			c.Key,
			EnvVar(c.Key),
			viper.Get(c.Key),
			c.Default,
			c.Description,
		)
	}
}

func configDump(w io.Writer) {
	out, err := json.MarshalIndent(viper.AllSettings(), "", "  ")
	if err != nil {
		fmt.Fprintln(w, "Error:", err)
		return
	}

	fmt.Fprintln(w, string(out))
}

func configEnv(w io.Writer) {
	fmt.Fprintf(w, "%-30s %s\n", "ENV VAR", "JSON KEY")

	for _, c := range Registry {
		fmt.Fprintf(w, "%-30s %s\n", EnvVar(c.Key), c.Key)
	}
}

func configGet(w io.Writer, args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(w, "Usage: delta-go config get <json-key>")
		return 1
	}

	key := args[0]
	for _, c := range Registry {
		if c.Key == key {
			fmt.Fprintln(w, viper.Get(key))
			return 0
		}
	}

	fmt.Fprintln(w, "Unknown config key:", key)
	return 1
}

// configInit prints a settings.json skeleton with every key at its default.
func configInit(w io.Writer) {
	out := map[string]any{}

	for _, c := range Registry {
		var parts = strings.Split(c.Key, ".")
		var node = out
		for _, p := range parts[:len(parts)-1] {
			child, ok := node[p].(map[string]any)
			if !ok {
				child = map[string]any{}
				node[p] = child
			}
			node = child
		}
		node[parts[len(parts)-1]] = c.Default
	}

	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		fmt.Fprintln(w, "Error:", err)
		return
	}

	fmt.Fprintln(w, string(b))
}

func printConfigHelp(w io.Writer) {
	fmt.Fprintln(w, `Usage:
  delta-go config show
  delta-go config dump
  delta-go config env
  delta-go config get <json-key>
  delta-go config init`)
}
