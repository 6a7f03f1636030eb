package main

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

type AppFlags struct {
	Targets          []string
	TargetsFile      string
	GlobalConfigFile string
	JSONOutput       bool
	Notify           bool
	Concurrency      int
}

// targetList collects a repeatable -u flag.
type targetList []string

func (t *targetList) String() string {
	return strings.Join(*t, ",")
}

func (t *targetList) Set(value string) error {
	*t = append(*t, value)
	return nil
}

// ParseFlags parses args (without the program name). Positional arguments are
// treated as extra targets.
func ParseFlags(args []string, output io.Writer) (AppFlags, error) {
	fs := flag.NewFlagSet("gatechk", flag.ContinueOnError)
	fs.SetOutput(output)

	var targets targetList
	fs.Var(&targets, "url", "Target to analyze (repeatable). A missing scheme defaults to https://")
	fs.Var(&targets, "u", "Alias for -url")

	targetsFile := fs.String("file", "", "Path to a text file with one target per line (# starts a comment)")
	targetsFileAlias := fs.String("f", "", "Alias for -file")

	globalConfigFile := fs.String("config", "", "Path to the global YAML/JSON configuration file. If not set, searches default locations.")
	globalConfigFileAlias := fs.String("c", "", "Alias for -config")

	jsonOutput := fs.Bool("json", false, "Print one JSON object per target instead of text reports")
	notify := fs.Bool("notify", false, "Send reports and alerts to the configured Discord webhooks")
	concurrency := fs.Int("concurrency", 0, "Number of targets analyzed in parallel (overrides config file if set)")

	fs.Usage = func() {
		fmt.Fprintln(output, "Usage: gatechk [flags] [target ...]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return AppFlags{}, err
	}

	flags := AppFlags{
		Targets:     append([]string(targets), fs.Args()...),
		JSONOutput:  *jsonOutput,
		Notify:      *notify,
		Concurrency: *concurrency,
	}

	if *targetsFile != "" {
		flags.TargetsFile = *targetsFile
	} else if *targetsFileAlias != "" {
		flags.TargetsFile = *targetsFileAlias
	}

	if *globalConfigFile != "" {
		flags.GlobalConfigFile = *globalConfigFile
	} else if *globalConfigFileAlias != "" {
		flags.GlobalConfigFile = *globalConfigFileAlias
	}

	if len(flags.Targets) == 0 && flags.TargetsFile == "" {
		return AppFlags{}, fmt.Errorf("no targets given: use -u <target>, -f <file> or positional arguments")
	}
	if flags.Concurrency < 0 {
		return AppFlags{}, fmt.Errorf("-concurrency must not be negative")
	}

	return flags, nil
}
