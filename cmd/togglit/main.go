package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	togglit "github.com/togglit/togglit-go"
	"github.com/togglit/togglit-go/internal/config"
	"github.com/togglit/togglit-go/internal/logging"
	"github.com/togglit/togglit-go/internal/query"
)

const (
	exitOK       = 0
	exitDegraded = 1
	exitUsage    = 2
)

// fetcher is the part of *togglit.Client the command uses.
type fetcher interface {
	Fetch(ctx context.Context, req togglit.Request) togglit.Outcome
}

var newFetcher = func(cfg config.Config, logger *zap.Logger) (fetcher, error) {
	return togglit.New(
		togglit.WithConfig(togglit.Config{
			Variant:          cfg.Variant,
			ExtractionPolicy: cfg.ExtractionPolicy,
			UserAgent:        togglit.DefaultUserAgent + " (cli)",
		}),
		togglit.WithLogger(logger),
	)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	exitCode := -1

	app := kingpin.New("togglit", "Fetch remote configuration from Togglit")
	app.Version(togglit.LibraryVersion)
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)
	app.Terminate(func(code int) { exitCode = code })

	configFile := app.Flag("config", "Path to YAML configuration file").String()
	project := app.Flag("project", "Project ID").String()
	env := app.Flag("env", "Environment name, e.g. production or staging").String()
	apiKey := app.Flag("api-key", "API key sent as bearer token").String()
	revision := app.Flag("revision", "Config revision to fetch (0 = latest)").Default("-1").Int()
	variant := app.Flag("variant", "Endpoint variant: hosted, local or alt-domain").String()
	policy := app.Flag("policy", "Extraction policy: config-else-body or config-else-fallback").String()
	bypassCache := app.Flag("bypass-cache", "Force a fresh fetch").Bool()
	fallbackFile := app.Flag("fallback", "JSON file with the fallback configuration").String()
	timeout := app.Flag("timeout", "Request timeout").Duration()
	logLevel := app.Flag("log-level", "Log level for diagnostics on stderr").String()
	strict := app.Flag("strict", "Exit 1 when the fallback configuration was used").Bool()

	app.Command("get", "Print the configuration as JSON").Default()
	evalCmd := app.Command("eval", "Evaluate an expression against the configuration")
	expression := evalCmd.Arg("expression", `Expression, e.g. 'config.darkMode == true'`).Required().String()
	variantsCmd := app.Command("variants", "List the known endpoint variants")

	command, err := app.Parse(args)
	if exitCode >= 0 {
		return exitCode
	}
	if err != nil {
		fmt.Fprintf(stderr, "togglit: %v\n", err)
		return exitUsage
	}

	if command == variantsCmd.FullCommand() {
		printVariants(stdout)
		return exitOK
	}

	overrides := &config.CLIOverrides{
		ConfigFile:       *configFile,
		ProjectID:        project,
		Env:              env,
		APIKey:           apiKey,
		Variant:          variant,
		ExtractionPolicy: policy,
		BypassCache:      bypassCache,
		FallbackFile:     fallbackFile,
		Timeout:          timeout,
		LogLevel:         logLevel,
	}
	if *revision >= 0 {
		overrides.Version = revision
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		fmt.Fprintf(stderr, "togglit: %v\n", err)
		return exitUsage
	}

	logger, err := logging.NewWithLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "togglit: %v\n", err)
		return exitUsage
	}
	defer func() {
		_ = logger.Sync()
	}()

	client, err := newFetcher(cfg, logger)
	if err != nil {
		fmt.Fprintf(stderr, "togglit: %v\n", err)
		return exitUsage
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	outcome := client.Fetch(ctx, togglit.Request{
		ProjectID:   cfg.ProjectID,
		Env:         cfg.Env,
		APIKey:      cfg.APIKey,
		Version:     cfg.Version,
		Fallback:    cfg.Fallback,
		BypassCache: cfg.BypassCache,
	})

	var output any = outcome.Config
	if command == evalCmd.FullCommand() {
		output, err = query.Evaluate(*expression, outcome.Config)
		if err != nil {
			fmt.Fprintf(stderr, "togglit: %v\n", err)
			return exitUsage
		}
	}

	if err := writeJSON(stdout, output); err != nil {
		fmt.Fprintf(stderr, "togglit: %v\n", err)
		return exitUsage
	}

	if outcome.Degraded() {
		fmt.Fprintf(stderr, "togglit: using fallback configuration (%s)\n", outcome.Reason())
		if *strict {
			return exitDegraded
		}
	}

	return exitOK
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printVariants(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VARIANT\tPOLICY\tURL")
	for _, v := range togglit.Variants() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", v, v.DefaultPolicy(), v.BaseURL())
	}
	tw.Flush()
}
