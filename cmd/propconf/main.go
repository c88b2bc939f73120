package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/animalet/propconf-go/pkg/placeholder"
	"github.com/animalet/propconf-go/pkg/properties"
	"github.com/animalet/propconf-go/pkg/sources"
)

// Version information set during build
var (
	version = "dev"
)

// options collects everything the command line configures.
type options struct {
	configFile string
	strict     bool
	raw        bool
	secretsDir string
	vault      sources.VaultConfig
	aws        sources.AWSConfig
}

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	debugMode := flag.Bool("debug", false, "Enable debug logging")

	var opts options
	flag.StringVar(&opts.configFile, "config", "", "Path to configuration file (.properties, .yaml or .toml)")
	flag.BoolVar(&opts.strict, "strict", false, "Fail on unresolvable placeholders")
	flag.BoolVar(&opts.raw, "raw", false, "Print values without resolving placeholders")
	flag.StringVar(&opts.secretsDir, "secrets-dir", "", "Directory with one secret file per placeholder name")
	flag.StringVar(&opts.vault.Address, "vault-addr", "", "Vault server address")
	flag.StringVar(&opts.vault.Token, "vault-token", "", "Vault token")
	flag.StringVar(&opts.vault.Path, "vault-path", "", "Vault secret path (e.g. secret/data/myapp)")
	flag.StringVar(&opts.vault.Namespace, "vault-namespace", "", "Vault namespace")
	flag.StringVar(&opts.aws.Region, "aws-region", "", "AWS region for Secrets Manager")
	flag.StringVar(&opts.aws.SecretName, "aws-secret", "", "AWS Secrets Manager secret name")
	flag.StringVar(&opts.aws.Endpoint, "aws-endpoint", "", "Custom AWS endpoint (for LocalStack)")

	flag.Parse()

	if *debugMode {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if *showVersion {
		fmt.Printf("%s %s\n", "propconf", version)
		os.Exit(0)
	}

	if opts.configFile == "" {
		if _, err := fmt.Fprintln(os.Stderr, "Error: -config flag is required"); err != nil {
			panic("Failed to print error message")
		}
		os.Exit(1)
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "2006-01-02 15:04:05",
	})

	if err := run(opts, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("propconf failed")
	}
}

// run loads the configuration file, resolves its placeholders unless raw
// output was requested, and prints the flattened key=value pairs to out.
func run(opts options, out io.Writer) error {
	props, err := properties.LoadFile(opts.configFile)
	if err != nil {
		return err
	}

	if !opts.raw {
		chain, err := buildChain(opts, props)
		if err != nil {
			return err
		}

		resolver := placeholder.Default
		if opts.strict {
			resolver = placeholder.Strict
		}

		props, err = resolver.ResolveSet(props, chain.Lookup)
		if err != nil {
			return err
		}
	}

	var writeErr error
	props.Range(func(key, value string) bool {
		_, writeErr = fmt.Fprintf(out, "%s=%s\n", key, value)
		return writeErr == nil
	})
	return writeErr
}

// buildChain assembles the placeholder lookup chain from the command line:
// the environment and the config file itself come first, then the optional
// secret backends in the order file, Vault, AWS.
func buildChain(opts options, props *properties.Set) (sources.Chain, error) {
	chain := sources.Standard(nil, props)

	if opts.secretsDir != "" {
		src, err := sources.File(opts.secretsDir)
		if err != nil {
			return nil, errors.Wrap(err, "secrets-dir flag")
		}
		chain = append(chain, src)
	}

	if opts.vault.Address != "" || opts.vault.Token != "" || opts.vault.Path != "" {
		client, err := sources.NewVaultClient(&opts.vault)
		if err != nil {
			return nil, errors.Wrap(err, "vault flags")
		}
		chain = append(chain, sources.Vault(client, opts.vault.Path))
	}

	if opts.aws.Region != "" || opts.aws.SecretName != "" {
		if err := opts.aws.Validate(); err != nil {
			return nil, errors.Wrap(err, "aws flags")
		}
		client, err := sources.NewAWSClient(opts.aws)
		if err != nil {
			return nil, errors.Wrap(err, "aws flags")
		}
		chain = append(chain, sources.AWSSecrets(client, opts.aws.SecretName))
	}

	return chain, nil
}
