package sources

import (
	"github.com/hashicorp/vault/api"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// VaultConfig holds configuration for connecting to HashiCorp Vault.
type VaultConfig struct {
	Address   string `yaml:"address"`
	Token     string `yaml:"token"`
	Path      string `yaml:"path"`
	Namespace string `yaml:"namespace"`
}

// Validate checks if the VaultConfig has all required fields set
func (v VaultConfig) Validate() error {
	if v.Address == "" {
		return errors.New("Vault address is required")
	}
	if v.Token == "" {
		return errors.New("Vault token is required")
	}
	if v.Path == "" {
		return errors.New("Vault path is required")
	}
	return nil
}

// NewVaultClient creates and configures a Vault client from a VaultConfig.
// Typically called during startup to set up a Vault source.
//
// Example:
//
//	client, err := sources.NewVaultClient(&cfg.Vault)
//	if err != nil {
//	    log.Fatal().Err(err).Msg("Failed to create Vault client")
//	}
//	lookup := append(sources.Standard(nil, props), sources.Vault(client, cfg.Vault.Path))
func NewVaultClient(cfg *VaultConfig) (*api.Client, error) {
	if cfg == nil {
		return nil, errors.New("vault configuration is nil")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid Vault configuration")
	}

	config := api.DefaultConfig()
	config.Address = cfg.Address

	client, err := api.NewClient(config)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Vault client")
	}

	client.SetToken(cfg.Token)

	if cfg.Namespace != "" {
		client.SetNamespace(cfg.Namespace)
	}

	return client, nil
}

// vaultSource retrieves secrets from HashiCorp Vault. Supports both KV v1
// and KV v2 secret engines; a lookup that fails or finds nothing reports
// absent so the rest of a chain can answer.
type vaultSource struct {
	logical *api.Logical
	path    string
}

// Vault creates a source that reads secrets from a fixed Vault path.
//
// Parameters:
//   - client: configured Vault API client
//   - path: the Vault path to read secrets from (e.g., "secret/data/myapp")
func Vault(client *api.Client, path string) Source {
	return &vaultSource{
		logical: client.Logical(),
		path:    path,
	}
}

func (v *vaultSource) Lookup(name string) (string, bool) {
	secret, err := v.logical.Read(v.path)
	if err != nil {
		log.Warn().
			Err(err).
			Str("vault_path", v.path).
			Msg("Failed to read secret from Vault")
		return "", false
	}

	if secret == nil || secret.Data == nil {
		log.Debug().
			Str("vault_path", v.path).
			Msg("No secret found at Vault path")
		return "", false
	}

	// KV v2 wraps the payload in a nested "data" object; KV v1 is flat.
	data := secret.Data
	if nested, ok := secret.Data["data"].(map[string]any); ok {
		data = nested
	}

	value, ok := data[name].(string)
	if !ok {
		return "", false
	}

	log.Debug().
		Str("secret_name", name).
		Str("vault_path", v.path).
		Msg("Retrieved secret from Vault")
	return value, true
}

func (v *vaultSource) Name() string { return "Vault" }
