package sources

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// AWSConfig holds configuration for AWS Secrets Manager.
type AWSConfig struct {
	Region          string `yaml:"region"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	SecretName      string `yaml:"secret_name"`
	Endpoint        string `yaml:"endpoint"` // Optional: for LocalStack or custom endpoints
}

// Validate checks if the AWSConfig has all required fields set
func (a AWSConfig) Validate() error {
	if a.Region == "" {
		return errors.New("AWS region is required")
	}
	if a.SecretName == "" {
		return errors.New("AWS secret name is required")
	}
	// AccessKeyID and SecretAccessKey are optional - the default credential
	// chain (IAM role, env vars, shared config) applies when unset.
	return nil
}

// NewAWSClient creates and configures an AWS Secrets Manager client from
// cfg.
func NewAWSClient(cfg AWSConfig) (*secretsmanager.Client, error) {
	ctx := context.Background()

	configOpts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
	}

	if cfg.Endpoint != "" {
		configOpts = append(configOpts, config.WithBaseEndpoint(cfg.Endpoint))
	}

	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		configOpts = append(configOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				cfg.AccessKeyID,
				cfg.SecretAccessKey,
				"",
			),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, configOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load AWS configuration")
	}

	return secretsmanager.NewFromConfig(awsCfg), nil
}

// awsSource retrieves secrets from AWS Secrets Manager. The secret value
// can be either a JSON object, answering lookups per key, or a plain
// string, answering every lookup with the whole value.
type awsSource struct {
	client     *secretsmanager.Client
	secretName string
}

// AWSSecrets creates a source that reads one named secret from AWS Secrets
// Manager.
//
// Parameters:
//   - client: configured AWS Secrets Manager client
//   - secretName: the name of the secret in AWS Secrets Manager
func AWSSecrets(client *secretsmanager.Client, secretName string) Source {
	return &awsSource{
		client:     client,
		secretName: secretName,
	}
}

func (a *awsSource) Lookup(name string) (string, bool) {
	input := &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(a.secretName),
	}

	result, err := a.client.GetSecretValue(context.Background(), input)
	if err != nil {
		log.Warn().
			Err(err).
			Str("secret_name", a.secretName).
			Msg("Failed to read secret from AWS Secrets Manager")
		return "", false
	}

	if result.SecretString == nil {
		return "", false
	}
	secretString := *result.SecretString

	// A JSON object maps lookup names to values.
	var secretData map[string]any
	if err := json.Unmarshal([]byte(secretString), &secretData); err == nil {
		value, ok := secretData[name].(string)
		if !ok {
			return "", false
		}
		log.Debug().
			Str("secret_name", a.secretName).
			Str("key", name).
			Msg("Retrieved secret from AWS Secrets Manager")
		return value, true
	}

	// Not JSON: the entire secret is a single value and the lookup name is
	// ignored.
	log.Debug().
		Str("secret_name", a.secretName).
		Msg("Retrieved secret from AWS Secrets Manager (plain text)")
	return secretString, true
}

func (a *awsSource) Name() string { return "AWS Secrets Manager" }
