package configuration

import (
	"github.com/BurntSushi/toml"
	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/pkg/errors"
	"time"
)

type Config struct {
	ServerAddress string
	DatabaseURI   string
	RedisAddress  string
	StatsCacheTTL time.Duration
	AuthSecretKey jwk.Key
	LogDebug      bool
	LogInfo       bool
	LogError      bool
	LogToFile     bool
}

type tomlConfig struct {
	ServerAddress string `toml:"server_address"`
	DatabaseURI   string `toml:"database_uri"`
	RedisAddress  string `toml:"redis_address"`
	StatsCacheTTL string `toml:"stats_cache_ttl"`
	AuthSecretKey string `toml:"auth_secret_key"`
	LogDebug      bool   `toml:"log_debug"`
	LogInfo       bool   `toml:"log_info"`
	LogError      bool   `toml:"log_error"`
	LogToFile     bool   `toml:"log_to_file"`
}

func GetConfig(path string) (*Config, error) {
	var tc tomlConfig
	_, err := toml.DecodeFile(path, &tc)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode toml file with path: %s", path)
	}

	if tc.ServerAddress == "" {
		tc.ServerAddress = "localhost:8888"
	}

	if tc.DatabaseURI == "" {
		tc.DatabaseURI = "mongodb://localhost:27017"
	}

	statsCacheTTL := 1 * time.Minute
	if tc.StatsCacheTTL != "" {
		statsCacheTTL, err = time.ParseDuration(tc.StatsCacheTTL)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse stats_cache_ttl: %s", tc.StatsCacheTTL)
		}
		if statsCacheTTL < time.Second {
			return nil, errors.Errorf("stats_cache_ttl too short (%v), minimum: 1s", statsCacheTTL)
		}
	}

	// auth_secret_key is optional: without it, every request resolves to the
	// anonymous guest identity.
	var authSecretKey jwk.Key
	if tc.AuthSecretKey != "" {
		authSecretKey, err = jwk.FromRaw([]byte(tc.AuthSecretKey))
		if err != nil {
			return nil, errors.Wrap(err, "failed to create key from auth_secret_key")
		}
	}

	return &Config{
		ServerAddress: tc.ServerAddress,
		DatabaseURI:   tc.DatabaseURI,
		RedisAddress:  tc.RedisAddress,
		StatsCacheTTL: statsCacheTTL,
		AuthSecretKey: authSecretKey,
		LogDebug:      tc.LogDebug,
		LogInfo:       tc.LogInfo,
		LogError:      tc.LogError,
		LogToFile:     tc.LogToFile,
	}, nil
}
