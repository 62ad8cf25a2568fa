package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all node configuration.
type Config struct {
	Server    ServerConfig           `mapstructure:"server"`
	Database  DatabaseConfig         `mapstructure:"database"`
	Redis     RedisConfig            `mapstructure:"redis"`
	JWT       JWTConfig              `mapstructure:"jwt"`
	Log       LogConfig              `mapstructure:"log"`
	Threshold ThresholdConfig        `mapstructure:"threshold"`
	Pinning   PinningConfig          `mapstructure:"pinning"`
	Gateway   GatewayConfig          `mapstructure:"gateway"`
	Wallet    WalletConfig           `mapstructure:"wallet"`
	Chains    map[string]ChainConfig `mapstructure:"chains"` // keyed by decimal chain id
	Metadata  MetadataConfig         `mapstructure:"metadata"`
	Player    PlayerConfig           `mapstructure:"player"`
	Reaper    ReaperConfig           `mapstructure:"reaper"`
}

type ServerConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Mode           string `mapstructure:"mode"` // debug, release, test
	MaxBodyBytes   int64  `mapstructure:"max_body_bytes"`
	MaxUploadBytes int64  `mapstructure:"max_upload_bytes"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // trace, debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

type ThresholdConfig struct {
	Mode       string        `mapstructure:"mode"` // local, remote
	Domain     string        `mapstructure:"domain"`
	RitualID   int           `mapstructure:"ritual_id"`
	PorterURL  string        `mapstructure:"porter_url"` // remote sidecar base URL
	DomainKey  string        `mapstructure:"domain_key"` // hex AES-256 key of the local domain
	MaxAuthAge time.Duration `mapstructure:"max_auth_age"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

type PinningConfig struct {
	Mode    string        `mapstructure:"mode"` // pinata, memory
	APIURL  string        `mapstructure:"api_url"`
	JWT     string        `mapstructure:"jwt"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type GatewayConfig struct {
	BaseURL  string        `mapstructure:"base_url"`
	Timeout  time.Duration `mapstructure:"timeout"`
	MaxBytes int64         `mapstructure:"max_bytes"`
}

type WalletConfig struct {
	Mode          string        `mapstructure:"mode"` // rpc, dev
	ProviderURL   string        `mapstructure:"provider_url"`
	DevPrivateKey string        `mapstructure:"dev_private_key"`
	DevChainID    int64         `mapstructure:"dev_chain_id"`
	SignInDomain  string        `mapstructure:"sign_in_domain"`
	SignInURI     string        `mapstructure:"sign_in_uri"`
	SessionTTL    time.Duration `mapstructure:"session_ttl"`
	Timeout       time.Duration `mapstructure:"timeout"`
}

type ChainConfig struct {
	RPCURL string  `mapstructure:"rpc_url"`
	RPS    float64 `mapstructure:"rps"`
	Burst  int     `mapstructure:"burst"`
}

type MetadataConfig struct {
	ModelID   string `mapstructure:"model_id"`
	ContextID string `mapstructure:"context_id"`
}

type PlayerConfig struct {
	MuteRestoresPrevious bool `mapstructure:"mute_restores_previous"`
}

type ReaperConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	Interval  time.Duration `mapstructure:"interval"`
	BatchSize int           `mapstructure:"batch_size"`
}

// Chain returns the settings of the chain with the given id.
func (c *Config) Chain(id int64) (ChainConfig, bool) {
	ch, ok := c.Chains[strconv.FormatInt(id, 10)]
	return ch, ok && ch.RPCURL != ""
}

// Validate checks settings that have no usable default.
func (c *Config) Validate() error {
	var errs []error
	if c.JWT.Secret == "" {
		errs = append(errs, errors.New("jwt.secret is required"))
	}
	switch c.Threshold.Mode {
	case "local":
		if key, err := hex.DecodeString(c.Threshold.DomainKey); err != nil || len(key) != 32 {
			errs = append(errs, errors.New("threshold.domain_key must be 32 hex-encoded bytes"))
		}
	case "remote":
		if c.Threshold.PorterURL == "" {
			errs = append(errs, errors.New("threshold.porter_url is required in remote mode"))
		}
	default:
		errs = append(errs, fmt.Errorf("threshold.mode %q is not one of local, remote", c.Threshold.Mode))
	}
	switch c.Pinning.Mode {
	case "pinata":
		if c.Pinning.JWT == "" {
			errs = append(errs, errors.New("pinning.jwt is required in pinata mode"))
		}
	case "memory":
	default:
		errs = append(errs, fmt.Errorf("pinning.mode %q is not one of pinata, memory", c.Pinning.Mode))
	}
	switch c.Wallet.Mode {
	case "rpc":
		if c.Wallet.ProviderURL == "" {
			errs = append(errs, errors.New("wallet.provider_url is required in rpc mode"))
		}
	case "dev":
		if c.Wallet.DevPrivateKey == "" {
			errs = append(errs, errors.New("wallet.dev_private_key is required in dev mode"))
		}
	default:
		errs = append(errs, fmt.Errorf("wallet.mode %q is not one of rpc, dev", c.Wallet.Mode))
	}
	return errors.Join(errs...)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: TGM_.
// Nested keys use underscore: TGM_DATABASE_HOST, TGM_PINNING_JWT, etc.
// Dotenv files (default ".env") are loaded first and never override the real environment.
func Load(path string, envFiles ...string) (*Config, error) {
	if err := loadDotEnv(envFiles); err != nil {
		return nil, err
	}

	v := viper.New()

	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.max_body_bytes", 1<<20)
	v.SetDefault("server.max_upload_bytes", 64<<20)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "tokengated_music")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "12h")
	v.SetDefault("jwt.issuer", "tokengated-music")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("threshold.mode", "local")
	v.SetDefault("threshold.domain", "lynx")
	v.SetDefault("threshold.ritual_id", 27)
	v.SetDefault("threshold.porter_url", "")
	v.SetDefault("threshold.domain_key", "")
	v.SetDefault("threshold.max_auth_age", "2h")
	v.SetDefault("threshold.timeout", "30s")
	v.SetDefault("pinning.mode", "pinata")
	v.SetDefault("pinning.api_url", "https://api.pinata.cloud")
	v.SetDefault("pinning.jwt", "")
	v.SetDefault("pinning.timeout", "2m")
	v.SetDefault("gateway.base_url", "https://gateway.pinata.cloud")
	v.SetDefault("gateway.timeout", "1m")
	v.SetDefault("gateway.max_bytes", 256<<20)
	v.SetDefault("wallet.mode", "rpc")
	v.SetDefault("wallet.provider_url", "http://127.0.0.1:1248")
	v.SetDefault("wallet.dev_private_key", "")
	v.SetDefault("wallet.dev_chain_id", 11155111)
	v.SetDefault("wallet.sign_in_domain", "localhost")
	v.SetDefault("wallet.sign_in_uri", "http://localhost:8080")
	v.SetDefault("wallet.session_ttl", "168h")
	v.SetDefault("wallet.timeout", "2m")
	v.SetDefault("chains.1.rpc_url", "https://eth.llamarpc.com")
	v.SetDefault("chains.1.rps", 5)
	v.SetDefault("chains.1.burst", 5)
	v.SetDefault("chains.11155111.rpc_url", "https://rpc.sepolia.org")
	v.SetDefault("chains.11155111.rps", 5)
	v.SetDefault("chains.11155111.burst", 5)
	v.SetDefault("chains.137.rpc_url", "https://polygon-rpc.com")
	v.SetDefault("chains.137.rps", 5)
	v.SetDefault("chains.137.burst", 5)
	v.SetDefault("chains.80002.rpc_url", "https://rpc-amoy.polygon.technology")
	v.SetDefault("chains.80002.rps", 5)
	v.SetDefault("chains.80002.burst", 5)
	v.SetDefault("metadata.model_id", "kjzl6hvfrbw6c5i55ks5m4hhyuh0jylw4g7x0asndu97i7luts4dfzvm35oev65")
	v.SetDefault("metadata.context_id", "kjzl6kcym7w8y7re4xnxxhcl8h5mf5ya5sddcyqeljn5nnzxuu7ubz2yzl9ivzj")
	v.SetDefault("player.mute_restores_previous", false)
	v.SetDefault("reaper.enabled", true)
	v.SetDefault("reaper.interval", "30s")
	v.SetDefault("reaper.batch_size", 50)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// TGM_DATABASE_HOST -> database.host
	v.SetEnvPrefix("TGM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// the file is optional, env vars can suffice
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

func loadDotEnv(files []string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}
