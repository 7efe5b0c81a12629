package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Duplicate follow policies accepted by federation.duplicate_follow.
const (
	DuplicateFollowIgnore = "ignore"
	DuplicateFollowReject = "reject"
)

type Configuration struct {
	// Domain is the host under which local actors live. It is always treated as local.
	Domain string `mapstructure:"domain"`
	// LocalDomains lists additional host names the server answers to. Requests for any other host get a 404.
	LocalDomains []string `mapstructure:"local_domains"`
	// Listen is the address the HTTP server binds to.
	Listen string `mapstructure:"listen"`
	// Debug switches the logger to a human readable console writer and lowers the default level.
	Debug    bool   `mapstructure:"debug"`
	LogLevel string `mapstructure:"log_level"`
	// RsaKeySize specifies the size of the RSA keys generated for local actors.
	RsaKeySize int              `mapstructure:"rsa_key_size"`
	DB         DBConfig         `mapstructure:"db"`
	Federation FederationConfig `mapstructure:"federation"`
}

type DBConfig struct {
	// Path is the sqlite connection string.
	Path             string `mapstructure:"path"`
	MigrationsFolder string `mapstructure:"migrations"`
	// PoolSize bounds both the open connections and the number of storage calls running at once.
	PoolSize int `mapstructure:"pool_size"`
	// AcquireTimeout is how long a storage call waits for a free slot before failing.
	AcquireTimeout time.Duration `mapstructure:"acquire_timeout"`
}

type FederationConfig struct {
	// FetchTimeout bounds every outbound request, actor fetches and WebFinger queries alike.
	FetchTimeout    time.Duration `mapstructure:"fetch_timeout"`
	MaxResponseSize int64         `mapstructure:"max_response_size"`
	// MaxBodySize bounds inbound inbox payloads.
	MaxBodySize int64  `mapstructure:"max_body_size"`
	UserAgent   string `mapstructure:"user_agent"`
	// AuthorizedFetch makes actor fetches carry a signature made with the instance actor's key.
	AuthorizedFetch bool   `mapstructure:"authorized_fetch"`
	DuplicateFollow string `mapstructure:"duplicate_follow"`
	// InstanceActor is the username of the Application actor that represents the server itself.
	InstanceActor string `mapstructure:"instance_actor"`
}

// IsLocal reports whether host is served by this instance.
func (c *Configuration) IsLocal(host string) bool {
	host = strings.ToLower(host)
	return host == strings.ToLower(c.Domain) || slices.ContainsFunc(c.LocalDomains, func(d string) bool {
		return strings.ToLower(d) == host
	})
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("domain", "")
	v.SetDefault("local_domains", []string{})
	v.SetDefault("listen", ":8080")
	v.SetDefault("debug", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("rsa_key_size", 2048)

	v.SetDefault("db.path", "commune.db")
	v.SetDefault("db.migrations", "migrations")
	v.SetDefault("db.pool_size", 8)
	v.SetDefault("db.acquire_timeout", 5*time.Second)

	v.SetDefault("federation.fetch_timeout", 10*time.Second)
	v.SetDefault("federation.max_response_size", 1<<20)
	v.SetDefault("federation.max_body_size", 1<<20)
	v.SetDefault("federation.user_agent", "commune")
	v.SetDefault("federation.authorized_fetch", false)
	v.SetDefault("federation.duplicate_follow", DuplicateFollowIgnore)
	v.SetDefault("federation.instance_actor", "instance")
}

// ReadConfig loads the configuration from path, or from commune.{toml,yaml} in the working directory or
// /etc/commune when path is empty. Every key can be overridden through COMMUNE_ prefixed environment
// variables, with dots replaced by underscores.
func ReadConfig(path string) (Configuration, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("COMMUNE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("commune")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/commune")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Configuration{}, fmt.Errorf("reading config: %w", err)
		}
		log.Warn().Msg("no configuration file found, using defaults and environment")
	}

	var cfg Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return Configuration{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, cfg.Validate()
}

func (c *Configuration) Validate() error {
	var errs []error
	if c.Domain == "" {
		errs = append(errs, errors.New("domain is required"))
	}
	if c.DB.PoolSize < 1 {
		errs = append(errs, errors.New("db.pool_size must be at least 1"))
	}
	if c.DB.AcquireTimeout <= 0 {
		errs = append(errs, errors.New("db.acquire_timeout must be positive"))
	}
	if c.Federation.FetchTimeout <= 0 {
		errs = append(errs, errors.New("federation.fetch_timeout must be positive"))
	}
	switch c.Federation.DuplicateFollow {
	case DuplicateFollowIgnore, DuplicateFollowReject:
	default:
		errs = append(errs, fmt.Errorf("federation.duplicate_follow must be %q or %q", DuplicateFollowIgnore, DuplicateFollowReject))
	}
	return errors.Join(errs...)
}
