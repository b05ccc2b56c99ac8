package config

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ytget/nasa-images/internal/nasa"
)

// EnvPrefix prefixes environment overrides, e.g. NASA_SEARCH_API_URL
const EnvPrefix = "NASA_SEARCH"

// Viper keys, also used as flag names
const (
	CLIKeyAPIURL    = "api-url"
	CLIKeyMediaType = "media-type"
	CLIKeyLimit     = "limit"
	CLIKeyTimeout   = "timeout"
	CLIKeyJSONLogs  = "json-logs"
	CLIKeyVerbose   = "verbose"
)

// DefaultLimit is how many results the console tool prints
const DefaultLimit = 5

// CLIConfig is the console tool configuration
type CLIConfig struct {
	APIURL    string        `mapstructure:"api-url"`
	MediaType string        `mapstructure:"media-type"`
	Limit     int           `mapstructure:"limit"`
	Timeout   time.Duration `mapstructure:"timeout"`
	JSONLogs  bool          `mapstructure:"json-logs"`
	Verbose   bool          `mapstructure:"verbose"`
}

// NewViper creates a viper instance with defaults and environment binding
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	SetCLIDefaults(v)
	return v
}

// SetCLIDefaults registers default values for every CLI key
func SetCLIDefaults(v *viper.Viper) {
	v.SetDefault(CLIKeyAPIURL, nasa.DefaultBaseURL)
	v.SetDefault(CLIKeyMediaType, nasa.DefaultMediaType)
	v.SetDefault(CLIKeyLimit, DefaultLimit)
	v.SetDefault(CLIKeyTimeout, nasa.DefaultTimeout)
	v.SetDefault(CLIKeyJSONLogs, false)
	v.SetDefault(CLIKeyVerbose, false)
}

// RegisterCLIFlags adds the persistent flags of the console tool
func RegisterCLIFlags(flags *pflag.FlagSet) {
	flags.String(CLIKeyAPIURL, nasa.DefaultBaseURL, "search endpoint")
	flags.String(CLIKeyMediaType, nasa.DefaultMediaType, "media_type filter (empty disables it)")
	flags.Int(CLIKeyLimit, DefaultLimit, "number of results to print")
	flags.Duration(CLIKeyTimeout, nasa.DefaultTimeout, "per-request timeout")
	flags.Bool(CLIKeyJSONLogs, false, "write diagnostic logs as JSON")
	flags.BoolP(CLIKeyVerbose, "v", false, "enable debug logs")
}

// LoadCLI binds flags into v and decodes the merged configuration.
// Precedence: explicit flag, environment, default.
func LoadCLI(v *viper.Viper, flags *pflag.FlagSet) (*CLIConfig, error) {
	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, errors.Wrap(err, "failed to bind flags")
		}
	}

	var cfg CLIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges
func (c *CLIConfig) Validate() error {
	if c.APIURL == "" {
		return errors.New("api-url must not be empty")
	}
	if c.Limit < 1 {
		return errors.Newf("limit must be at least 1, got %d", c.Limit)
	}
	if c.Timeout < MinRequestTimeout*time.Second || c.Timeout > MaxRequestTimeout*time.Second {
		return errors.Newf("timeout must be between %ds and %ds, got %s", MinRequestTimeout, MaxRequestTimeout, c.Timeout)
	}
	return nil
}

// ClientOptions returns the transport options for this configuration
func (c *CLIConfig) ClientOptions() []nasa.Option {
	return []nasa.Option{
		nasa.WithBaseURL(c.APIURL),
		nasa.WithMediaType(c.MediaType),
		nasa.WithTimeout(c.Timeout),
	}
}
