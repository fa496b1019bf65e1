// Package config loads the client configuration from a TOML file.
package config

import (
	"net/url"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/mugiliam/hatchrelclient/pkg/apperrors"
	"github.com/mugiliam/hatchrelclient/pkg/rest"
)

const (
	EnvConfigFile = "HATCH_CONFIG"
	EnvServerURI  = "HATCH_SERVER_URI"
	EnvMetalake   = "HATCH_METALAKE"

	DefaultServerURI = "http://localhost:8090"
	DefaultTimeout   = 30 * time.Second
	DefaultLogLevel  = "info"
)

var ErrInvalidConfig apperrors.Error = apperrors.New("invalid configuration").SetExpandError(true)

type ConfigParam struct {
	ServerURI  string            `toml:"server_uri"`
	Metalake   string            `toml:"metalake"`
	Timeout    time.Duration     `toml:"timeout"`
	LogLevel   string            `toml:"log_level"`
	LogConsole bool              `toml:"log_console"`
	CallerID   string            `toml:"caller_id"`
	Headers    map[string]string `toml:"headers"`
}

var (
	cfg   *ConfigParam
	cfgMu sync.RWMutex
)

// Config returns the loaded configuration, or the defaults if nothing was loaded.
func Config() *ConfigParam {
	cfgMu.RLock()
	defer cfgMu.RUnlock()
	if cfg == nil {
		return Default()
	}
	return cfg
}

func SetConfig(c *ConfigParam) {
	cfgMu.Lock()
	defer cfgMu.Unlock()
	cfg = c
}

func Default() *ConfigParam {
	return &ConfigParam{
		ServerURI: DefaultServerURI,
		Timeout:   DefaultTimeout,
		LogLevel:  DefaultLogLevel,
	}
}

// Load reads the configuration at path, or at $HATCH_CONFIG when path is
// empty. With neither set the defaults are used. HATCH_SERVER_URI and
// HATCH_METALAKE override the file. The result becomes the value of Config.
func Load(path string) (*ConfigParam, error) {
	c := Default()
	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path != "" {
		meta, err := toml.DecodeFile(path, c)
		if err != nil {
			return nil, ErrInvalidConfig.MsgErr("unable to read "+path, err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, 0, len(undecoded))
			for _, k := range undecoded {
				keys = append(keys, k.String())
			}
			sort.Strings(keys)
			return nil, ErrInvalidConfig.Msg("unknown keys in " + path + ": " + strings.Join(keys, ", "))
		}
	}
	if v := os.Getenv(EnvServerURI); v != "" {
		c.ServerURI = v
	}
	if v := os.Getenv(EnvMetalake); v != "" {
		c.Metalake = v
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	SetConfig(c)
	return c, nil
}

func (c *ConfigParam) Validate() error {
	u, err := url.Parse(c.ServerURI)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidConfig.Msg("server_uri must be an http or https url: " + c.ServerURI)
	}
	if c.Timeout < 0 {
		return ErrInvalidConfig.Msg("timeout must not be negative")
	}
	return nil
}

// RestOptions are the transport options implied by the configuration.
func (c *ConfigParam) RestOptions() []rest.Options {
	var opts []rest.Options
	if c.Timeout > 0 {
		opts = append(opts, rest.WithTimeout(c.Timeout))
	}
	if len(c.Headers) > 0 {
		opts = append(opts, rest.WithHeaders(c.Headers))
	}
	return opts
}
