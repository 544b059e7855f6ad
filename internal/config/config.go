// Package config carga la configuración del CLI y de la sesión desde YAML,
// con overrides por variables de entorno (GRIDLINK_*).
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dropDatabas3/gridlink"
)

// Config es el archivo de configuración completo.
type Config struct {
	Engine struct {
		Addresses []string `yaml:"addresses"`
		Instance  string   `yaml:"instance"`
	} `yaml:"engine"`

	Auth struct {
		Secret string `yaml:"secret"`
	} `yaml:"auth"`

	Client struct {
		CallTimeout  string `yaml:"call_timeout"`   // ej "10s"
		CacheViewTTL string `yaml:"cache_view_ttl"` // ej "2m"; vacío = sin expiración
	} `yaml:"client"`

	Log struct {
		Env   string `yaml:"env"`   // dev | prod
		Level string `yaml:"level"` // debug | info | warn | error
	} `yaml:"log"`

	// Duraciones ya parseadas (ver Load).
	callTimeout  time.Duration
	cacheViewTTL time.Duration
}

// CallTimeout retorna el timeout por llamada ya parseado.
func (c *Config) CallTimeout() time.Duration { return c.callTimeout }

// CacheViewTTL retorna el TTL de vistas de cache ya parseado.
func (c *Config) CacheViewTTL() time.Duration { return c.cacheViewTTL }

// Load lee el archivo YAML (si path no es vacío), aplica defaults y
// overrides de entorno, y valida.
func Load(path string) (*Config, error) {
	var c Config
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(b, &c); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	// sane defaults
	if c.Engine.Instance == "" {
		c.Engine.Instance = "gridlink"
	}
	if c.Client.CallTimeout == "" {
		c.Client.CallTimeout = "10s"
	}
	if c.Log.Env == "" {
		c.Log.Env = "dev"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}

	c.applyEnvOverrides()

	if len(c.Engine.Addresses) == 0 {
		return nil, fmt.Errorf("config: engine.addresses is required (or GRIDLINK_ADDRESSES)")
	}

	var err error
	if c.callTimeout, err = time.ParseDuration(c.Client.CallTimeout); err != nil {
		return nil, fmt.Errorf("config: client.call_timeout: %w", err)
	}
	if c.Client.CacheViewTTL != "" {
		if c.cacheViewTTL, err = time.ParseDuration(c.Client.CacheViewTTL); err != nil {
			return nil, fmt.Errorf("config: client.cache_view_ttl: %w", err)
		}
	}
	return &c, nil
}

// Session convierte el archivo a la Config pública del SDK.
func (c *Config) Session() gridlink.Config {
	return gridlink.Config{
		Addresses:    c.Engine.Addresses,
		Instance:     c.Engine.Instance,
		AuthSecret:   c.Auth.Secret,
		CallTimeout:  c.callTimeout,
		CacheViewTTL: c.cacheViewTTL,
	}
}

// applyEnvOverrides: pisa el YAML con variables de entorno.
func (c *Config) applyEnvOverrides() {
	if v, ok := getEnvCSV("GRIDLINK_ADDRESSES"); ok {
		c.Engine.Addresses = v
	}
	if v, ok := getEnvStr("GRIDLINK_INSTANCE"); ok {
		c.Engine.Instance = v
	}
	if v, ok := getEnvStr("GRIDLINK_AUTH_SECRET"); ok {
		c.Auth.Secret = v
	}
	if v, ok := getEnvStr("GRIDLINK_CALL_TIMEOUT"); ok {
		c.Client.CallTimeout = v
	}
	if v, ok := getEnvStr("GRIDLINK_CACHE_VIEW_TTL"); ok {
		c.Client.CacheViewTTL = v
	}
	if v, ok := getEnvStr("GRIDLINK_ENV"); ok {
		c.Log.Env = v
	}
	if v, ok := getEnvStr("GRIDLINK_LOG_LEVEL"); ok {
		c.Log.Level = v
	}
}

// ---- Helpers env ----

func getEnvStr(key string) (string, bool) {
	v := os.Getenv(key)
	return v, v != ""
}

func getEnvCSV(key string) ([]string, bool) {
	if s, ok := getEnvStr(key); ok {
		parts := strings.Split(s, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				out = append(out, p)
			}
		}
		if len(out) > 0 {
			return out, true
		}
	}
	return nil, false
}
