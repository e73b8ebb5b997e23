// Package config is responsible for finding, parsing and merging the MelodyHub
// configuration. Values come from, in increasing order of precedence:
//
//   - the built-in defaults
//   - an optional JSON configuration file
//   - an optional .env file
//   - the process environment
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"

	"github.com/ironsmile/melodyhub/src/version"
)

// Names of the environment variables which are read.
const (
	EnvPort           = "PORT"
	EnvListen         = "MELODYHUB_LISTEN"
	EnvCatalog        = "MELODYHUB_CATALOG"
	EnvAudioRoot      = "MELODYHUB_AUDIO_ROOT"
	EnvDeezerURL      = "MELODYHUB_DEEZER_URL"
	EnvDeezerDisabled = "MELODYHUB_DEEZER_DISABLED"
	EnvLogFile        = "MELODYHUB_LOG_FILE"
)

// DefaultEnvFile is the dotenv file loaded when no other is given.
const DefaultEnvFile = ".env"

// Config is the configuration type. Should contain representation for everything
// in the JSON configuration file.
type Config struct {
	Listen            string `json:"listen"`
	CatalogPath       string `json:"catalog_path"`
	AudioRoot         string `json:"audio_root"`
	Deezer            Deezer `json:"deezer"`
	EnrichConcurrency int    `json:"enrich_concurrency"`
	Gzip              bool   `json:"gzip"`
	ReadTimeout       int    `json:"read_timeout"`
	WriteTimeout      int    `json:"write_timeout"`
	MaxHeadersSize    int    `json:"max_header_bytes"`
	LogFile           string `json:"log_file"`
	PidFile           string `json:"pid_file"`
}

// Deezer configures the remote search used for previews and album covers.
type Deezer struct {
	Disabled  bool   `json:"disabled"`
	APIURL    string `json:"api_url"`
	UserAgent string `json:"user_agent"`
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		Listen:            ":3000",
		CatalogPath:       "catalog.json",
		AudioRoot:         "music",
		EnrichConcurrency: 8,
		Gzip:              true,
		ReadTimeout:       15,
		WriteTimeout:      0,
		MaxHeadersSize:    1 << 20,
		Deezer: Deezer{
			APIURL:    "https://api.deezer.com",
			UserAgent: version.UserAgent(),
		},
	}
}

// Loader knows where to look for configuration.
type Loader struct {
	// FS is the file system in which ConfigPath and EnvFile are searched.
	FS afero.Fs

	// ConfigPath is the JSON configuration file. Empty means no file.
	ConfigPath string

	// EnvFile is the dotenv file. It is fine for it to be missing.
	EnvFile string

	// LookupEnv reads the process environment. It is os.LookupEnv when nil.
	LookupEnv func(string) (string, bool)
}

// Load builds the configuration from all of its sources and validates it.
func (l Loader) Load() (*Config, error) {
	cfg := Default()

	if l.ConfigPath != "" {
		if err := cfg.parse(l.FS, l.ConfigPath); err != nil {
			return nil, err
		}
	}

	dotEnv, err := l.readEnvFile()
	if err != nil {
		return nil, err
	}

	lookup := l.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}

	env, err := fromEnv(func(key string) string {
		if val, ok := lookup(key); ok {
			return val
		}
		return dotEnv[key]
	})
	if err != nil {
		return nil, err
	}

	cfg.merge(env.Config)

	// A false from the environment is a zero value and would be skipped by merge.
	if env.deezerDisabled != nil {
		cfg.Deezer.Disabled = *env.deezerDisabled
	}

	cfg.Deezer.APIURL = strings.TrimRight(cfg.Deezer.APIURL, "/")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// parse reads a JSON file on top of the current values. Keys missing from the file
// keep their current values.
func (cfg *Config) parse(fs afero.Fs, filename string) error {
	contents, err := afero.ReadFile(fs, filename)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(contents))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("parsing config %s: %w", filename, err)
	}

	return nil
}

func (l Loader) readEnvFile() (map[string]string, error) {
	envFile := l.EnvFile
	if envFile == "" {
		envFile = DefaultEnvFile
	}

	fh, err := l.FS.Open(envFile)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("opening env file: %w", err)
	}
	defer fh.Close()

	values, err := godotenv.Parse(fh)
	if err != nil {
		return nil, fmt.Errorf("parsing env file %s: %w", envFile, err)
	}

	return values, nil
}

// envConfig is the configuration found in the environment. Booleans are kept as
// pointers so that an explicitly set false is distinguishable from a missing value.
type envConfig struct {
	*Config

	deezerDisabled *bool
}

// fromEnv returns the values set in the environment. Everything else is zero.
func fromEnv(getenv func(string) string) (*envConfig, error) {
	cfg := &Config{}
	env := &envConfig{Config: cfg}

	if port := strings.TrimSpace(getenv(EnvPort)); port != "" {
		cfg.Listen = ":" + port
	}
	if listen := strings.TrimSpace(getenv(EnvListen)); listen != "" {
		cfg.Listen = listen
	}

	cfg.CatalogPath = strings.TrimSpace(getenv(EnvCatalog))
	cfg.AudioRoot = strings.TrimSpace(getenv(EnvAudioRoot))
	cfg.LogFile = strings.TrimSpace(getenv(EnvLogFile))
	cfg.Deezer.APIURL = strings.TrimSpace(getenv(EnvDeezerURL))

	if disabled := strings.TrimSpace(getenv(EnvDeezerDisabled)); disabled != "" {
		val, err := strconv.ParseBool(disabled)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvDeezerDisabled, err)
		}
		env.deezerDisabled = &val
	}

	return env, nil
}

// merge merges another config on top of itself. Only non-zero values will be
// merged. Struct fields are merged field by field.
func (cfg *Config) merge(merged *Config) {
	mergeValues(reflect.ValueOf(cfg).Elem(), reflect.ValueOf(merged).Elem())
}

func mergeValues(cfgVal, mergedVal reflect.Value) {
	for i := 0; i < mergedVal.NumField(); i++ {
		mergedField := mergedVal.Field(i)
		cfgField := cfgVal.Field(i)

		if !cfgField.CanSet() {
			continue
		}

		if mergedField.Kind() == reflect.Struct {
			mergeValues(cfgField, mergedField)
			continue
		}

		if mergedField.IsZero() {
			continue
		}

		cfgField.Set(mergedField)
	}
}

// Validate returns an error when the configuration could not possibly work.
func (cfg *Config) Validate() error {
	if cfg.Listen == "" {
		return errors.New("listen address must not be empty")
	}

	if cfg.CatalogPath == "" {
		return errors.New("catalog_path must not be empty")
	}

	if cfg.EnrichConcurrency < 1 {
		return fmt.Errorf(
			"enrich_concurrency must be a positive integer, it was %d",
			cfg.EnrichConcurrency,
		)
	}

	if cfg.ReadTimeout < 0 || cfg.WriteTimeout < 0 || cfg.MaxHeadersSize < 0 {
		return errors.New("timeouts and max_header_bytes must not be negative")
	}

	return nil
}
