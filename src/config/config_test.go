package config

import (
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/ironsmile/melodyhub/src/assert"
)

func noEnv(string) (string, bool) {
	return "", false
}

func mapEnv(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		val, ok := env[key]
		return val, ok
	}
}

// TestDefaultConfig makes sure that the defaults alone are a valid configuration.
func TestDefaultConfig(t *testing.T) {
	l := Loader{FS: afero.NewMemMapFs(), LookupEnv: noEnv}

	cfg, err := l.Load()
	assert.NilErr(t, err)
	assert.Equal(t, ":3000", cfg.Listen)
	assert.Equal(t, "catalog.json", cfg.CatalogPath)
	assert.Equal(t, "music", cfg.AudioRoot)
	assert.Equal(t, 8, cfg.EnrichConcurrency)
	assert.Equal(t, true, cfg.Gzip)
	assert.Equal(t, false, cfg.Deezer.Disabled)
	assert.Equal(t, "https://api.deezer.com", cfg.Deezer.APIURL)
}

// TestConfigFile checks that values in the JSON file override the defaults and
// that missing keys keep their default values.
func TestConfigFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	err := afero.WriteFile(fs, "/etc/melodyhub.json", []byte(`{
		"listen": "127.0.0.1:8080",
		"catalog_path": "/srv/catalog.json",
		"gzip": false,
		"deezer": {"disabled": true}
	}`), 0644)
	assert.NilErr(t, err)

	l := Loader{FS: fs, ConfigPath: "/etc/melodyhub.json", LookupEnv: noEnv}
	cfg, err := l.Load()
	assert.NilErr(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.Listen)
	assert.Equal(t, "/srv/catalog.json", cfg.CatalogPath)
	assert.Equal(t, false, cfg.Gzip)
	assert.Equal(t, true, cfg.Deezer.Disabled)
	assert.Equal(t, "https://api.deezer.com", cfg.Deezer.APIURL, "nested default lost")
	assert.Equal(t, "music", cfg.AudioRoot)
}

// TestConfigFileErrors checks missing, malformed and unknown configuration.
func TestConfigFileErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	assert.NilErr(t, afero.WriteFile(fs, "broken.json", []byte(`{"listen": `), 0644))
	assert.NilErr(t, afero.WriteFile(fs, "unknown.json", []byte(`{"lissten": ":80"}`), 0644))
	assert.NilErr(t, afero.WriteFile(fs, "invalid.json", []byte(`{"enrich_concurrency": -1}`), 0644))

	for _, path := range []string{"missing.json", "broken.json", "unknown.json", "invalid.json"} {
		l := Loader{FS: fs, ConfigPath: path, LookupEnv: noEnv}
		if _, err := l.Load(); err == nil {
			t.Errorf("expected an error for %s", path)
		}
	}
}

// TestEnvironmentOverrides checks that the dotenv file and the environment win
// over the configuration file and that the environment wins over the dotenv file.
func TestEnvironmentOverrides(t *testing.T) {
	fs := afero.NewMemMapFs()
	assert.NilErr(t, afero.WriteFile(fs, "config.json", []byte(`{
		"listen": ":9000",
		"catalog_path": "from-file.json",
		"audio_root": "from-file"
	}`), 0644))
	assert.NilErr(t, afero.WriteFile(fs, ".env", []byte(strings.Join([]string{
		"PORT=4000",
		"MELODYHUB_CATALOG=from-dotenv.json",
		"MELODYHUB_DEEZER_URL=http://localhost:9999/",
	}, "\n")), 0644))

	l := Loader{
		FS:         fs,
		ConfigPath: "config.json",
		LookupEnv: mapEnv(map[string]string{
			EnvCatalog:        "from-env.json",
			EnvDeezerDisabled: "true",
		}),
	}

	cfg, err := l.Load()
	assert.NilErr(t, err)
	assert.Equal(t, ":4000", cfg.Listen)
	assert.Equal(t, "from-env.json", cfg.CatalogPath)
	assert.Equal(t, "from-file", cfg.AudioRoot)
	assert.Equal(t, "http://localhost:9999", cfg.Deezer.APIURL)
	assert.Equal(t, true, cfg.Deezer.Disabled)
}

// TestEnvironmentEnablesDeezer makes sure that an explicit false in the environment
// overrides a true from the configuration file.
func TestEnvironmentEnablesDeezer(t *testing.T) {
	fs := afero.NewMemMapFs()
	assert.NilErr(t, afero.WriteFile(fs, "config.json", []byte(`{
		"deezer": {"disabled": true, "api_url": "https://deezer.example/"}
	}`), 0644))

	l := Loader{
		FS:         fs,
		ConfigPath: "config.json",
		LookupEnv:  mapEnv(map[string]string{EnvDeezerDisabled: "false"}),
	}

	cfg, err := l.Load()
	assert.NilErr(t, err)
	assert.Equal(t, false, cfg.Deezer.Disabled)
	assert.Equal(t, "https://deezer.example", cfg.Deezer.APIURL)

	l.LookupEnv = noEnv
	cfg, err = l.Load()
	assert.NilErr(t, err)
	assert.Equal(t, true, cfg.Deezer.Disabled, "file value lost without environment")
}

// TestEnvironmentErrors checks that unparsable environment values are reported.
func TestEnvironmentErrors(t *testing.T) {
	l := Loader{
		FS:        afero.NewMemMapFs(),
		LookupEnv: mapEnv(map[string]string{EnvDeezerDisabled: "perhaps"}),
	}

	_, err := l.Load()
	assert.NotNilErr(t, err)
	assert.Contains(t, err.Error(), EnvDeezerDisabled)
}

// TestMergingConfigs checks that only non-zero values are merged, including the
// ones in nested structs.
func TestMergingConfigs(t *testing.T) {
	cfg := Default()
	merged := &Config{}

	cfg.merge(merged)
	if *cfg != *Default() {
		t.Errorf("merging an empty config changed values: %#v", cfg)
	}

	merged.Listen = ":http"
	merged.Deezer.UserAgent = "tests"
	merged.MaxHeadersSize = 100
	cfg.merge(merged)

	assert.Equal(t, ":http", cfg.Listen)
	assert.Equal(t, "tests", cfg.Deezer.UserAgent)
	assert.Equal(t, "https://api.deezer.com", cfg.Deezer.APIURL)
	assert.Equal(t, 100, cfg.MaxHeadersSize)
	assert.Equal(t, true, cfg.Gzip)
}
