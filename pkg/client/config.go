/*
Copyright the Teatimer contributors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package client

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	ConfigKeyLogLevel        = "log-level"
	ConfigKeyLogFormat       = "log-format"
	ConfigKeyMetricsTextfile = "metrics-textfile"

	envPrefix = "TEATIMER"
)

var configKeys = []string{
	ConfigKeyLogLevel,
	ConfigKeyLogFormat,
	ConfigKeyMetricsTextfile,
}

// Config is the teatimer client configuration, keyed by ConfigKey* names.
type Config map[string]interface{}

// LoadConfig loads $HOME/.config/teatimer/config.yaml, overlaid with
// TEATIMER_* environment variables. A missing file is not an error.
func LoadConfig() (Config, error) {
	return LoadConfigFrom(ConfigFileName())
}

// LoadConfigFrom is LoadConfig reading fileName instead of the default file.
func LoadConfigFrom(fileName string) (Config, error) {
	return load(fileName, true)
}

// ReadConfigFile reads only fileName, ignoring the environment.
func ReadConfigFile(fileName string) (Config, error) {
	return load(fileName, false)
}

func load(fileName string, withEnv bool) (Config, error) {
	v := viper.New()
	v.SetConfigFile(fileName)
	v.SetConfigType("yaml")
	if withEnv {
		v.SetEnvPrefix(envPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
		for _, key := range configKeys {
			if err := v.BindEnv(key); err != nil {
				return nil, errors.WithStack(err)
			}
		}
	}

	_, err := os.Stat(fileName)
	switch {
	case err == nil:
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "error reading config file %s", fileName)
		}
	case !os.IsNotExist(err):
		return nil, errors.WithStack(err)
	}

	config := Config{}
	for _, key := range v.AllKeys() {
		if v.IsSet(key) {
			config[key] = v.Get(key)
		}
	}
	return config, nil
}

// SaveConfig writes config to $HOME/.config/teatimer/config.yaml.
func SaveConfig(config Config) error {
	return SaveConfigTo(ConfigFileName(), config)
}

// SaveConfigTo writes config to fileName, creating its directory.
func SaveConfigTo(fileName string, config Config) error {
	if err := os.MkdirAll(filepath.Dir(fileName), 0755); err != nil {
		return errors.WithStack(err)
	}

	v := viper.New()
	for key, value := range config {
		v.Set(key, value)
	}
	return errors.Wrapf(v.WriteConfigAs(fileName), "error writing config file %s", fileName)
}

// IsConfigKey reports whether key is a known configuration key.
func IsConfigKey(key string) bool {
	for _, k := range configKeys {
		if k == key {
			return true
		}
	}
	return false
}

// Keys returns the known configuration keys.
func Keys() []string {
	return append([]string(nil), configKeys...)
}

func (c Config) getString(key string) string {
	s, _ := c[key].(string)
	return s
}

// LogLevel returns the configured log level, or "" if unset.
func (c Config) LogLevel() string {
	return c.getString(ConfigKeyLogLevel)
}

// LogFormat returns the configured log format, or "" if unset.
func (c Config) LogFormat() string {
	return c.getString(ConfigKeyLogFormat)
}

// MetricsTextfile returns the configured metrics textfile path, or "" if unset.
func (c Config) MetricsTextfile() string {
	return c.getString(ConfigKeyMetricsTextfile)
}

// ConfigFileName is the default config file location.
func ConfigFileName() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "teatimer", "config.yaml")
}
