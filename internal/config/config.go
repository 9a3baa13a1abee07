package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/agentx-labs/mktarget/internal/branding"
	"github.com/agentx-labs/mktarget/internal/layout"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized keys.
const (
	KeyPause              = "pause"
	KeyStrictCategory     = "strict_category"
	KeyIndependentProject = "independent_project"
	KeyLogFile            = "log_file"
)

type keyKind int

const (
	kindString keyKind = iota
	kindBool
)

var keys = map[string]keyKind{
	KeyPause:              kindBool,
	KeyStrictCategory:     kindBool,
	KeyIndependentProject: kindString,
	KeyLogFile:            kindString,
}

// Keys returns the recognized configuration keys, sorted.
func Keys() []string {
	out := make([]string, 0, len(keys))
	for k := range keys {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Dir returns the config directory: $MKTARGET_HOME when set, else ~/.mktarget/.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("home")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() error {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyPause, true)
	viper.SetDefault(KeyStrictCategory, false)

	if err := viper.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(FilePath()); os.IsNotExist(statErr) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", FilePath(), err)
	}
	return nil
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Pause reports whether to wait for Enter before exiting.
func Pause() bool { return viper.GetBool(KeyPause) }

// StrictCategory reports whether an unrecognized category is an error.
func StrictCategory() bool { return viper.GetBool(KeyStrictCategory) }

// IndependentProject returns the configured independent template, or "".
func IndependentProject() string { return viper.GetString(KeyIndependentProject) }

// LogFile returns the path logs are appended to, or "" for console only.
func LogFile() string { return viper.GetString(KeyLogFile) }

// Set validates and writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	kind, ok := keys[key]
	if !ok {
		return fmt.Errorf("unknown config key %q (known: %v)", key, Keys())
	}

	var typed interface{} = value
	if kind == kindBool {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("config key %q expects true or false, got %q", key, value)
		}
		typed = b
	}
	if key == KeyIndependentProject {
		if err := layout.CheckDirName(value); err != nil {
			return err
		}
	}

	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, typed)

	configFile := FilePath()
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
