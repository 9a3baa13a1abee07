// Package config manages user-level settings stored at ~/.mktarget/config.yaml.
// Settings can also be supplied through MKTARGET_* environment variables,
// which take precedence over the file.
package config
