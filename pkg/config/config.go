// Package config loads the payout report configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap/zapcore"

	"storj.io/payout-report/pkg/employee"
)

type MissingFieldsError = toml.StrictMissingError

type Config struct {
	Aliases Aliases `toml:"aliases"`
	Log     Log     `toml:"log"`
}

type Aliases struct {
	// Rate lists the columns holding the hourly rate, highest priority
	// first.
	Rate []string `toml:"rate"`

	// Hours lists the columns holding the hours worked, highest priority
	// first.
	Hours []string `toml:"hours"`
}

type Log struct {
	Level zapcore.Level `toml:"level"`
}

// EmployeeAliases returns the aliases used to normalize records.
func (c Config) EmployeeAliases() employee.Aliases {
	return employee.Aliases{
		Rate:  c.Aliases.Rate,
		Hours: c.Aliases.Hours,
	}
}

// Default returns the configuration used when no file is given.
func Default() Config {
	aliases := employee.DefaultAliases()
	return Config{
		Aliases: Aliases{
			Rate:  aliases.Rate,
			Hours: aliases.Hours,
		},
		Log: Log{
			Level: zapcore.InfoLevel,
		},
	}
}

func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (Config, error) {
	config := Default()

	d := toml.NewDecoder(bytes.NewReader(data))
	d.DisallowUnknownFields()
	if err := d.Decode(&config); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.EmployeeAliases().Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid aliases: %w", err)
	}

	return config, nil
}

func DumpUnknownFields(err error) string {
	var sme *MissingFieldsError
	if errors.As(err, &sme) {
		return sme.String()
	}
	return ""
}
