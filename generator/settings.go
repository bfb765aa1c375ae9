package generator

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"reflect"

	"github.com/naoina/toml"
)

// Settings control how code is printed.
type Settings struct {
	// GenerateComments emits comments and JSDoc blocks.
	GenerateComments bool
	// IndentUnit is written once per indentation level.
	IndentUnit string
	// Newline terminates lines.
	Newline string
	// IndentAndAlign emits newlines and indentation. Without it the output
	// is compact but equivalent.
	IndentAndAlign bool
}

// DefaultSettings returns settings for readable output.
func DefaultSettings() *Settings {
	return &Settings{
		GenerateComments: true,
		IndentUnit:       "  ",
		Newline:          "\n",
		IndentAndAlign:   true,
	}
}

// MinifiedSettings returns settings for compact output without comments.
func MinifiedSettings() *Settings {
	return &Settings{
		IndentUnit: "",
		Newline:    "\n",
	}
}

// These settings make the TOML config file look the same as the Settings
// struct.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		return fmt.Errorf("field '%s' is not defined in %s", field, rt.String())
	},
}

// LoadSettings decodes TOML settings from r. Keys that are absent keep
// their default value.
func LoadSettings(r io.Reader) (*Settings, error) {
	s := DefaultSettings()
	if err := tomlSettings.NewDecoder(bufio.NewReader(r)).Decode(s); err != nil {
		return nil, err
	}
	slog.Debug("Loaded printer settings",
		"comments", s.GenerateComments, "indent", len(s.IndentUnit), "align", s.IndentAndAlign)
	return s, nil
}

// LoadSettingsFile reads settings from the TOML file at path.
func LoadSettingsFile(path string) (*Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := LoadSettings(f)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(path + ", " + err.Error())
	}
	return s, err
}
