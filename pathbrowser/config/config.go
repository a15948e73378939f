// Package config loads the settings file from the user config directory.
package config

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/diamondburned/gtkpathbar/pathbar"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Name is the directory name under the user config directory.
const Name = "gtkpathbar"

// File is the settings file name inside the config directory.
const File = "settings.yml"

type Settings struct {
	// RevealerDuration is how long breadcrumbs take to slide in or out, in ms.
	RevealerDuration uint `yaml:"revealer_duration"`

	// InvertSpeed is how fast breadcrumbs scroll when the bar is inverted, in
	// px/ms.
	InvertSpeed float64 `yaml:"invert_speed"`

	// InvertMaxTime caps the inversion scroll, in ms.
	InvertMaxTime float64 `yaml:"invert_max_time"`

	Debug     bool   `yaml:"debug"`
	StartPath string `yaml:"start_path,omitempty"`
	CustomCSS string `yaml:"custom_css,omitempty"`
}

// Default returns the stock settings.
func Default() *Settings {
	opts := pathbar.DefaultOptions()

	return &Settings{
		RevealerDuration: opts.RevealerDuration,
		InvertSpeed:      opts.InvertSpeed,
		InvertMaxTime:    opts.InvertMaxTime,
	}
}

// Options returns the path bar animation options.
func (s *Settings) Options() pathbar.Options {
	return pathbar.Options{
		RevealerDuration: s.RevealerDuration,
		InvertSpeed:      s.InvertSpeed,
		InvertMaxTime:    s.InvertMaxTime,
	}
}

// Dir returns the config directory, creating it if needed.
func Dir() (string, error) {
	d, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "Failed to get config dir")
	}

	path := filepath.Join(d, Name)

	if err := os.Mkdir(path, 0755|os.ModeDir); err != nil && !os.IsExist(err) {
		return "", errors.Wrap(err, "Failed to make config dir")
	}

	return path, nil
}

// Load reads the settings file from the config directory. If there is none,
// the defaults are written to it.
func Load() (*Settings, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}

	return LoadFile(filepath.Join(dir, File))
}

// LoadFile reads the settings at path. Missing keys keep their defaults. If
// the file does not exist, it is created with the defaults.
func LoadFile(path string) (*Settings, error) {
	s := Default()

	b, err := ioutil.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, errors.Wrap(err, "Failed to read settings")
		}

		if err := s.Save(path); err != nil {
			return nil, err
		}

		return s, nil
	}

	if err := yaml.Unmarshal(b, s); err != nil {
		return nil, errors.Wrapf(err, "Failed to parse %s", path)
	}

	return s, nil
}

// Save writes the settings to path.
func (s *Settings) Save(path string) error {
	b, err := yaml.Marshal(s)
	if err != nil {
		return errors.Wrap(err, "Failed to encode settings")
	}

	if err := ioutil.WriteFile(path, b, 0644); err != nil {
		return errors.Wrap(err, "Failed to write settings")
	}

	return nil
}
