// Package config reads and writes grwc configuration snapshots.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/core/domain"
	"github.com/mgfarmer/git-repo-window-colors-sub000/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultFileName is the configuration file created when none exists.
	DefaultFileName = "grwc.yaml"
	// EnvConfigPath overrides discovery when set.
	EnvConfigPath = "GRWC_CONFIG"
)

// FileNames lists the names Discover looks for in each directory, in order.
var FileNames = []string{
	"grwc.yaml",
	"grwc.yml",
	"grwc.json",
	filepath.Join(".vscode", "grwc.yaml"),
}

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader for YAML and JSON files.
type Loader struct {
	Logger ports.Logger
	FS     FileSystem
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, FS: NewOSFS()}
}

// Discover walks up from cwd and returns the first configuration file found.
func (l *Loader) Discover(cwd string) (string, error) {
	currentDir := cwd
	for {
		for _, name := range FileNames {
			candidate := filepath.Join(currentDir, name)
			if info, err := l.FS.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}
	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

// Load reads the snapshot at path. Settings missing from the file take their
// defaults, knobs are clamped and palettes are migrated.
func (l *Loader) Load(path string) (*domain.Configuration, error) {
	cfg := &domain.Configuration{OtherSettings: domain.DefaultSettings()}
	if err := l.readAndUnmarshalYAML(path, cfg); err != nil {
		return nil, err
	}

	if clamped := cfg.OtherSettings.Clamp(); clamped != cfg.OtherSettings {
		l.Logger.Warn(fmt.Sprintf("settings in %s are out of range and were clamped", path))
	}
	for i, rule := range cfg.RepoRules {
		if rule.RepoQualifier == "" {
			l.Logger.Warn(fmt.Sprintf("repo rule %d has an empty qualifier and never matches", i))
		}
	}

	cfg.Normalize()
	return cfg, nil
}

func (l *Loader) readAndUnmarshalYAML(path string, target *domain.Configuration) error {
	data, err := l.FS.ReadFile(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	if formatFor(path) == FormatJSON {
		if data, err = jsonToYAML(data); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
		}
	}

	if parseErr := yaml.Unmarshal(data, target); parseErr != nil {
		return zerr.With(zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error()), "path", path)
	}
	return nil
}

// jsonToYAML re-encodes a JSON document as YAML so the custom unmarshalers apply.
// Tab-indented JSON is not valid YAML, so it is not fed to the YAML decoder directly.
func jsonToYAML(data []byte) ([]byte, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	var tree any
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, err
	}
	return yaml.Marshal(tree)
}

// Save writes cfg to path. Files ending in .json are written as JSON, everything else as YAML.
func (l *Loader) Save(path string, cfg *domain.Configuration) error {
	data, err := Encode(cfg, formatFor(path))
	if err != nil {
		return zerr.With(err, "path", path)
	}
	if err := l.FS.WriteFile(path, data); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigWriteFailed.Error()), "path", path)
	}
	return nil
}

// Format is an on-disk encoding.
type Format string

// Supported encodings.
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

func formatFor(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Encode renders cfg in the given format.
func Encode(cfg *domain.Configuration, format Format) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigWriteFailed.Error())
	}
	if err := enc.Close(); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigWriteFailed.Error())
	}
	if format != FormatJSON {
		return buf.Bytes(), nil
	}

	// JSON output goes through the YAML tree so the custom marshalers and field names apply.
	var tree any
	if err := yaml.Unmarshal(buf.Bytes(), &tree); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigWriteFailed.Error())
	}
	out, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigWriteFailed.Error())
	}
	return append(out, '\n'), nil
}
