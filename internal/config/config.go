package config

import (
	"time"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"

	"ifacegen/internal/metadata"
	"ifacegen/internal/template"
)

// Looked up in the working directory when no --config is given.
const DefaultPath = "ifacegen.toml"

type Config struct {
	Input      string `toml:"input"`
	Template   string `toml:"template"`
	Output     string `toml:"output"`
	Marker     string `toml:"marker"`
	LineEnding string `toml:"line_ending"`
	Indent     string `toml:"indent"`
	Strict     bool   `toml:"strict"`

	MessagesOutput  string `toml:"messages_output"`
	MessagesPackage string `toml:"messages_package"`

	HTTPTimeout time.Duration `toml:"http_timeout"`

	// Extra entries for the type table, on top of the built-in ones.
	Aliases map[string]string `toml:"aliases"`
	Basic   []string          `toml:"basic"`
}

// Default returns the paths of the Scintilla checkout layout.
func Default() *Config {
	return &Config{
		Input:           "scintilla/include/Scintilla.iface",
		Template:        "ScintillaImpl.template.hpp",
		Output:          "ScintillaImpl.hpp",
		Marker:          template.DefaultMarker,
		LineEnding:      metadata.CRLF,
		Indent:          "\t",
		MessagesPackage: "scintilla",
		HTTPTimeout:     30 * time.Second,
	}
}

// Load reads a TOML file; keys it leaves out keep their default.
func Load(fs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config %s", path)
	}

	cfg := Default()
	meta, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse config %s", path)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, errors.WithHint(
			errors.Newf("unknown key %s in config %s", undecoded[0], path),
			"check the spelling against the documented keys")
	}

	// an explicit empty indent is allowed, an empty line ending or marker is not
	if cfg.LineEnding == "" {
		cfg.LineEnding = metadata.CRLF
	}
	if cfg.Marker == "" {
		cfg.Marker = template.DefaultMarker
	}
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}

	return cfg, nil
}

// LoadOrDefault loads path when it exists and falls back to Default otherwise.
func LoadOrDefault(fs afero.Fs, path string) (*Config, error) {
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to stat config %s", path)
	}
	if !exists {
		return Default(), nil
	}

	return Load(fs, path)
}
