// Package iokeyfile reads identification keys from files. YAML and TOML
// documents hold lists of piles, species, characters, values and
// assignments. SQLite archives carry the same tables as the PostgreSQL
// schema.
package iokeyfile

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gnames/gnkey/pkg/dataset"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a key file.
type Format int

const (
	UnknownFormat Format = iota
	YAML
	TOML
	SQLite
)

// String returns the name of the format.
func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	case SQLite:
		return "sqlite"
	default:
		return "unknown"
	}
}

// FormatFromPath detects the format by file extension.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	case ".toml":
		return TOML
	case ".sqlite", ".sqlite3", ".db":
		return SQLite
	default:
		return UnknownFormat
	}
}

// Read reads a key file and returns a built dataset.
func Read(path string) (*dataset.Dataset, error) {
	format := FormatFromPath(path)

	var ds *dataset.Dataset
	var err error
	switch format {
	case YAML, TOML:
		var f *os.File
		f, err = os.Open(path)
		if err != nil {
			return nil, ReadFileError(path, err)
		}
		defer f.Close()
		ds, err = Decode(f, format)
	case SQLite:
		ds, err = readSQLite(path)
	default:
		return nil, FormatError(path)
	}
	if err != nil {
		return nil, err
	}

	if err = ds.Build(); err != nil {
		return nil, err
	}
	slog.Info("Read key file",
		"path", path,
		"format", format.String(),
		"piles", len(ds.Piles),
		"species", len(ds.Species),
	)
	return ds, nil
}

// Decode decodes a YAML or TOML document. The returned dataset is not
// built yet.
func Decode(r io.Reader, format Format) (*dataset.Dataset, error) {
	var ds dataset.Dataset
	switch format {
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&ds); err != nil && err != io.EOF {
			return nil, DecodeError(format, err)
		}
	case TOML:
		meta, err := toml.NewDecoder(r).Decode(&ds)
		if err != nil {
			return nil, DecodeError(format, err)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			slog.Warn("Ignoring unknown TOML keys", "keys", undecoded)
		}
	default:
		return nil, FormatError(format.String())
	}
	return &ds, nil
}
