// Package config provides the configuration loader for lockscan.
package config

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"

	"go.trai.ch/lockscan/internal/core/domain"
	"go.trai.ch/lockscan/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	fs     FileSystem
}

// NewLoader creates a new Loader reading from the OS filesystem.
func NewLoader(logger ports.Logger) *Loader {
	return NewLoaderWithFS(logger, NewOSFS())
}

// NewLoaderWithFS creates a new Loader reading from fsys.
func NewLoaderWithFS(logger ports.Logger, fsys FileSystem) *Loader {
	return &Loader{Logger: logger, fs: fsys}
}

// Load walks up from cwd to the filesystem root and loads the first configuration file
// it finds. Without one, the default configuration is returned.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	path, found := l.findConfiguration(cwd)
	if !found {
		return domain.DefaultConfig(), nil
	}
	return l.LoadFile(path)
}

func (l *Loader) findConfiguration(cwd string) (string, bool) {
	currentDir := cwd

	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := l.fs.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false
		}
		currentDir = parentDir
	}
}

// LoadFile reads the configuration file at path. Relative list paths are resolved
// against the directory holding the file.
func (l *Loader) LoadFile(path string) (*domain.Config, error) {
	var file Configfile
	if err := l.readAndUnmarshalYAML(path, &file); err != nil {
		return nil, err
	}

	cfg := domain.DefaultConfig()
	cfg.Path = path
	cfg.Embedded = file.Embedded
	cfg.Strict = file.Strict

	if file.Lockfile != "" {
		if err := validateLockfileName(file.Lockfile); err != nil {
			return nil, domain.Tag(err, "config", path)
		}
		cfg.Lockfile = file.Lockfile
	}

	format, err := domain.ParseFormat(file.Format)
	if err != nil {
		return nil, domain.Tag(err, "config", path)
	}
	cfg.Format = format

	dir := filepath.Dir(path)
	for _, list := range file.Lists {
		if !filepath.IsAbs(list) {
			list = filepath.Join(dir, list)
		}
		cfg.Lists = append(cfg.Lists, list)
	}

	if !cfg.UseEmbedded() && len(cfg.Lists) == 0 {
		l.Logger.Warn(domain.ConfigFileName + " disables the built-in list without adding lists; nothing will be flagged")
	}

	return cfg, nil
}

func (l *Loader) readAndUnmarshalYAML(path string, dest *Configfile) error {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		return zerr.With(domain.Tag(domain.ErrConfigReadFailed, "config", path), "cause", err.Error())
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(dest); err != nil && !errors.Is(err, io.EOF) {
		return zerr.With(domain.Tag(domain.ErrConfigParseFailed, "config", path), "cause", err.Error())
	}

	return nil
}

func validateLockfileName(name string) error {
	if name == "." || name == ".." || filepath.Base(name) != name {
		return domain.Tag(domain.ErrInvalidLockfileName, "lockfile", name)
	}
	return nil
}
