// Package config loads TaskMonitor's INI-style configuration file and
// exposes it through a narrow Store interface. Recognized sections are
// monitor, netserver, udsserver, pressure, and blacklist.
//
// Loading and parsing the underlying file is an external concern by design —
// callers depend only on Store, never on the ini.v1 types directly, so a
// different backing format could be substituted without touching the rest
// of the tree.
package config

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
)

// Store is the key/section/value lookup service every other package depends
// on. Malformed values fall back to the supplied default; the fallback is
// always logged as a warning, never returned silently.
type Store interface {
	GetString(section, key, def string) string
	GetInt64(section, key string, def int64) int64
	GetBool(section, key string, def bool) bool
	// Keys returns every key name defined in section, in file order. Used by
	// the blacklist loader, whose keys are the substrings themselves.
	Keys(section string) []string
}

// File is a Store backed by an on-disk INI file.
type File struct {
	raw    *ini.File
	logger *slog.Logger
}

// Load reads and parses path. A missing or unreadable file is an error the
// caller must handle (cmd/taskmonitor exits non-zero on it, per the CLI
// contract); a malformed individual value is not — it falls back to the
// default per call and is logged through logger.
func Load(path string, logger *slog.Logger) (*File, error) {
	raw, err := ini.LoadSources(ini.LoadOptions{AllowNonUniqueSections: false}, path)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &File{raw: raw, logger: logger}, nil
}

func (f *File) section(name string) *ini.Section {
	if !f.raw.HasSection(name) {
		return nil
	}
	s, _ := f.raw.GetSection(name)
	return s
}

func (f *File) GetString(section, key, def string) string {
	s := f.section(section)
	if s == nil || !s.HasKey(key) {
		return def
	}
	return s.Key(key).String()
}

func (f *File) GetInt64(section, key string, def int64) int64 {
	s := f.section(section)
	if s == nil || !s.HasKey(key) {
		return def
	}
	raw := s.Key(key).String()
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		f.logger.Warn("config: malformed integer, using default",
			slog.String("section", section), slog.String("key", key),
			slog.String("value", raw), slog.Int64("default", def))
		return def
	}
	return v
}

func (f *File) GetBool(section, key string, def bool) bool {
	s := f.section(section)
	if s == nil || !s.HasKey(key) {
		return def
	}
	v, err := s.Key(key).Bool()
	if err != nil {
		f.logger.Warn("config: malformed boolean, using default",
			slog.String("section", section), slog.String("key", key),
			slog.String("value", s.Key(key).String()), slog.Bool("default", def))
		return def
	}
	return v
}

func (f *File) Keys(section string) []string {
	s := f.section(section)
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.Keys()))
	for _, k := range s.Keys() {
		names = append(names, k.Name())
	}
	return names
}

// Static is an in-memory Store, used by tests that need a Store without a
// file on disk.
type Static struct {
	Sections map[string]map[string]string
	Logger   *slog.Logger
}

func (s *Static) log() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

func (s *Static) GetString(section, key, def string) string {
	if sec, ok := s.Sections[section]; ok {
		if v, ok := sec[key]; ok {
			return v
		}
	}
	return def
}

func (s *Static) GetInt64(section, key string, def int64) int64 {
	if sec, ok := s.Sections[section]; ok {
		if v, ok := sec[key]; ok {
			n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
			if err != nil {
				s.log().Warn("config: malformed integer, using default",
					slog.String("section", section), slog.String("key", key))
				return def
			}
			return n
		}
	}
	return def
}

func (s *Static) GetBool(section, key string, def bool) bool {
	if sec, ok := s.Sections[section]; ok {
		if v, ok := sec[key]; ok {
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				s.log().Warn("config: malformed boolean, using default",
					slog.String("section", section), slog.String("key", key))
				return def
			}
			return b
		}
	}
	return def
}

// Keys returns the section's key names. Sections are maps, so the order of
// the returned names is not defined.
func (s *Static) Keys(section string) []string {
	sec, ok := s.Sections[section]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(sec))
	for k := range sec {
		names = append(names, k)
	}
	return names
}
