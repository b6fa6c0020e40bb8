package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"shaderlex/internal/driver"
)

const manifestName = "shaderlex.toml"

const (
	defaultMaxDiagnostics = 100
	defaultFormat         = "pretty"
)

type projectManifest struct {
	Path   string
	Root   string
	Config projectConfig
	meta   toml.MetaData
}

type projectConfig struct {
	Tokenize tokenizeConfig `toml:"tokenize"`
	Cache    cacheConfig    `toml:"cache"`
}

type tokenizeConfig struct {
	Format         string   `toml:"format"`
	SkipTrivia     bool     `toml:"skip_trivia"`
	Extensions     []string `toml:"extensions"`
	Jobs           int      `toml:"jobs"`
	MaxDiagnostics int      `toml:"max_diagnostics"`
}

type cacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

// settings is the effective configuration of one command run: defaults,
// then shaderlex.toml, then explicitly set flags.
type settings struct {
	format         string
	skipTrivia     bool
	extensions     []string
	jobs           int
	maxDiagnostics int
	cacheEnabled   bool
	cacheDir       string
	manifest       string // path of the manifest applied, if any
}

func defaultSettings() settings {
	return settings{
		format:         defaultFormat,
		maxDiagnostics: defaultMaxDiagnostics,
	}
}

func findManifest(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, manifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadProjectManifest(path string) (*projectManifest, error) {
	var cfg projectConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if meta.IsDefined("tokenize", "format") {
		if _, err := readFormat(cfg.Tokenize.Format, tokenFormats); err != nil {
			return nil, fmt.Errorf("%s: [tokenize].format: %w", path, err)
		}
	}
	if cfg.Tokenize.Jobs < 0 {
		return nil, fmt.Errorf("%s: [tokenize].jobs must not be negative", path)
	}
	if cfg.Tokenize.MaxDiagnostics < 0 {
		return nil, fmt.Errorf("%s: [tokenize].max_diagnostics must not be negative", path)
	}
	return &projectManifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
		meta:   meta,
	}, nil
}

// apply copies every value defined in the manifest into s. A relative
// cache dir is resolved against the manifest's directory.
func (m *projectManifest) apply(s *settings) {
	t := m.Config.Tokenize
	if m.meta.IsDefined("tokenize", "format") {
		s.format = strings.ToLower(strings.TrimSpace(t.Format))
	}
	if m.meta.IsDefined("tokenize", "skip_trivia") {
		s.skipTrivia = t.SkipTrivia
	}
	if m.meta.IsDefined("tokenize", "extensions") {
		s.extensions = t.Extensions
	}
	if m.meta.IsDefined("tokenize", "jobs") {
		s.jobs = t.Jobs
	}
	if m.meta.IsDefined("tokenize", "max_diagnostics") {
		s.maxDiagnostics = t.MaxDiagnostics
	}
	if m.meta.IsDefined("cache", "enabled") {
		s.cacheEnabled = m.Config.Cache.Enabled
	}
	if m.meta.IsDefined("cache", "dir") && m.Config.Cache.Dir != "" {
		dir := m.Config.Cache.Dir
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(m.Root, dir)
		}
		s.cacheDir = dir
	}
	s.manifest = m.Path
}

// applyFlags overrides s with the flags the user set explicitly.
func (s *settings) applyFlags(cmd *cobra.Command) error {
	flags := cmd.Flags()
	var err error
	if flags.Changed("max-diagnostics") {
		if s.maxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
			return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
		}
	}
	if flags.Changed("format") {
		if s.format, err = flags.GetString("format"); err != nil {
			return fmt.Errorf("failed to get format flag: %w", err)
		}
		s.format = strings.ToLower(strings.TrimSpace(s.format))
	}
	if flags.Changed("skip-trivia") {
		if s.skipTrivia, err = flags.GetBool("skip-trivia"); err != nil {
			return fmt.Errorf("failed to get skip-trivia flag: %w", err)
		}
	}
	if flags.Changed("jobs") {
		if s.jobs, err = flags.GetInt("jobs"); err != nil {
			return fmt.Errorf("failed to get jobs flag: %w", err)
		}
	}
	if flags.Changed("cache") {
		if s.cacheEnabled, err = flags.GetBool("cache"); err != nil {
			return fmt.Errorf("failed to get cache flag: %w", err)
		}
	}
	if s.maxDiagnostics < 0 {
		return fmt.Errorf("--max-diagnostics must not be negative")
	}
	if s.jobs < 0 {
		return fmt.Errorf("--jobs must not be negative")
	}
	return nil
}

// resolveSettings builds the settings for target. --config names the
// manifest explicitly; otherwise it is searched for upwards from target.
func resolveSettings(cmd *cobra.Command, target string) (settings, error) {
	s := defaultSettings()

	manifestPath, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return s, fmt.Errorf("failed to get config flag: %w", err)
	}
	if manifestPath == "" {
		start := target
		if info, statErr := os.Stat(target); statErr == nil && !info.IsDir() {
			start = filepath.Dir(target)
		}
		var found bool
		manifestPath, found, err = findManifest(start)
		if err != nil {
			return s, err
		}
		if !found {
			manifestPath = ""
		}
	}
	if manifestPath != "" {
		manifest, err := loadProjectManifest(manifestPath)
		if err != nil {
			return s, err
		}
		manifest.apply(&s)
	}

	if err := s.applyFlags(cmd); err != nil {
		return s, err
	}
	return s, nil
}

// driverOptions turns s into driver options, opening the disk cache when
// it is enabled.
func (s settings) driverOptions() (driver.Options, error) {
	opts := driver.Options{
		MaxDiagnostics: s.maxDiagnostics,
		Jobs:           s.jobs,
		Extensions:     s.extensions,
		SkipTrivia:     s.skipTrivia,
	}
	if !s.cacheEnabled {
		return opts, nil
	}
	var (
		cache *driver.DiskCache
		err   error
	)
	if s.cacheDir != "" {
		cache, err = driver.NewDiskCache(s.cacheDir)
	} else {
		cache, err = driver.OpenDiskCache("shaderlex")
	}
	if err != nil {
		return opts, fmt.Errorf("failed to open token cache: %w", err)
	}
	opts.Cache = cache
	return opts, nil
}
