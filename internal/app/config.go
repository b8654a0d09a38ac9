package app

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"

	"nd-life/internal/core"
	"nd-life/pkg/sims/life"
)

// Config represents the parameters of a batch run.
type Config struct {
	Input       string `yaml:"input" ini:"input"`
	Sim         string `yaml:"sim" ini:"sim"`
	Rule        string `yaml:"rule" ini:"rule"`
	Generations int    `yaml:"generations" ini:"generations"`
	Dims        []int  `yaml:"dims" ini:"dims" delim:","`
	Parallel    bool   `yaml:"parallel" ini:"parallel"`
	Verbose     bool   `yaml:"verbose" ini:"verbose"`

	// Random replaces the input file with a Width x Height pattern drawn
	// from Seed.
	Random bool  `yaml:"random" ini:"random"`
	Seed   int64 `yaml:"seed" ini:"seed"`
	Width  int   `yaml:"width" ini:"width"`
	Height int   `yaml:"height" ini:"height"`

	ConfigFile string `yaml:"-" ini:"-"`
}

// NewConfig returns a Config populated with the default two-scenario run.
func NewConfig() *Config {
	return &Config{
		Input:       "input.txt",
		Sim:         "life",
		Rule:        life.Conway.String(),
		Generations: 6,
		Dims:        []int{3, 4},
		Parallel:    true,
		Seed:        42,
		Width:       8,
		Height:      8,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Input, "input", c.Input, "seed pattern file")
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "YAML or INI run configuration")
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.StringVar(&c.Rule, "rule", c.Rule, "birth/survival rule in B/S notation")
	fs.IntVar(&c.Generations, "generations", c.Generations, "generations to simulate")
	fs.Var((*dimsFlag)(&c.Dims), "dims", "comma separated dimensionalities, one scenario each")
	fs.BoolVar(&c.Parallel, "parallel", c.Parallel, "run scenarios concurrently")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log per-generation progress")
	fs.BoolVar(&c.Random, "random", c.Random, "use a random seed pattern instead of -input")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random pattern seed")
	fs.IntVar(&c.Width, "width", c.Width, "random pattern width")
	fs.IntVar(&c.Height, "height", c.Height, "random pattern height")
}

type dimsFlag []int

func (d *dimsFlag) String() string {
	if d == nil {
		return ""
	}
	parts := make([]string, len(*d))
	for i, n := range *d {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

func (d *dimsFlag) Set(s string) error {
	var out []int
	for _, field := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return fmt.Errorf("bad dimensionality %q", field)
		}
		out = append(out, n)
	}
	*d = out
	return nil
}

// ParseFlags binds a fresh Config to fs and parses args. When -config names a
// file, its values replace the defaults and any flag given explicitly on the
// command line still takes precedence.
func ParseFlags(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := NewConfig()
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.ConfigFile != "" {
		fromFile := NewConfig()
		if err := LoadFile(cfg.ConfigFile, fromFile); err != nil {
			return nil, err
		}
		replay := flag.NewFlagSet(fs.Name(), flag.ContinueOnError)
		fromFile.Bind(replay)
		var replayErr error
		fs.Visit(func(f *flag.Flag) {
			if err := replay.Set(f.Name, f.Value.String()); err != nil && replayErr == nil {
				replayErr = err
			}
		})
		if replayErr != nil {
			return nil, replayErr
		}
		cfg = fromFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile overlays the settings stored at path onto c. The format is chosen
// by extension: .yaml/.yml or .ini/.cfg with a [run] section.
func LoadFile(path string, c *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		body, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read config file '%s': %w", path, err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(body))
		dec.KnownFields(true)
		if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to parse config file '%s': %w", path, err)
		}
	case ".ini", ".cfg":
		file, err := ini.LoadSources(ini.LoadOptions{
			IgnoreInlineComment: true,
		}, path)
		if err != nil {
			return fmt.Errorf("failed to load config file '%s': %w", path, err)
		}
		if err := file.Section("run").MapTo(c); err != nil {
			return fmt.Errorf("failed to map [run] section: %w", err)
		}
	default:
		return fmt.Errorf("unsupported config file '%s': want .yaml, .yml, .ini or .cfg", path)
	}
	return nil
}

// Validate reports the first setting that cannot drive a run.
func (c *Config) Validate() error {
	if c.Generations < 0 {
		return fmt.Errorf("generations must be >= 0, got %d", c.Generations)
	}
	if len(c.Dims) == 0 {
		return errors.New("at least one dimensionality is required")
	}
	for _, n := range c.Dims {
		if n < 2 || n > core.MaxDims {
			return fmt.Errorf("dimensionality %d out of range [2, %d]", n, core.MaxDims)
		}
	}
	if c.Random && (c.Width <= 0 || c.Height <= 0) {
		return fmt.Errorf("random pattern size must be positive, got %dx%d", c.Width, c.Height)
	}
	if _, err := life.ParseRule(c.Rule); err != nil {
		return err
	}
	if _, ok := core.Sims()[c.Sim]; !ok {
		return fmt.Errorf("unknown sim %q (available: %s)", c.Sim, strings.Join(core.SimNames(), ", "))
	}
	return nil
}
