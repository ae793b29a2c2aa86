// 12 Oct 2026

// Package config holds the settings for running a pipeline under test.
// They come from defaults, then an optional yaml file, then environment
// variables starting with ALNCHECK_, then command line flags bound by
// the caller.
package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/andrew-torda/alncheck/pkg/harness"
)

// EnvPrefix is put in front of every environment variable, so
// pipeline.exe is read from ALNCHECK_PIPELINE_EXE.
const EnvPrefix = "ALNCHECK"

// PipelineConfig says how to start the program being tested.
type PipelineConfig struct {
	// the executable
	Exe string `mapstructure:"exe"`
	// arguments put before those of each run
	Args []string `mapstructure:"args"`
	// kill the program after this long, 0 for never
	Timeout time.Duration `mapstructure:"timeout"`
	// working directory
	Dir string `mapstructure:"dir"`
}

// TempConfig is for the fixture's temporary directory.
type TempConfig struct {
	Parent string `mapstructure:"parent"`
	Prefix string `mapstructure:"prefix"`
	Keep   bool   `mapstructure:"keep"`
}

// Config is the root-level settings struct.
type Config struct {
	Pipeline PipelineConfig `mapstructure:"pipeline"`
	Temp     TempConfig     `mapstructure:"temp"`
	Verbose  bool           `mapstructure:"verbose"`
}

// SetDefaults fills in every key. Viper only looks in the environment
// for keys it already knows about.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("pipeline.exe", "")
	v.SetDefault("pipeline.args", []string{})
	v.SetDefault("pipeline.timeout", "0s")
	v.SetDefault("pipeline.dir", "")
	v.SetDefault("temp.parent", "")
	v.SetDefault("temp.prefix", "alncheck")
	v.SetDefault("temp.keep", false)
	v.SetDefault("verbose", false)
}

// Setup gets v ready to read the environment and, if fname is not
// empty, a config file.
func Setup(v *viper.Viper, fname string) error {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	if fname == "" {
		return nil
	}
	v.SetConfigFile(fname)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config %s: %w", fname, err)
	}
	return nil
}

// New reads the settings out of v. Call Setup first.
func New(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("unable to decode config: %w", err)
	}
	if c.Temp.Prefix == "" {
		c.Temp.Prefix = "alncheck"
	}
	return c, nil
}

// Runner makes a runner for the configured pipeline.
func (c Config) Runner(lg *log.Logger) *harness.Runner {
	return &harness.Runner{
		Exe:     c.Pipeline.Exe,
		Prefix:  c.Pipeline.Args,
		Dir:     c.Pipeline.Dir,
		Timeout: c.Pipeline.Timeout,
		Log:     lg,
		Verbose: c.Verbose,
	}
}

// Fixture makes the temporary directory for a run.
func (c Config) Fixture() (*harness.Fixture, error) {
	f, err := harness.NewFixture(c.Temp.Parent, c.Temp.Prefix)
	if err != nil {
		return nil, err
	}
	f.Keep = c.Temp.Keep
	return f, nil
}
