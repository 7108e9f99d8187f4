// SPDX-License-Identifier: MIT

package dispatch

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/qmc/qmc"
	"github.com/katalvlaran/qmc/registry"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes the environment variables read by LoadConfig.
const EnvPrefix = "QMC_"

// Config is the runtime configuration record. Zero in any field keeps the
// integrator's built-in default. Ids decode from YAML as integers or names.
type Config struct {
	EpsRel              float64       `yaml:"epsrel" validate:"gte=0"`
	EpsAbs              float64       `yaml:"epsabs" validate:"gte=0"`
	MaxEval             uint64        `yaml:"maxeval"`
	ErrorMode           qmc.ErrorMode `yaml:"errormode" validate:"oneof=0 1 2"`
	EvaluateMinN        uint64        `yaml:"evaluateminn"`
	MinN                uint64        `yaml:"minn"`
	MinM                uint64        `yaml:"minm" validate:"omitempty,min=2"`
	MaxNPerPackage      uint64        `yaml:"maxnperpackage"`
	MaxMPerPackage      uint64        `yaml:"maxmperpackage"`
	CPUThreads          int           `yaml:"cputhreads" validate:"gte=0"`
	CUDABlocks          uint64        `yaml:"cudablocks"`
	CUDAThreadsPerBlock uint64        `yaml:"cudathreadsperblock"`
	Verbosity           int           `yaml:"verbosity" validate:"gte=0"`
	Seed                uint64        `yaml:"seed"`

	Transform         registry.TransformID         `yaml:"transform"`
	FitFunction       registry.FitFunctionID       `yaml:"fitfunction"`
	GeneratingVectors registry.GeneratingVectorsID `yaml:"generatingvectors" validate:"oneof=0 1 2 3 4"`
	Target            registry.TargetKind          `yaml:"target" validate:"oneof=0 1 2 3"`
	Devices           []int                        `yaml:"devices" validate:"dive,gte=-1"`
}

var validate = validator.New()

// Validate checks field ranges. Ids are checked by Dispatch against the
// family, not here.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// LoadConfig loads a Config with priority: env > file > zero values.
//
// Inputs:
//   - path: YAML file; empty means no file.
//
// Errors: a missing or malformed file, an unknown YAML key, an unparsable
// QMC_* variable, or a failed Validate (ErrInvalidConfig).
func LoadConfig(path string) (Config, error) {
	var cfg Config

	if path != "" {
		if err := loadConfigFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("dispatch: load config file: %w", err)
		}
	}

	if err := loadConfigFromEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("dispatch: load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	return nil
}

// envField binds one variable to the setter that parses it.
type envField struct {
	name string
	set  func(v string) error
}

func envFields(cfg *Config) []envField {
	float := func(dst *float64) func(string) error {
		return func(v string) error {
			f, err := strconv.ParseFloat(v, 64)
			*dst = f
			return err
		}
	}
	unsigned := func(dst *uint64) func(string) error {
		return func(v string) error {
			n, err := strconv.ParseUint(v, 10, 64)
			*dst = n
			return err
		}
	}
	integer := func(dst *int) func(string) error {
		return func(v string) error {
			n, err := strconv.Atoi(v)
			*dst = n
			return err
		}
	}

	return []envField{
		{"EPSREL", float(&cfg.EpsRel)},
		{"EPSABS", float(&cfg.EpsAbs)},
		{"MAXEVAL", unsigned(&cfg.MaxEval)},
		{"ERRORMODE", func(v string) error { return cfg.ErrorMode.UnmarshalText([]byte(v)) }},
		{"EVALUATEMINN", unsigned(&cfg.EvaluateMinN)},
		{"MINN", unsigned(&cfg.MinN)},
		{"MINM", unsigned(&cfg.MinM)},
		{"MAXNPERPACKAGE", unsigned(&cfg.MaxNPerPackage)},
		{"MAXMPERPACKAGE", unsigned(&cfg.MaxMPerPackage)},
		{"CPUTHREADS", integer(&cfg.CPUThreads)},
		{"CUDABLOCKS", unsigned(&cfg.CUDABlocks)},
		{"CUDATHREADSPERBLOCK", unsigned(&cfg.CUDAThreadsPerBlock)},
		{"VERBOSITY", integer(&cfg.Verbosity)},
		{"SEED", unsigned(&cfg.Seed)},
		{"TRANSFORM", func(v string) error { return cfg.Transform.UnmarshalText([]byte(v)) }},
		{"FITFUNCTION", func(v string) error { return cfg.FitFunction.UnmarshalText([]byte(v)) }},
		{"GENERATINGVECTORS", func(v string) error { return cfg.GeneratingVectors.UnmarshalText([]byte(v)) }},
		{"TARGET", func(v string) error { return cfg.Target.UnmarshalText([]byte(v)) }},
		{"DEVICES", func(v string) error {
			devices, err := ParseDevices(v)
			cfg.Devices = devices
			return err
		}},
	}
}

func loadConfigFromEnv(cfg *Config) error {
	for _, f := range envFields(cfg) {
		v := strings.TrimSpace(os.Getenv(EnvPrefix + f.name))
		if v == "" {
			continue
		}
		if err := f.set(v); err != nil {
			return fmt.Errorf("%s%s=%q: %w", EnvPrefix, f.name, v, err)
		}
	}

	return nil
}

// ParseDevices parses a comma-separated device id list such as "0,1,3".
func ParseDevices(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("device id %q: %w", part, err)
		}
		out = append(out, id)
	}

	return out, nil
}
