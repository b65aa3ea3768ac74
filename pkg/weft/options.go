package weft

import (
	stderrors "errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-weft/weft/pkg/reactive"
)

// Options tunes a Runtime. The zero value selects defaults.
type Options struct {
	// SweepDebounce is the trailing window after a removal before the
	// deferred binding sweep runs.
	SweepDebounce time.Duration
	// SweepThreshold forces an immediate sweep once this many removals
	// accumulate inside one debounce window.
	SweepThreshold int
	// Clock supplies time for sweep scheduling. Tests inject a fake.
	Clock reactive.Clock
}

// DefaultOptions returns the default tuning.
func DefaultOptions() Options {
	return Options{
		SweepDebounce:  reactive.DefaultSweepDebounce,
		SweepThreshold: reactive.DefaultSweepThreshold,
	}
}

func (o Options) withDefaults() Options {
	if o.SweepDebounce <= 0 {
		o.SweepDebounce = reactive.DefaultSweepDebounce
	}
	if o.SweepThreshold <= 0 {
		o.SweepThreshold = reactive.DefaultSweepThreshold
	}
	return o
}

func (o Options) reactive() reactive.Options {
	return reactive.Options{
		SweepDebounce:  o.SweepDebounce,
		SweepThreshold: o.SweepThreshold,
		Clock:          o.Clock,
	}
}

// fileOptions is the YAML shape of an options file. Durations are strings
// in time.ParseDuration syntax.
type fileOptions struct {
	SweepDebounce  string `yaml:"sweep_debounce,omitempty"`
	SweepThreshold int    `yaml:"sweep_threshold,omitempty"`
}

// LoadOptions reads an options file if present. A missing file yields the
// defaults.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()

	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return opts, nil
		}
		return opts, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var f fileOptions
	if err := yaml.Unmarshal(data, &f); err != nil {
		return opts, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if f.SweepDebounce != "" {
		d, err := time.ParseDuration(f.SweepDebounce)
		if err != nil {
			return opts, fmt.Errorf("invalid sweep_debounce %q: %w", f.SweepDebounce, err)
		}
		opts.SweepDebounce = d
	}
	if f.SweepThreshold > 0 {
		opts.SweepThreshold = f.SweepThreshold
	}
	return opts.withDefaults(), nil
}
