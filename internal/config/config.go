// Package config describes the quiz variant: how categories are shown,
// how questions advance and which string table is used.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// AdvancePolicy selects how the quiz moves past a revealed answer.
type AdvancePolicy string

const (
	// AdvanceContinue waits for an explicit key press after the reveal.
	AdvanceContinue AdvancePolicy = "continue"
	// AdvanceAuto moves on after a fixed delay.
	AdvanceAuto AdvancePolicy = "auto"
)

// Hierarchy selects how categories are presented.
type Hierarchy string

const (
	// HierarchyFlat lists only the selectable categories.
	HierarchyFlat Hierarchy = "flat"
	// HierarchyNested groups selectable categories under their parents.
	HierarchyNested Hierarchy = "nested"
)

// Config holds the quiz variant configuration.
type Config struct {
	Advance AdvancePolicy

	// AdvanceDelay is how long a revealed answer stays up under
	// AdvanceAuto. Default: 1.5s.
	AdvanceDelay time.Duration

	Hierarchy Hierarchy

	// Lang is a BCP 47 tag or POSIX locale name. Empty means English.
	Lang string

	// BankPath is an optional question bank file. Empty uses the
	// embedded bank.
	BankPath string

	// Debug enables the debug log file.
	Debug bool
}

// DefaultAdvanceDelay is the reveal duration in auto-advance mode.
const DefaultAdvanceDelay = 1500 * time.Millisecond

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Advance:      AdvanceContinue,
		AdvanceDelay: DefaultAdvanceDelay,
		Hierarchy:    HierarchyNested,
	}
}

// Keys under which the configuration is bound in viper. Each key is also
// read from MATHQUIZ_<KEY>.
const (
	KeyAdvance      = "advance"
	KeyAdvanceDelay = "advance_delay"
	KeyHierarchy    = "hierarchy"
	KeyLang         = "lang"
	KeyBank         = "bank"
	KeyDebug        = "debug"
)

// EnvPrefix is prepended to every key when reading the environment.
const EnvPrefix = "MATHQUIZ"

// NewViper returns a viper instance with the defaults registered and the
// environment bound. Callers layer flags on top with BindPFlag.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	d := DefaultConfig()
	v.SetDefault(KeyAdvance, string(d.Advance))
	v.SetDefault(KeyAdvanceDelay, d.AdvanceDelay.String())
	v.SetDefault(KeyHierarchy, string(d.Hierarchy))
	v.SetDefault(KeyDebug, false)

	// LANG is the usual POSIX fallback when no explicit language is set.
	_ = v.BindEnv(KeyLang, EnvPrefix+"_LANG", "LANG")
	return v
}

// FromViper reads a Config out of v. Malformed values are kept so that
// Validate can report them.
func FromViper(v *viper.Viper) Config {
	cfg := Config{
		Advance:   AdvancePolicy(v.GetString(KeyAdvance)),
		Hierarchy: Hierarchy(v.GetString(KeyHierarchy)),
		Lang:      v.GetString(KeyLang),
		BankPath:  v.GetString(KeyBank),
		Debug:     v.GetBool(KeyDebug),
	}
	cfg.AdvanceDelay = parseDelay(v.GetString(KeyAdvanceDelay))
	return cfg
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() Config {
	return FromViper(NewViper())
}

// parseDelay returns -1 for values that are not durations, which Validate
// rejects under AdvanceAuto.
func parseDelay(s string) time.Duration {
	if s == "" {
		return DefaultAdvanceDelay
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return -1
	}
	return d
}

// Validate checks enumerated fields and the delay range.
func (c Config) Validate() error {
	switch c.Advance {
	case AdvanceContinue, AdvanceAuto:
	default:
		return fmt.Errorf("unknown advance policy: %q (want %q or %q)", c.Advance, AdvanceContinue, AdvanceAuto)
	}

	switch c.Hierarchy {
	case HierarchyFlat, HierarchyNested:
	default:
		return fmt.Errorf("unknown category hierarchy: %q (want %q or %q)", c.Hierarchy, HierarchyFlat, HierarchyNested)
	}

	if c.Advance == AdvanceAuto && c.AdvanceDelay <= 0 {
		return fmt.Errorf("advance delay must be positive, got %s", c.AdvanceDelay)
	}
	return nil
}

// AutoAdvance returns true if revealed answers advance on a timer.
func (c Config) AutoAdvance() bool {
	return c.Advance == AdvanceAuto
}
