package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.AutoAdvance() {
		t.Error("default should require explicit continue")
	}
	if cfg.AdvanceDelay != 1500*time.Millisecond {
		t.Errorf("AdvanceDelay = %s, want 1.5s", cfg.AdvanceDelay)
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("MATHQUIZ_ADVANCE", "auto")
	t.Setenv("MATHQUIZ_ADVANCE_DELAY", "2s")
	t.Setenv("MATHQUIZ_HIERARCHY", "flat")
	t.Setenv("MATHQUIZ_LANG", "es")
	t.Setenv("LANG", "en_US.UTF-8")
	t.Setenv("MATHQUIZ_BANK", "/tmp/bank.yaml")
	t.Setenv("MATHQUIZ_DEBUG", "1")

	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !cfg.AutoAdvance() {
		t.Error("expected auto advance")
	}
	if cfg.AdvanceDelay != 2*time.Second {
		t.Errorf("AdvanceDelay = %s", cfg.AdvanceDelay)
	}
	if cfg.Hierarchy != HierarchyFlat {
		t.Errorf("Hierarchy = %q", cfg.Hierarchy)
	}
	if cfg.Lang != "es" {
		t.Errorf("Lang = %q, MATHQUIZ_LANG should win over LANG", cfg.Lang)
	}
	if cfg.BankPath != "/tmp/bank.yaml" || !cfg.Debug {
		t.Errorf("BankPath = %q, Debug = %v", cfg.BankPath, cfg.Debug)
	}
}

func TestConfigFromEnv_LangFallback(t *testing.T) {
	t.Setenv("MATHQUIZ_LANG", "")
	t.Setenv("LANG", "es_ES.UTF-8")
	if got := ConfigFromEnv().Lang; got != "es_ES.UTF-8" {
		t.Errorf("Lang = %q", got)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Config)
	}{
		{"bad advance", func(c *Config) { c.Advance = "sometimes" }},
		{"bad hierarchy", func(c *Config) { c.Hierarchy = "deep" }},
		{"zero delay", func(c *Config) { c.Advance = AdvanceAuto; c.AdvanceDelay = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mod(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestConfigFromEnv_BadDelay(t *testing.T) {
	t.Setenv("MATHQUIZ_ADVANCE", "auto")
	t.Setenv("MATHQUIZ_ADVANCE_DELAY", "soon")
	if err := ConfigFromEnv().Validate(); err == nil {
		t.Error("expected error for unparseable delay")
	}
}

func TestFromViper_FlagOverridesEnv(t *testing.T) {
	t.Setenv("MATHQUIZ_ADVANCE", "continue")
	t.Setenv("MATHQUIZ_ADVANCE_DELAY", "3s")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("advance", "", "")
	fs.Duration("delay", 0, "")
	if err := fs.Parse([]string{"--advance", "auto"}); err != nil {
		t.Fatal(err)
	}

	v := NewViper()
	if err := v.BindPFlag(KeyAdvance, fs.Lookup("advance")); err != nil {
		t.Fatal(err)
	}
	if err := v.BindPFlag(KeyAdvanceDelay, fs.Lookup("delay")); err != nil {
		t.Fatal(err)
	}

	cfg := FromViper(v)
	if cfg.Advance != AdvanceAuto {
		t.Errorf("Advance = %q, flag should win over env", cfg.Advance)
	}
	if cfg.AdvanceDelay != 3*time.Second {
		t.Errorf("AdvanceDelay = %s, unset flag should not mask env", cfg.AdvanceDelay)
	}
}

func TestFromViper_Defaults(t *testing.T) {
	for _, k := range []string{"MATHQUIZ_ADVANCE", "MATHQUIZ_ADVANCE_DELAY", "MATHQUIZ_HIERARCHY", "MATHQUIZ_DEBUG"} {
		t.Setenv(k, "")
	}
	cfg := FromViper(NewViper())
	want := DefaultConfig()
	if cfg.Advance != want.Advance || cfg.AdvanceDelay != want.AdvanceDelay || cfg.Hierarchy != want.Hierarchy || cfg.Debug {
		t.Errorf("got %+v, want defaults %+v", cfg, want)
	}
}
