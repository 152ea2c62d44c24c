package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML(), "barber.yaml")
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded defaults differ from DefaultConfig():\n got %+v\nwant %+v", cfg, DefaultConfig())
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, expected nil", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero lives", func(c *Config) { c.MaxLives = 0 }, "max_lives"},
		{"inverted axis", func(c *Config) { c.Align.Axis = Range{Min: 550, Max: 30} }, "align.axis"},
		{"zero speed", func(c *Config) { c.Align.BaseSpeed = 0 }, "align.base_speed"},
		{"zero tolerance", func(c *Config) { c.Align.Tolerance = 0 }, "align.tolerance"},
		{"negative delay", func(c *Config) { c.Align.CuttingDelayTicks = -1 }, "cutting_delay_ticks"},
		{"band outside axis", func(c *Config) { c.Align.TargetBand = Range{Min: 10, Max: 100} }, "target_band"},
		{"probability above one", func(c *Config) { c.Rush.SpawnProbability = 1.5 }, "spawn_probability"},
		{"zero hit radius", func(c *Config) { c.Rush.HitRadius = 0 }, "hit_radius"},
		{"bad fall speed", func(c *Config) { c.Rush.FallSpeed = Range{Min: 0, Max: 2} }, "fall_speed"},
		{"nan speed", func(c *Config) { c.Align.BaseSpeed = math.NaN() }, "align.base_speed"},
		{"nan tolerance", func(c *Config) { c.Align.Tolerance = math.NaN() }, "align.tolerance"},
		{"nan axis bound", func(c *Config) { c.Align.Axis.Max = math.NaN() }, "align.axis"},
		{"nan hit radius", func(c *Config) { c.Rush.HitRadius = math.NaN() }, "rush.hit_radius"},
		{"nan fall speed", func(c *Config) { c.Rush.FallSpeed.Max = math.NaN() }, "rush.fall_speed"},
		{"infinite sweep speed", func(c *Config) { c.Rush.SweepSpeed = math.Inf(1) }, "rush.sweep_speed"},
		{"nan spawn probability", func(c *Config) { c.Rush.SpawnProbability = math.NaN() }, "spawn_probability"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, expected error")
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("error should wrap ErrInvalid, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestValidateReportsAllViolations(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxLives = 0
	cfg.Align.Tolerance = -1

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "max_lives") || !strings.Contains(msg, "tolerance") {
		t.Errorf("expected both violations in %q", msg)
	}
}

func TestValidateRejectsNaNFromFiles(t *testing.T) {
	tests := []struct {
		name string
		file string
		data string
		want string
	}{
		{"yaml speed", "barber.yaml", "align:\n  base_speed: .nan\n", "align.base_speed"},
		{"yaml tolerance", "barber.yaml", "align:\n  tolerance: .nan\n", "align.tolerance"},
		{"yaml infinite radius", "barber.yaml", "rush:\n  hit_radius: .inf\n", "rush.hit_radius"},
		{"toml axis", "barber.toml", "[rush.axis]\nmin = nan\n", "rush.axis"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tc.data), tc.file)
			if err != nil {
				t.Fatalf("Parse() failed: %v", err)
			}
			err = cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("Validate() = %v, expected ErrInvalid", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadCustomYAMLKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "max_lives: 7\nalign:\n  tolerance: 9\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.MaxLives != 7 {
		t.Errorf("MaxLives = %d, expected 7", cfg.MaxLives)
	}
	if cfg.Align.Tolerance != 9 {
		t.Errorf("Align.Tolerance = %g, expected 9", cfg.Align.Tolerance)
	}
	if cfg.Align.BaseSpeed != 2 {
		t.Errorf("Align.BaseSpeed = %g, expected default 2", cfg.Align.BaseSpeed)
	}
	if cfg.Rush.HitRadius != 25 {
		t.Errorf("Rush.HitRadius = %g, expected default 25", cfg.Rush.HitRadius)
	}
}

func TestLoadCustomTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	data := "max_lives = 4\n\n[rush]\nhit_radius = 12.5\n\n[rush.fall_speed]\nmin = 2.0\nmax = 4.0\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.MaxLives != 4 {
		t.Errorf("MaxLives = %d, expected 4", cfg.MaxLives)
	}
	if cfg.Rush.HitRadius != 12.5 {
		t.Errorf("Rush.HitRadius = %g, expected 12.5", cfg.Rush.HitRadius)
	}
	if cfg.Rush.FallSpeed != (Range{Min: 2, Max: 4}) {
		t.Errorf("Rush.FallSpeed = %+v, expected {2 4}", cfg.Rush.FallSpeed)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", "", false},
		{"easy", DifficultyEasy, false},
		{"HARD", DifficultyHard, false},
		{"normal", DifficultyNormal, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	easy := DefaultConfig()
	ApplyPreset(&easy, DifficultyEasy)
	hard := DefaultConfig()
	ApplyPreset(&hard, DifficultyHard)
	normal := DefaultConfig()
	ApplyPreset(&normal, DifficultyNormal)

	if easy.MaxLives <= hard.MaxLives {
		t.Errorf("easy lives (%d) should exceed hard lives (%d)", easy.MaxLives, hard.MaxLives)
	}
	if easy.Align.Tolerance <= hard.Align.Tolerance {
		t.Errorf("easy tolerance (%g) should exceed hard tolerance (%g)", easy.Align.Tolerance, hard.Align.Tolerance)
	}
	if normal != DefaultConfig() {
		t.Error("normal preset should not change the config")
	}
	for _, c := range []Config{easy, hard} {
		if err := c.Validate(); err != nil {
			t.Errorf("preset produced invalid config: %v", err)
		}
	}
}
