package cliconfig

import (
	"testing"
	"time"
)

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		changed map[string]bool
		check   func(t *testing.T, cfg Config)
		wantErr bool
	}{
		{
			name: "applies valid env vars",
			envVars: map[string]string{
				"SCROLLREEL_TOTAL_FRAMES":     "30",
				"SCROLLREEL_IMAGE_DIRECTORY":  "https://cdn.example.com/reel/",
				"SCROLLREEL_BATCH_DELAY":      "5ms",
				"SCROLLREEL_SCROLL_PAGES":     "3",
				"SCROLLREEL_CONNECTION":       "slow-2g",
				"SCROLLREEL_REDUCED_MOTION":   "1",
				"SCROLLREEL_FALLBACK_TIMEOUT": "1s",
			},
			changed: map[string]bool{},
			check: func(t *testing.T, cfg Config) {
				if cfg.TotalFrames != 30 {
					t.Errorf("TotalFrames = %v, want 30", cfg.TotalFrames)
				}
				if cfg.ImageDirectory != "https://cdn.example.com/reel/" {
					t.Errorf("ImageDirectory = %q", cfg.ImageDirectory)
				}
				if cfg.BatchDelay != 5*time.Millisecond {
					t.Errorf("BatchDelay = %v, want 5ms", cfg.BatchDelay)
				}
				if cfg.ScrollPages != 3 {
					t.Errorf("ScrollPages = %v, want 3", cfg.ScrollPages)
				}
				if cfg.Connection != "slow-2g" {
					t.Errorf("Connection = %q, want slow-2g", cfg.Connection)
				}
				if !cfg.ReducedMotion {
					t.Error("ReducedMotion = false, want true")
				}
				if cfg.FallbackTimeout != time.Second {
					t.Errorf("FallbackTimeout = %v, want 1s", cfg.FallbackTimeout)
				}
			},
		},
		{
			name:    "respects changed flags",
			envVars: map[string]string{"SCROLLREEL_TITLE": "env"},
			changed: map[string]bool{"title": true},
			check: func(t *testing.T, cfg Config) {
				if cfg.Title != "Scrollreel" {
					t.Errorf("Title = %q, want Scrollreel", cfg.Title)
				}
			},
		},
		{
			name:    "invalid int",
			envVars: map[string]string{"SCROLLREEL_TOTAL_FRAMES": "lots"},
			changed: map[string]bool{},
			wantErr: true,
		},
		{
			name:    "invalid duration",
			envVars: map[string]string{"SCROLLREEL_BATCH_DELAY": "later"},
			changed: map[string]bool{},
			wantErr: true,
		},
		{
			name:    "bool false",
			envVars: map[string]string{"SCROLLREEL_SHOW_STATS": "false"},
			changed: map[string]bool{},
			check: func(t *testing.T, cfg Config) {
				if cfg.ShowStats {
					t.Error("ShowStats = true, want false")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}
			cfg := DefaultConfig()
			err := ApplyEnvConfig(&cfg, tt.changed)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ApplyEnvConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}
