package scrollreel

import "testing"

func TestIsMobile(t *testing.T) {
	tests := []struct {
		ua    string
		width float64
		want  bool
	}{
		{"Mozilla/5.0 (Windows NT 10.0; Win64; x64)", 1280, false},
		{"Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)", 1280, true},
		{"Mozilla/5.0 (Linux; Android 14)", 0, true},
		{"Opera/9.80 (J2ME/MIDP; Opera Mini/9.80)", 0, true},
		{"Mozilla/5.0 (X11; Linux x86_64)", 768, true},
		{"Mozilla/5.0 (X11; Linux x86_64)", 769, false},
		{"Mozilla/5.0 (X11; Linux x86_64)", 0, false},
	}
	for _, tt := range tests {
		if got := IsMobile(tt.ua, tt.width); got != tt.want {
			t.Errorf("IsMobile(%q, %v) = %v, want %v", tt.ua, tt.width, got, tt.want)
		}
	}
}

func TestIsSlowConnection(t *testing.T) {
	tests := map[string]bool{
		"slow-2g": true,
		"2g":      true,
		"2G":      true,
		"3g":      false,
		"4g":      false,
		"":        false,
	}
	for in, want := range tests {
		if got := IsSlowConnection(in); got != want {
			t.Errorf("IsSlowConnection(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestCapabilitiesTuning(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		name      string
		caps      Capabilities
		wantBatch int
		wantSkip  int
	}{
		{"desktop", Capabilities{Connection: "4g"}, 20, 1},
		{"desktop slow", Capabilities{Connection: "2g"}, 10, 1},
		{"mobile", Capabilities{Mobile: true, Connection: "4g"}, 20, 2},
		{"mobile unknown", Capabilities{Mobile: true}, 20, 2},
		{"mobile slow", Capabilities{Mobile: true, Connection: "slow-2g"}, 10, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.caps.BatchSize(cfg); got != tt.wantBatch {
				t.Errorf("BatchSize = %d, want %d", got, tt.wantBatch)
			}
			if got := tt.caps.FrameSkip(cfg); got != tt.wantSkip {
				t.Errorf("FrameSkip = %d, want %d", got, tt.wantSkip)
			}
		})
	}
}

func TestConnectionLabel(t *testing.T) {
	if got := (Capabilities{}).ConnectionLabel(); got != "Connection: unknown" {
		t.Errorf("label = %q", got)
	}
	if got := (Capabilities{Connection: "4g"}).ConnectionLabel(); got != "Connection: 4g" {
		t.Errorf("label = %q", got)
	}
}

type fakePlatform struct {
	ua, effective string
	reduced       bool
}

func (p fakePlatform) UserAgent() string          { return p.ua }
func (p fakePlatform) EffectiveType() string      { return p.effective }
func (p fakePlatform) PrefersReducedMotion() bool { return p.reduced }

func TestDetectCapabilities(t *testing.T) {
	p := fakePlatform{ua: "Mozilla/5.0 (iPad; CPU OS 17_0)", effective: "3g", reduced: true}

	c := DetectCapabilities(p, "", false)
	if !c.Mobile || c.Connection != "3g" || !c.ReducedMotion {
		t.Errorf("DetectCapabilities = %+v, want mobile, 3g, reduced motion", c)
	}

	c = DetectCapabilities(fakePlatform{ua: "desktop"}, "2g", true)
	if c.Mobile || c.Connection != "2g" || !c.ReducedMotion {
		t.Errorf("DetectCapabilities with overrides = %+v", c)
	}
}
