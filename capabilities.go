package scrollreel

import (
	"regexp"
	"strings"
)

// MobileMaxWidth is the viewport width (CSS px) at or below which a device
// is treated as mobile regardless of its user agent.
const MobileMaxWidth = 768

var mobileUA = regexp.MustCompile(`(?i)Android|webOS|iPhone|iPad|iPod|BlackBerry|IEMobile|Opera Mini`)

// IsMobile reports whether the user agent names a mobile platform or the
// viewport is narrow.
func IsMobile(userAgent string, viewportWidth float64) bool {
	return mobileUA.MatchString(userAgent) || (viewportWidth > 0 && viewportWidth <= MobileMaxWidth)
}

// IsSlowConnection reports whether a network effective type ("slow-2g",
// "2g", "3g", "4g") warrants reduced loading pressure.
func IsSlowConnection(effectiveType string) bool {
	switch strings.ToLower(strings.TrimSpace(effectiveType)) {
	case "slow-2g", "2g":
		return true
	}
	return false
}

// Capabilities describes the host as far as loading and mapping care.
type Capabilities struct {
	UserAgent     string
	Connection    string // network effective type; empty when unknown
	ReducedMotion bool
	// Mobile forces mobile handling regardless of the viewport width.
	Mobile bool
}

// Slow reports whether the connection is classified slow.
func (c Capabilities) Slow() bool { return IsSlowConnection(c.Connection) }

// BatchSize returns the preload batch size for this host.
func (c Capabilities) BatchSize(cfg Config) int {
	if c.Slow() {
		return cfg.SlowPreloadBatch
	}
	return cfg.PreloadBatch
}

// FrameSkip returns the effective frame skip: 1 on desktop, the mobile skip
// on mobile, and the slow-mobile skip on mobile with a slow connection.
func (c Capabilities) FrameSkip(cfg Config) int {
	if !c.Mobile {
		return 1
	}
	if c.Slow() {
		return max(cfg.SlowMobileFrameSkip, 1)
	}
	return max(cfg.MobileFrameSkip, 1)
}

// ConnectionLabel is the text of the connection info line.
func (c Capabilities) ConnectionLabel() string {
	if c.Connection == "" {
		return "Connection: unknown"
	}
	return "Connection: " + c.Connection
}

// Platform exposes the host hints consumed at startup and polled for
// changes of the reduced-motion preference.
type Platform interface {
	UserAgent() string
	// EffectiveType is the network effective type ("4g", "2g", ...), or ""
	// when the host does not expose one.
	EffectiveType() string
	PrefersReducedMotion() bool
}

// DetectCapabilities combines platform hints with configuration overrides.
// A non-empty connection overrides the platform's effective type. Mobile is
// derived from the user agent only; the App adds the viewport-width rule.
func DetectCapabilities(p Platform, connection string, reducedMotion bool) Capabilities {
	c := Capabilities{
		UserAgent:     p.UserAgent(),
		Connection:    p.EffectiveType(),
		ReducedMotion: reducedMotion || p.PrefersReducedMotion(),
	}
	if connection != "" {
		c.Connection = connection
	}
	c.Mobile = IsMobile(c.UserAgent, 0)
	return c
}
