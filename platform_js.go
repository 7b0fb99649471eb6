//go:build js

package scrollreel

import "syscall/js"

// browserPlatform reads navigator and matchMedia through syscall/js.
type browserPlatform struct {
	motion js.Value
}

// DetectPlatform returns the hints of the current host.
func DetectPlatform() Platform {
	p := browserPlatform{}
	if mm := js.Global().Get("matchMedia"); mm.Type() == js.TypeFunction {
		p.motion = js.Global().Call("matchMedia", "(prefers-reduced-motion: reduce)")
	}
	return p
}

func (browserPlatform) UserAgent() string {
	nav := js.Global().Get("navigator")
	if nav.IsUndefined() {
		return ""
	}
	return nav.Get("userAgent").String()
}

func (browserPlatform) EffectiveType() string {
	conn := js.Global().Get("navigator").Get("connection")
	if conn.IsUndefined() || conn.IsNull() {
		return ""
	}
	et := conn.Get("effectiveType")
	if et.Type() != js.TypeString {
		return ""
	}
	return et.String()
}

func (p browserPlatform) PrefersReducedMotion() bool {
	if p.motion.IsUndefined() || p.motion.IsNull() {
		return false
	}
	return p.motion.Get("matches").Bool()
}
