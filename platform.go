//go:build !js

package scrollreel

import "runtime"

// nativePlatform reports what a desktop or mobile host can tell. There is
// no connection hint or motion preference outside the browser; both come
// from configuration instead.
type nativePlatform struct{}

// DetectPlatform returns the hints of the current host.
func DetectPlatform() Platform { return nativePlatform{} }

func (nativePlatform) UserAgent() string {
	switch runtime.GOOS {
	case "android":
		return "Go Ebitengine (Android)"
	case "ios":
		return "Go Ebitengine (iPhone)"
	}
	return "Go Ebitengine (" + runtime.GOOS + "/" + runtime.GOARCH + ")"
}

func (nativePlatform) EffectiveType() string { return "" }

func (nativePlatform) PrefersReducedMotion() bool { return false }
