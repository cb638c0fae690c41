package motion

import (
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

// ReducedMotionEnv is the environment variable PrefersReducedMotion reads.
const ReducedMotionEnv = "MOTION_REDUCED"

// MotionPreference reports whether the user currently asks for reduced
// motion. Animators query it on every request and never cache the answer, so
// a preference toggled mid-session applies to the next animation.
type MotionPreference func() bool

// StaticPreference returns a MotionPreference that always reports v.
func StaticPreference(v bool) MotionPreference {
	return func() bool { return v }
}

// EnvPreference reads the named environment variable on every call. The
// values "1", "true", "yes", "on" and "reduce" (case-insensitive) enable
// reduced motion; anything else, including unset, disables it.
func EnvPreference(name string) MotionPreference {
	return func() bool {
		return truthy(os.Getenv(name))
	}
}

// PrefersReducedMotion reports the process-wide preference from the
// MOTION_REDUCED environment variable.
func PrefersReducedMotion() bool {
	return truthy(os.Getenv(ReducedMotionEnv))
}

func truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "reduce":
		return true
	}
	return false
}

// preferenceFile is the YAML document FilePreference reads.
type preferenceFile struct {
	ReducedMotion bool `yaml:"reducedMotion"`
}

// FilePreference reads a YAML settings file of the form
//
//	reducedMotion: true
//
// on every call. A missing or malformed file reports false.
func FilePreference(path string) MotionPreference {
	return func() bool {
		data, err := os.ReadFile(path)
		if err != nil {
			return false
		}
		var pf preferenceFile
		if err := yaml.Unmarshal(data, &pf); err != nil {
			return false
		}
		return pf.ReducedMotion
	}
}
