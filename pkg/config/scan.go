package config

import (
	"errors"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Scan is the audit run configuration. Environment variables cover the
// operational knobs; the bulkier inputs (payload lists, exclusions) usually
// come from a YAML profile merged in with ApplyProfileFile.
type Scan struct {
	// TargetURL is the page whose cookies are audited.
	TargetURL string `env:"SCAN_TARGET_URL"`
	// JarPath points to a Netscape-format cookiejar file to seed cookies from.
	JarPath string `env:"SCAN_JAR_PATH"`
	// ProfilePath points to an optional YAML scan profile.
	ProfilePath string `env:"SCAN_PROFILE"`

	Payloads        []string `env:"SCAN_PAYLOADS" envSeparator:","`
	ExcludedCookies []string `env:"SCAN_EXCLUDE_COOKIES" envSeparator:","`

	Extensive bool `env:"SCAN_EXTENSIVE" envDefault:"false"`
	ParamFlip bool `env:"SCAN_PARAM_FLIP" envDefault:"false"`

	Timeout     time.Duration `env:"SCAN_TIMEOUT" envDefault:"10s"`
	Concurrency int           `env:"SCAN_CONCURRENCY" envDefault:"10"`
}

// Profile is the YAML scan profile shape. Pointer fields distinguish "absent"
// from an explicit false, so a profile never clobbers an environment value
// with a zero it did not actually carry.
type Profile struct {
	Payloads        []string `yaml:"payloads"`
	ExcludedCookies []string `yaml:"exclude_cookies"`
	Extensive       *bool    `yaml:"extensive"`
	ParamFlip       *bool    `yaml:"param_flip"`
}

// ApplyProfileFile reads a YAML profile and merges it into the config.
// Environment values take precedence: profile fields only fill what the
// environment left empty.
func (s *Scan) ApplyProfileFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Join(ErrReadingProfile, err)
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return errors.Join(ErrReadingProfile, err)
	}

	if len(s.Payloads) == 0 {
		s.Payloads = p.Payloads
	}
	if len(s.ExcludedCookies) == 0 {
		s.ExcludedCookies = p.ExcludedCookies
	}
	if !s.Extensive && p.Extensive != nil {
		s.Extensive = *p.Extensive
	}
	if !s.ParamFlip && p.ParamFlip != nil {
		s.ParamFlip = *p.ParamFlip
	}
	return nil
}
