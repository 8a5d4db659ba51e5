// Package config provides named pool profiles loadable from YAML files.
// A profile captures the four construction parameters of a pool so that
// deployments can tune sizing without recompiling:
//
//	profiles:
//	  - name: sessions
//	    object_size: 128
//	    initial_count: ${SESSION_POOL_INITIAL}
//	    growth: doubling
//	    allocation: chunked
//
// Values of the form ${VAR} are substituted from the environment before
// parsing.
package config

import (
	"github.com/ajitpratap0/opalloc/pkg/errors"
	"github.com/ajitpratap0/opalloc/pkg/pool"
)

// Profile describes one named pool configuration.
type Profile struct {
	// Name identifies the profile within its file.
	Name string `yaml:"name" json:"name"`
	// ObjectSize is the fixed object size in bytes.
	ObjectSize int `yaml:"object_size" json:"object_size"`
	// InitialCount is the starting capacity and linear growth increment.
	InitialCount int `yaml:"initial_count" json:"initial_count"`
	// Growth is "doubling" or "linear".
	Growth string `yaml:"growth" json:"growth"`
	// Allocation is "chunked" or "individual".
	Allocation string `yaml:"allocation" json:"allocation"`
}

// Validate reports the first violation in the profile, if any.
func (p *Profile) Validate() error {
	if p.Name == "" {
		return errors.New(errors.ErrorTypeConfig, "profile name is required")
	}
	if _, err := p.Pool(); err != nil {
		return err
	}
	return nil
}

// Pool converts the profile into an engine configuration.
func (p *Profile) Pool() (pool.Config, error) {
	cfg := pool.Config{
		ObjectSize:   p.ObjectSize,
		InitialCount: p.InitialCount,
	}

	switch p.Growth {
	case "doubling", "":
		cfg.Growth = pool.GrowDoubling
	case "linear":
		cfg.Growth = pool.GrowLinear
	default:
		return pool.Config{}, errors.Newf(errors.ErrorTypeConfig,
			"profile %q: unknown growth mode %q", p.Name, p.Growth)
	}

	switch p.Allocation {
	case "individual", "":
		cfg.Allocation = pool.AllocIndividual
	case "chunked":
		cfg.Allocation = pool.AllocChunked
	default:
		return pool.Config{}, errors.Newf(errors.ErrorTypeConfig,
			"profile %q: unknown allocation mode %q", p.Name, p.Allocation)
	}

	if err := cfg.Validate(); err != nil {
		return pool.Config{}, errors.Wrap(err, errors.ErrorTypeConfig,
			"profile "+p.Name)
	}
	return cfg, nil
}

// File is the top-level structure of a pool profile file.
type File struct {
	Profiles []Profile `yaml:"profiles" json:"profiles"`
}

// Profile returns the named profile, if present.
func (f *File) Profile(name string) (*Profile, bool) {
	for i := range f.Profiles {
		if f.Profiles[i].Name == name {
			return &f.Profiles[i], true
		}
	}
	return nil, false
}

// Validate checks every profile and rejects duplicate names.
func (f *File) Validate() error {
	seen := make(map[string]struct{}, len(f.Profiles))
	for i := range f.Profiles {
		p := &f.Profiles[i]
		if err := p.Validate(); err != nil {
			return err
		}
		if _, dup := seen[p.Name]; dup {
			return errors.Newf(errors.ErrorTypeConfig, "duplicate profile %q", p.Name)
		}
		seen[p.Name] = struct{}{}
	}
	return nil
}
