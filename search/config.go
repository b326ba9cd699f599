package search

import (
	"github.com/m3db/m3x/instrument"
)

// Configuration provides search configuration.
type Configuration struct {
	MaxMatches       *int `yaml:"maxMatches"`
	CheckCancelEvery *int `yaml:"checkCancelEvery"`
}

// NewOptions create a new set of search options from configuration.
func (c *Configuration) NewOptions(instrumentOpts instrument.Options) (*Options, error) {
	opts := NewOptions().SetInstrumentOptions(instrumentOpts)
	if c.MaxMatches != nil {
		opts = opts.SetMaxMatches(*c.MaxMatches)
	}
	if c.CheckCancelEvery != nil {
		opts = opts.SetCheckCancelEvery(*c.CheckCancelEvery)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}
