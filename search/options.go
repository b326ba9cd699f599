package search

import (
	"errors"

	"github.com/m3db/m3x/clock"
	"github.com/m3db/m3x/instrument"
)

const (
	defaultMaxMatches       = 10000
	defaultCheckCancelEvery = 1024
)

var (
	errNonPositiveMaxMatches       = errors.New("max matches must be positive")
	errNonPositiveCheckCancelEvery = errors.New("check cancel every must be positive")
)

// Options provide a set of options for searching.
type Options struct {
	clockOpts        clock.Options
	instrumentOpts   instrument.Options
	maxMatches       int
	checkCancelEvery int
}

// NewOptions create a new set of options.
func NewOptions() *Options {
	return &Options{
		clockOpts:        clock.NewOptions(),
		instrumentOpts:   instrument.NewOptions(),
		maxMatches:       defaultMaxMatches,
		checkCancelEvery: defaultCheckCancelEvery,
	}
}

// SetClockOptions sets the clock options.
func (o *Options) SetClockOptions(v clock.Options) *Options {
	opts := *o
	opts.clockOpts = v
	return &opts
}

// ClockOptions returns the clock options.
func (o *Options) ClockOptions() clock.Options {
	return o.clockOpts
}

// SetInstrumentOptions sets the instrument options.
func (o *Options) SetInstrumentOptions(v instrument.Options) *Options {
	opts := *o
	opts.instrumentOpts = v
	return &opts
}

// InstrumentOptions returns the instrument options.
func (o *Options) InstrumentOptions() instrument.Options {
	return o.instrumentOpts
}

// SetMaxMatches sets the maximum number of matching doc IDs returned per segment.
// Searches with more matches are truncated.
func (o *Options) SetMaxMatches(v int) *Options {
	opts := *o
	opts.maxMatches = v
	return &opts
}

// MaxMatches returns the maximum number of matching doc IDs returned per segment.
func (o *Options) MaxMatches() int {
	return o.maxMatches
}

// SetCheckCancelEvery sets how many doc IDs are pulled between checks for
// context cancellation.
func (o *Options) SetCheckCancelEvery(v int) *Options {
	opts := *o
	opts.checkCancelEvery = v
	return &opts
}

// CheckCancelEvery returns how many doc IDs are pulled between checks for
// context cancellation.
func (o *Options) CheckCancelEvery() int {
	return o.checkCancelEvery
}

// Validate validates the options.
func (o *Options) Validate() error {
	if o.maxMatches <= 0 {
		return errNonPositiveMaxMatches
	}
	if o.checkCancelEvery <= 0 {
		return errNonPositiveCheckCancelEvery
	}
	return nil
}
