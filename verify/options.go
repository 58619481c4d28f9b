// SPDX-License-Identifier: MIT

package verify

import (
	"strings"

	"github.com/katalvlaran/minuscule/fault"
)

// PhiCheck selects whether the φ-extension check runs.
type PhiCheck int

const (
	// PhiCheckAuto runs the check only for rank n ≤ AutoPhiCheckMaxRank.
	PhiCheckAuto PhiCheck = iota
	// PhiCheckOn always runs the check.
	PhiCheckOn
	// PhiCheckOff never runs the check.
	PhiCheckOff
)

const (
	// AutoPhiCheckMaxRank is the largest rank checked under PhiCheckAuto.
	AutoPhiCheckMaxRank = 6
	// DefaultMaxSamplesPerIdeal is the default extension sample budget.
	DefaultMaxSamplesPerIdeal = 8
	// MinSamplesPerIdeal is the floor applied to any sample budget.
	MinSamplesPerIdeal = 4
	// attemptFactor bounds random attempts at attemptFactor·maxSamples.
	attemptFactor = 10
)

// String returns "auto", "on" or "off".
func (m PhiCheck) String() string {
	switch m {
	case PhiCheckOn:
		return "on"
	case PhiCheckOff:
		return "off"
	default:
		return "auto"
	}
}

// ParsePhiCheck accepts "auto", "on" and "off" (case-insensitive); the empty
// string means auto.
func ParsePhiCheck(s string) (PhiCheck, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return PhiCheckAuto, nil
	case "on", "true":
		return PhiCheckOn, nil
	case "off", "false":
		return PhiCheckOff, nil
	}

	return PhiCheckAuto, fault.Config("phi-check", s, []string{"auto", "on", "off"}, "")
}

// Options configures the verifier.
type Options struct {
	// PhiCheck selects whether CheckPhiExtensionIndependence runs.
	PhiCheck PhiCheck
	// MaxSamplesPerIdeal bounds distinct linear extensions per ideal (floor 4).
	MaxSamplesPerIdeal int
	// IdealSampleCap limits the φ-extension check to the first ideals; 0 means all.
	IdealSampleCap int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns auto φ-checking, 8 samples per ideal and no cap.
func DefaultOptions() Options {
	return Options{
		PhiCheck:           PhiCheckAuto,
		MaxSamplesPerIdeal: DefaultMaxSamplesPerIdeal,
	}
}

// WithPhiExtensionCheck forces the φ-extension check on or off.
func WithPhiExtensionCheck(enabled bool) Option {
	return func(o *Options) {
		if enabled {
			o.PhiCheck = PhiCheckOn
		} else {
			o.PhiCheck = PhiCheckOff
		}
	}
}

// WithPhiCheck sets the φ-extension mode directly.
func WithPhiCheck(mode PhiCheck) Option {
	if mode < PhiCheckAuto || mode > PhiCheckOff {
		panic("verify: WithPhiCheck: unknown mode")
	}

	return func(o *Options) { o.PhiCheck = mode }
}

// WithMaxSamplesPerIdeal sets the per-ideal sample budget. Panics on n ≤ 0;
// values below MinSamplesPerIdeal are raised to it.
func WithMaxSamplesPerIdeal(n int) Option {
	if n <= 0 {
		panic("verify: WithMaxSamplesPerIdeal requires n > 0")
	}

	return func(o *Options) { o.MaxSamplesPerIdeal = n }
}

// WithIdealSampleCap limits how many ideals the φ-extension check visits.
// Panics on n < 0.
func WithIdealSampleCap(n int) Option {
	if n < 0 {
		panic("verify: WithIdealSampleCap requires n >= 0")
	}

	return func(o *Options) { o.IdealSampleCap = n }
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.MaxSamplesPerIdeal < MinSamplesPerIdeal {
		o.MaxSamplesPerIdeal = MinSamplesPerIdeal
	}

	return o
}

// shouldRunPhiCheck applies the auto rule for rank n.
func (o Options) shouldRunPhiCheck(n int) bool {
	switch o.PhiCheck {
	case PhiCheckOn:
		return true
	case PhiCheckOff:
		return false
	default:
		return n <= AutoPhiCheckMaxRank
	}
}
