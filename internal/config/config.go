// SPDX-License-Identifier: MIT

// Package config loads the YAML batch file read by `minuscule batch`.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/minuscule/fault"
	"github.com/katalvlaran/minuscule/lie"
	"github.com/katalvlaran/minuscule/verify"
)

// Entry names one configuration to verify.
type Entry struct {
	Type  string `json:"type" yaml:"type"`
	Rank  int    `json:"rank" yaml:"rank"`
	Index int    `json:"index" yaml:"index"`
}

// Batch is the decoded batch file.
//
// Example:
//
//	workers: 4
//	phi_check: auto
//	max_samples_per_ideal: 8
//	configurations:
//	  - {type: A, rank: 4, index: 2}
//	  - {type: E, rank: 7, index: 7}
type Batch struct {
	// Workers bounds concurrent verifications; 0 means GOMAXPROCS.
	Workers int `json:"workers" yaml:"workers"`

	// PhiCheck is auto, on or off.
	PhiCheck string `json:"phi_check" yaml:"phi_check"`

	// MaxSamplesPerIdeal is the φ-extension sample budget per ideal.
	MaxSamplesPerIdeal int `json:"max_samples_per_ideal" yaml:"max_samples_per_ideal"`

	// Configurations to verify; empty means every supported triple.
	Configurations []Entry `json:"configurations" yaml:"configurations"`
}

// Default returns a batch over every supported triple.
func Default() Batch {
	return Batch{
		Workers:            runtime.GOMAXPROCS(0),
		PhiCheck:           verify.PhiCheckAuto.String(),
		MaxSamplesPerIdeal: verify.DefaultMaxSamplesPerIdeal,
	}
}

// Load reads and validates the batch file at path. An empty path returns
// the defaults.
func Load(path string) (Batch, error) {
	if path == "" {
		b := Default()
		return b, b.Validate()
	}

	f, err := os.Open(path)
	if err != nil {
		return Batch{}, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads a batch from r, fills defaults and validates it. Unknown
// keys are rejected.
func Decode(r io.Reader) (Batch, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Batch{}, fmt.Errorf("config: read: %w", err)
	}

	b := Batch{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&b); err != nil && !errors.Is(err, io.EOF) {
		return Batch{}, fmt.Errorf("config: parse: %w", err)
	}
	b.applyDefaults()

	return b, b.Validate()
}

func (b *Batch) applyDefaults() {
	d := Default()
	if b.Workers == 0 {
		b.Workers = d.Workers
	}
	if b.PhiCheck == "" {
		b.PhiCheck = d.PhiCheck
	}
	if b.MaxSamplesPerIdeal == 0 {
		b.MaxSamplesPerIdeal = d.MaxSamplesPerIdeal
	}
}

// Validate checks every field; all errors wrap fault.ErrConfiguration.
func (b Batch) Validate() error {
	if b.Workers < 0 {
		return fmt.Errorf("config: workers must be >= 0, got %d: %w", b.Workers, fault.ErrConfiguration)
	}
	if b.MaxSamplesPerIdeal < 0 {
		return fmt.Errorf("config: max_samples_per_ideal must be >= 0, got %d: %w", b.MaxSamplesPerIdeal, fault.ErrConfiguration)
	}
	if _, err := verify.ParsePhiCheck(b.PhiCheck); err != nil {
		return fmt.Errorf("config: phi_check: %w", err)
	}
	for i, e := range b.Configurations {
		if _, err := e.Triple(); err != nil {
			return fmt.Errorf("config: configurations[%d]: %w", i, err)
		}
	}

	return nil
}

// Triple validates e against the supported configurations.
func (e Entry) Triple() (lie.Triple, error) {
	t, err := lie.ParseType(e.Type)
	if err != nil {
		return lie.Triple{}, err
	}
	if err := lie.Validate(t, e.Rank, e.Index); err != nil {
		return lie.Triple{}, err
	}

	return lie.Triple{Type: t, Rank: e.Rank, Index: e.Index}, nil
}

// Triples returns the configured triples, or every supported triple when
// the list is empty. Call after Validate.
func (b Batch) Triples() ([]lie.Triple, error) {
	if len(b.Configurations) == 0 {
		return lie.AllTriples(), nil
	}

	out := make([]lie.Triple, 0, len(b.Configurations))
	for _, e := range b.Configurations {
		tr, err := e.Triple()
		if err != nil {
			return nil, err
		}
		out = append(out, tr)
	}

	return out, nil
}

// VerifyOptions converts the batch settings to verifier options.
func (b Batch) VerifyOptions() ([]verify.Option, error) {
	mode, err := verify.ParsePhiCheck(b.PhiCheck)
	if err != nil {
		return nil, err
	}
	opts := []verify.Option{verify.WithPhiCheck(mode)}
	if b.MaxSamplesPerIdeal > 0 {
		opts = append(opts, verify.WithMaxSamplesPerIdeal(b.MaxSamplesPerIdeal))
	}

	return opts, nil
}
