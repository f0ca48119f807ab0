package bank

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sync"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// SupportedMajor is the bank file format major version this build reads.
const SupportedMajor = "v1"

// ErrUnsupportedVersion is returned for bank files with an unreadable
// or incompatible format version.
var ErrUnsupportedVersion = errors.New("unsupported bank version")

//go:embed data/default.yaml
var defaultBank []byte

var loadDefault = sync.OnceValue(func() *Bank {
	b, err := Parse(defaultBank)
	if err != nil {
		panic(fmt.Sprintf("bank: invalid embedded question bank: %v", err))
	}
	return b
})

// Default returns the embedded question bank.
func Default() *Bank {
	return loadDefault()
}

// Load reads and parses a bank file. Both YAML and JSON are accepted.
func Load(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank file: %w", err)
	}
	b, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return b, nil
}

// Parse decodes, schema-checks, version-checks and validates a bank
// document.
func Parse(data []byte) (*Bank, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode bank: %w", err)
	}
	if err := validateSchema(raw); err != nil {
		return nil, err
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode bank: %w", err)
	}
	if err := checkVersion(doc.Version); err != nil {
		return nil, err
	}

	return New(doc.Categories, doc.Questions)
}

// checkVersion accepts any valid semver whose major matches SupportedMajor.
func checkVersion(v string) error {
	if !semver.IsValid(v) {
		return fmt.Errorf("%w: %q is not a semantic version", ErrUnsupportedVersion, v)
	}
	if major := semver.Major(v); major != SupportedMajor {
		return fmt.Errorf("%w: major %s, want %s", ErrUnsupportedVersion, major, SupportedMajor)
	}
	return nil
}
