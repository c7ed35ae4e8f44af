// Package registry holds the static universe of tradable securities:
// company name, exchange symbol and sector. The built-in table covers the
// main Saudi Exchange listings; an optional YAML file can replace it.
package registry

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Security is one listed company.
type Security struct {
	Name   string `yaml:"name" json:"name"`
	Symbol string `yaml:"symbol" json:"symbol"`
	Sector string `yaml:"sector" json:"sector"`
}

// Registry is an ordered, immutable list of securities. Scan results
// follow registry order, so the order is part of the contract.
type Registry struct {
	securities []Security
}

// New creates a registry from an explicit security list, preserving order.
func New(securities []Security) *Registry {
	return &Registry{securities: securities}
}

// Default returns the built-in Saudi market universe.
func Default() *Registry {
	return &Registry{securities: saudiMarket}
}

// LoadFile reads a registry from a YAML file: a list of
// {name, symbol, sector} entries.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read registry: %w", err)
	}
	var securities []Security
	if err := yaml.Unmarshal(data, &securities); err != nil {
		return nil, fmt.Errorf("parse registry: %w", err)
	}
	if len(securities) == 0 {
		return nil, fmt.Errorf("registry %s: no securities", path)
	}
	for i, s := range securities {
		if s.Name == "" || s.Symbol == "" {
			return nil, fmt.Errorf("registry %s: entry %d missing name or symbol", path, i)
		}
	}
	return New(securities), nil
}

// All returns the securities in declaration order. The returned slice
// must not be modified.
func (r *Registry) All() []Security {
	return r.securities
}

// Len returns the number of securities.
func (r *Registry) Len() int { return len(r.securities) }

// Find looks up a security by exact symbol or case-insensitive name
// substring, in registry order.
func (r *Registry) Find(query string) (Security, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Security{}, false
	}
	lower := strings.ToLower(query)
	for _, s := range r.securities {
		if query == s.Symbol || strings.Contains(strings.ToLower(s.Name), lower) {
			return s, true
		}
	}
	return Security{}, false
}
