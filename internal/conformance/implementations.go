package conformance

import (
	"errors"
	"fmt"
	"sort"

	"controlling_microwave/internal/oven"
	"controlling_microwave/internal/oven/typed"
)

var ErrUnknownImplementation = errors.New("unknown oven implementation")

// Factory builds a fresh oven in the power-on state.
type Factory func() oven.Contract

var implementations = map[string]Factory{
	"machine": func() oven.Contract { return oven.New() },
	"flags":   func() oven.Contract { return oven.NewFlagOven() },
	"typed":   func() oven.Contract { return typed.NewOven() },
}

// Implementations lists the shipped implementation names, sorted.
func Implementations() []string {
	names := make([]string, 0, len(implementations))
	for name := range implementations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, error) {
	f, ok := implementations[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownImplementation, name, Implementations())
	}
	return f, nil
}
