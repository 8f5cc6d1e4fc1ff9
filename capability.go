package bootstrap

import (
	"sort"

	log "github.com/sirupsen/logrus"
)

// StringSet is a set of extension or layer names.
type StringSet map[string]struct{}

// Contains reports whether name is a member, by exact comparison.
func (s StringSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Names returns the members sorted, for stable diagnostics.
func (s StringSet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Prober answers what the host supports before any instance exists.
// Results are queried fresh on every call, never cached across startups.
type Prober struct {
	api Driver
	log *log.Logger
}

func NewProber(api Driver, logger *log.Logger) *Prober {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Prober{api: api, log: logger}
}

// InstanceExtensions returns the names of every instance extension the host
// advertises. Zero extensions is legal and yields an empty set.
func (p *Prober) InstanceExtensions() (StringSet, error) {
	extensions, _, err := p.api.AvailableExtensions()
	if err != nil {
		return nil, err
	}

	available := make(StringSet, len(extensions))
	for name := range extensions {
		available[name] = struct{}{}
	}

	p.log.WithField("extensions", available.Names()).Debug("available instance extensions")
	return available, nil
}

// InstanceLayers returns the names of every layer the host offers.
func (p *Prober) InstanceLayers() (StringSet, error) {
	layers, _, err := p.api.AvailableLayers()
	if err != nil {
		return nil, err
	}

	available := make(StringSet, len(layers))
	for name := range layers {
		available[name] = struct{}{}
	}

	p.log.WithField("layers", available.Names()).Debug("available layers")
	return available, nil
}
