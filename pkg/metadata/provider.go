// Package metadata answers per-image metadata queries for the overlay.
//
// A host builds a Registry, adds the providers that know its images and hands
// the registry to an Accessor. Nothing is registered globally.
package metadata

import (
	"sort"
	"sync"
)

// Category names a metadata record
type Category string

const (
	Patient       Category = "patient"
	GeneralStudy  Category = "generalStudyModule"
	GeneralSeries Category = "generalSeriesModule"
	ImagePlane    Category = "imagePlaneModule"
	GeneralImage  Category = "generalImageModule"
	Cine          Category = "cineModule"
	VOILUT        Category = "voiLutModule"
)

// Categories lists every category an Accessor reads
var Categories = []Category{Patient, GeneralStudy, GeneralSeries, ImagePlane, GeneralImage, Cine, VOILUT}

// Provider returns the record of a category for an image, or nil when it has none
type Provider interface {
	Metadata(category Category, imageID string) any
}

// ProviderFunc adapts a function to Provider
type ProviderFunc func(category Category, imageID string) any

func (f ProviderFunc) Metadata(category Category, imageID string) any {
	return f(category, imageID)
}

type registered struct {
	provider Provider
	priority int
}

// Registry fans a query out to its providers by descending priority; the first non-nil record wins.
// Providers added with equal priority are asked in insertion order.
type Registry struct {
	mu        sync.RWMutex
	providers []registered
}

// NewRegistry returns a registry holding the given providers at priority 0
func NewRegistry(providers ...Provider) *Registry {
	r := &Registry{}
	for _, p := range providers {
		r.AddProvider(p, 0)
	}
	return r
}

// AddProvider registers p. There is no removal.
func (r *Registry) AddProvider(p Provider, priority int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers = append(r.providers, registered{provider: p, priority: priority})
	sort.SliceStable(r.providers, func(i, j int) bool {
		return r.providers[i].priority > r.providers[j].priority
	})
}

// Metadata asks the providers in priority order. Providers run without the
// registry lock held, so they may register further providers.
func (r *Registry) Metadata(category Category, imageID string) any {
	r.mu.RLock()
	providers := append([]registered(nil), r.providers...)
	r.mu.RUnlock()
	for _, reg := range providers {
		if rec := reg.provider.Metadata(category, imageID); rec != nil {
			return rec
		}
	}
	return nil
}
