// Package report renders reports over normalized employee records.
package report

import (
	"slices"

	"github.com/zeebo/errs"
	"golang.org/x/exp/maps"

	"storj.io/payout-report/pkg/employee"
)

// Renderer renders a report over the records. It must not modify them.
type Renderer func(records []*employee.Record) (string, error)

// Registry maps report type names to renderers.
type Registry struct {
	renderers map[string]Renderer
}

// NewRegistry returns a registry holding the payout report.
func NewRegistry() *Registry {
	r := new(Registry)
	r.MustRegister(PayoutName, Payout)
	return r
}

func (r *Registry) Register(name string, renderer Renderer) error {
	switch {
	case name == "":
		return errs.New("report name cannot be empty")
	case renderer == nil:
		return errs.New("report %q has no renderer", name)
	}
	if _, ok := r.renderers[name]; ok {
		return errs.New("report %q is already registered", name)
	}
	if r.renderers == nil {
		r.renderers = make(map[string]Renderer)
	}
	r.renderers[name] = renderer
	return nil
}

func (r *Registry) MustRegister(name string, renderer Renderer) {
	if err := r.Register(name, renderer); err != nil {
		panic(err)
	}
}

// Lookup returns the renderer registered under name. It is not an error for
// the report to be unknown; ok reports whether it was found.
func (r *Registry) Lookup(name string) (_ Renderer, ok bool) {
	renderer, ok := r.renderers[name]
	return renderer, ok
}

// Names returns the registered report names in sorted order.
func (r *Registry) Names() []string {
	names := maps.Keys(r.renderers)
	slices.Sort(names)
	return names
}
