// Package operations defines the patching operations for the static mirror of
// unkode-mania.net and the registry the CLI is built from.
package operations

import (
	"fmt"
	"sort"

	"github.com/jonathan/htmlpatch/internal/config"
	"github.com/jonathan/htmlpatch/internal/patch"
)

// Registry holds validated operations by name.
type Registry struct {
	ops map[string]*patch.Operation
}

// New builds and validates every operation for cfg.
func New(cfg config.Config) (*Registry, error) {
	hosts := cfg.Hosts
	if len(hosts) == 0 {
		hosts = config.DefaultHosts
	}

	all := []*patch.Operation{
		ConvertFQDNLinks(hosts),
		ConvertSearchMenuLink(),
		InsertAllContentMenuItem(),
		RemoveCommentTwitterAuthPrompt(),
		RemoveMoreCodeButton(),
		RemoveLoginBlock(),
		RemoveSidebarRecentMenuItems(),
		RemoveSidebarWriteMenuItems(),
	}

	r := &Registry{ops: make(map[string]*patch.Operation, len(all))}
	for _, op := range all {
		if err := op.Validate(); err != nil {
			return nil, err
		}
		if _, dup := r.ops[op.Name]; dup {
			return nil, fmt.Errorf("duplicate operation %q", op.Name)
		}
		r.ops[op.Name] = op
	}
	return r, nil
}

// Get returns the operation called name.
func (r *Registry) Get(name string) (*patch.Operation, bool) {
	op, ok := r.ops[name]
	return op, ok
}

// All returns every operation sorted by name.
func (r *Registry) All() []*patch.Operation {
	out := make([]*patch.Operation, 0, len(r.ops))
	for _, op := range r.ops {
		out = append(out, op)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
