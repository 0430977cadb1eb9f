// Package branchgroups partitions the branch roster into the two fixed
// reporting groups, "next" and "coffemania". Every other component
// consults the registry by membership test only.
package branchgroups

import (
	"sort"
	"sync/atomic"

	"bakehouse/models"
)

// Group identifies which reporting group a branch belongs to.
type Group int

const (
	GroupNone Group = iota
	GroupNext
	GroupCoffemania
)

// Branch type tags as they appear in the roster.
const (
	TypeNext       = "next"
	TypeCoffemania = "coffemania"
)

func (g Group) String() string {
	switch g {
	case GroupNext:
		return TypeNext
	case GroupCoffemania:
		return TypeCoffemania
	}
	return "none"
}

// Registry is an immutable partition of branch names. Build a new one
// and swap it through a Store instead of mutating in place.
type Registry struct {
	next       map[string]struct{}
	coffemania map[string]struct{}
}

// Build partitions branches by exact type tag. Branches with any other
// tag are left out of both groups and report as GroupNone.
func Build(branches []models.Branch) *Registry {
	r := &Registry{
		next:       make(map[string]struct{}),
		coffemania: make(map[string]struct{}),
	}
	for _, b := range branches {
		switch b.Type {
		case TypeNext:
			r.next[b.Name] = struct{}{}
		case TypeCoffemania:
			r.coffemania[b.Name] = struct{}{}
		}
	}
	return r
}

// Membership reports the group a branch belongs to.
func (r *Registry) Membership(branch string) Group {
	if _, ok := r.next[branch]; ok {
		return GroupNext
	}
	if _, ok := r.coffemania[branch]; ok {
		return GroupCoffemania
	}
	return GroupNone
}

// All returns the branch names of a group, sorted for stable output.
func (r *Registry) All(g Group) []string {
	var src map[string]struct{}
	switch g {
	case GroupNext:
		src = r.next
	case GroupCoffemania:
		src = r.coffemania
	default:
		return nil
	}
	names := make([]string, 0, len(src))
	for name := range src {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Store holds the process-wide registry. Reads see either the previous
// or the new registry during a Refresh, never a partial one.
type Store struct {
	current atomic.Pointer[Registry]
}

// NewStore returns a store primed with an empty registry so Current
// never returns nil before the first load.
func NewStore() *Store {
	s := &Store{}
	s.current.Store(Build(nil))
	return s
}

// Current returns the active registry snapshot.
func (s *Store) Current() *Registry {
	return s.current.Load()
}

// Refresh replaces the whole registry atomically.
func (s *Store) Refresh(branches []models.Branch) *Registry {
	r := Build(branches)
	s.current.Store(r)
	return r
}
