package profile

import (
	"sort"

	"github.com/mysticbob/foodwastecalc/internal/data"
	"github.com/mysticbob/foodwastecalc/internal/domain"
)

// Store is a read-only catalog of person archetypes. It is safe for
// concurrent use once constructed.
type Store struct {
	profiles map[string]domain.PersonProfile
	order    []string
	groups   map[string][]string
}

// NewStore builds a store from catalog entries, preserving their order
func NewStore(entries []data.ProfileEntry) *Store {
	s := &Store{
		profiles: make(map[string]domain.PersonProfile, len(entries)),
		groups:   make(map[string][]string),
	}
	for _, e := range entries {
		if _, exists := s.profiles[e.ID]; !exists {
			s.order = append(s.order, e.ID)
		}
		s.profiles[e.ID] = e.PersonProfile
		if e.Group != "" {
			s.groups[e.Group] = append(s.groups[e.Group], e.ID)
		}
	}
	return s
}

// Lookup returns the profile for an archetype id
func (s *Store) Lookup(id string) (domain.PersonProfile, error) {
	p, ok := s.profiles[id]
	if !ok {
		return domain.PersonProfile{}, &domain.NotFoundError{Kind: "profile", ID: id}
	}
	return p, nil
}

// IDs returns all archetype ids in catalog order
func (s *Store) IDs() []string {
	return append([]string(nil), s.order...)
}

// Groups returns the sorted group names
func (s *Store) Groups() []string {
	names := make([]string, 0, len(s.groups))
	for name := range s.groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Group returns the archetype ids in a group, in catalog order
func (s *Store) Group(name string) []string {
	return append([]string(nil), s.groups[name]...)
}

// Describe returns the one-line summary of an archetype
func (s *Store) Describe(id string) (string, error) {
	p, err := s.Lookup(id)
	if err != nil {
		return "", err
	}
	return p.Describe(), nil
}
