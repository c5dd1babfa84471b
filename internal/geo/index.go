package geo

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by index lookups that match nothing.
var ErrNotFound = errors.New("geo: not found")

// Index is the immutable lookup structure over the loaded catalogue:
// identifier to record, and normalized name or alias to identifier.
// Several alias keys may point at the same identifier.
type Index struct {
	byID   map[string]*CountryRecord
	byName map[string]string
	all    []CountryRecord
}

// BuildIndex constructs an Index from the loaded records and an alias
// table. Alias keys must be pre-normalized (Normalize fixed points) so
// that lookup and build agree on the key space; aliases pointing at
// unknown identifiers are skipped rather than failing the whole build,
// since the upstream dataset legitimately drops some territories.
func BuildIndex(records []CountryRecord, aliases map[string]string) (*Index, error) {
	if len(records) == 0 {
		return nil, errors.New("geo: empty record set")
	}

	idx := &Index{
		byID:   make(map[string]*CountryRecord, len(records)),
		byName: make(map[string]string, 2*len(records)+len(aliases)),
		all:    records,
	}

	for i := range records {
		r := &idx.all[i]
		if _, dup := idx.byID[r.ID]; dup {
			return nil, fmt.Errorf("geo: duplicate country id %q", r.ID)
		}
		idx.byID[r.ID] = r
		idx.byName[Normalize(r.Name)] = r.ID
		idx.byName[Normalize(r.DisplayName)] = r.ID
	}

	for key, id := range aliases {
		if key != Normalize(key) {
			return nil, fmt.Errorf("geo: alias key %q is not normalized", key)
		}
		if _, ok := idx.byID[id]; !ok {
			continue
		}
		idx.byName[key] = id
	}

	return idx, nil
}

// ByID looks up a record by its cca3 identifier.
func (idx *Index) ByID(id string) (*CountryRecord, error) {
	r, ok := idx.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return r, nil
}

// Resolve maps normalized text to an identifier through the alias table
// and the normalized canonical/display names.
func (idx *Index) Resolve(normalizedText string) (string, error) {
	id, ok := idx.byName[normalizedText]
	if !ok {
		return "", ErrNotFound
	}
	return id, nil
}

// All returns every record in load order. The returned slice is shared;
// callers must not modify it.
func (idx *Index) All() []CountryRecord {
	return idx.all
}

// ByRegion returns the records of one region, in load order.
func (idx *Index) ByRegion(region Region) []CountryRecord {
	var out []CountryRecord
	for _, r := range idx.all {
		if r.Region == region {
			out = append(out, r)
		}
	}
	return out
}

// Len reports the catalogue size.
func (idx *Index) Len() int {
	return len(idx.all)
}
