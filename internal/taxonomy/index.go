package taxonomy

import (
	"fmt"
	"sort"
	"strings"
)

// Index is an immutable lookup from normalized alias phrases to canonical
// skill entries. Build it once per taxonomy and share it across scoring
// calls; rebuild only when the taxonomy changes.
type Index struct {
	byAlias map[string]*SkillEntry
	// keys holds every normalized alias, longest phrase first, so that
	// "machine learning" is consumed before a bare "learning" alias can
	// match inside it.
	keys []string
}

// BuildIndex constructs an Index from the given entries. The canonical name
// of each entry is matched like any other alias. Two entries colliding on
// the same normalized alias make scoring nondeterministic, so the collision
// is rejected here with a ConfigurationError rather than resolved by last
// write wins.
func BuildIndex(entries []SkillEntry) (*Index, error) {
	idx := &Index{byAlias: make(map[string]*SkillEntry)}

	for i := range entries {
		entry := &entries[i]
		for _, alias := range append([]string{entry.Name}, entry.Aliases...) {
			key := Normalize(alias)
			if key == "" {
				continue
			}
			if existing, ok := idx.byAlias[key]; ok {
				if existing.Name == entry.Name {
					continue // the same entry listing an alias twice is harmless
				}
				return nil, &ConfigurationError{
					Message: fmt.Sprintf("alias %q is ambiguous between skills %q and %q", alias, existing.Name, entry.Name),
				}
			}
			idx.byAlias[key] = entry
			idx.keys = append(idx.keys, key)
		}
	}

	sort.Slice(idx.keys, func(i, j int) bool {
		if len(idx.keys[i]) != len(idx.keys[j]) {
			return len(idx.keys[i]) > len(idx.keys[j])
		}
		return idx.keys[i] < idx.keys[j]
	})

	return idx, nil
}

// Size returns the number of distinct alias keys in the index.
func (idx *Index) Size() int {
	return len(idx.byAlias)
}

// Lookup resolves a single alias to its canonical entry.
func (idx *Index) Lookup(alias string) (*SkillEntry, bool) {
	entry, ok := idx.byAlias[Normalize(alias)]
	return entry, ok
}

// FindAll returns the canonical skill entries mentioned anywhere in text.
// Matching is phrase-based over normalized text on word boundaries, longest
// alias first; text consumed by a longer alias is not re-matched by a
// shorter one. The result is deduplicated and sorted by category rank then
// name, so identical inputs always produce identical output.
func (idx *Index) FindAll(text string) []*SkillEntry {
	normalized := Normalize(text)
	if normalized == "" {
		return nil
	}
	padded := " " + normalized + " "

	seen := make(map[string]bool)
	var found []*SkillEntry
	for _, key := range idx.keys {
		needle := " " + key + " "
		matched := false
		for strings.Contains(padded, needle) {
			matched = true
			// Consume the span so shorter aliases cannot match inside it.
			padded = strings.Replace(padded, needle, " \x00 ", 1)
		}
		if !matched {
			continue
		}
		entry := idx.byAlias[key]
		if !seen[entry.Name] {
			seen[entry.Name] = true
			found = append(found, entry)
		}
	}

	sort.Slice(found, func(i, j int) bool {
		if found[i].CategoryRank != found[j].CategoryRank {
			return found[i].CategoryRank < found[j].CategoryRank
		}
		return found[i].Name < found[j].Name
	})
	return found
}
