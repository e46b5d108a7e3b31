package registry

// Changes lists the ids that appear on only one side of a comparison.
type Changes struct {
	Added   []string // only in the new registry
	Removed []string // only in the old registry
}

// Empty reports whether no ids were added or removed.
func (c Changes) Empty() bool {
	return len(c.Added) == 0 && len(c.Removed) == 0
}

// Diff compares the id sets of two registries. Either side may be nil.
func Diff(prev, next *Registry) Changes {
	return DiffIDs(prev.IDs(), next.IDs())
}

// DiffIDs returns the set difference in both directions. Each list keeps the
// order of the side it came from.
func DiffIDs(oldIDs, newIDs []string) Changes {
	oldSet := toSet(oldIDs)
	newSet := toSet(newIDs)

	var c Changes
	for _, id := range newIDs {
		if !oldSet[id] {
			c.Added = append(c.Added, id)
			oldSet[id] = true // report repeats once
		}
	}
	for _, id := range oldIDs {
		if !newSet[id] {
			c.Removed = append(c.Removed, id)
			newSet[id] = true
		}
	}
	return c
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
