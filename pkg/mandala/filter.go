package mandala

// Filter maps a filter category (for example "dimension" or "tag") to the
// values accepted in that category. The union of all accepted values is
// matched against an item's dimension and tags. An empty filter accepts
// everything.
type Filter map[string][]string

// Active reports whether any value is selected.
func (f Filter) Active() bool {
	for _, vals := range f {
		if len(vals) > 0 {
			return true
		}
	}
	return false
}

func (f Filter) accepted() map[string]struct{} {
	set := make(map[string]struct{})
	for _, vals := range f {
		for _, v := range vals {
			set[v] = struct{}{}
		}
	}
	return set
}

// Match reports whether an item with the given dimension and tags is shown.
func (f Filter) Match(dimension string, tags []string) bool {
	if !f.Active() {
		return true
	}
	set := f.accepted()
	if _, ok := set[dimension]; ok {
		return true
	}
	for _, t := range tags {
		if _, ok := set[t]; ok {
			return true
		}
	}
	return false
}

// MatchNote reports whether n is shown under f.
func (f Filter) MatchNote(n Note) bool { return f.Match(n.Dimension, n.Tags) }

// MatchCharacter reports whether c is shown under f.
func (f Filter) MatchCharacter(c Character) bool { return f.Match(c.Dimension, nil) }
