package region

// Store holds one collection per kind.
type Store struct {
	collections map[Kind]*Collection
}

// NewStore creates a store with an empty collection for every kind.
func NewStore() *Store {
	s := &Store{collections: make(map[Kind]*Collection, len(Kinds()))}
	for _, k := range Kinds() {
		s.collections[k] = NewCollection(k)
	}
	return s
}

// Collection returns the collection for kind, or nil for an unknown kind.
func (s *Store) Collection(kind Kind) *Collection {
	return s.collections[kind]
}

// Add registers r in its kind's collection.
func (s *Store) Add(r *Region) (string, error) {
	c := s.Collection(r.Kind)
	if c == nil {
		return "", ErrUnknownKind
	}
	return c.Add(r)
}

// Len returns the total number of regions.
func (s *Store) Len() int {
	n := 0
	for _, c := range s.collections {
		n += c.Len()
	}
	return n
}

// All returns every region, kind by kind in processing order.
func (s *Store) All() []*Region {
	var all []*Region
	for _, k := range Kinds() {
		all = append(all, s.collections[k].Regions()...)
	}
	return all
}
