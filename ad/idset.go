package ad

// Ordered, deduplicating collections of leaves, built while
// walking an expression tree (PushIds/PushIdsU32 below).

// IdSet collects the distinct leaves an expression depends on, in
// first-seen order. The order is significant: StackEntry.Ids,
// .First, .Second and so on are all indexed consistently with the
// order an IdSet was filled in, and reverse sweeps rely on that
// order being stable and deterministic.
type IdSet struct {
	infos []*VariableInfo
	index map[uint32]int
}

// NewIdSet returns an empty IdSet.
func NewIdSet() *IdSet {
	return &IdSet{index: make(map[uint32]int)}
}

// Add inserts info if its id is not already present and returns
// its position. Re-adding an already-present info is a no-op and
// returns its original position.
func (s *IdSet) Add(info *VariableInfo) int {
	if i, ok := s.index[info.id]; ok {
		return i
	}
	i := len(s.infos)
	s.infos = append(s.infos, info)
	s.index[info.id] = i
	return i
}

// Contains reports whether id was inserted and, if so, its
// position.
func (s *IdSet) Contains(id uint32) (int, bool) {
	i, ok := s.index[id]
	return i, ok
}

// Len returns the number of distinct leaves collected.
func (s *IdSet) Len() int { return len(s.infos) }

// At returns the i'th distinct leaf, in insertion order.
func (s *IdSet) At(i int) *VariableInfo { return s.infos[i] }

// List returns the collected leaves as a slice, in insertion
// order. The caller must not mutate the result.
func (s *IdSet) List() []*VariableInfo { return s.infos }

// Uint32Set is the numeric-id-only counterpart of IdSet, used by
// PushIdsU32 when a caller needs membership only, not the info
// objects themselves.
type Uint32Set struct {
	ids  []uint32
	seen map[uint32]bool
}

// NewUint32Set returns an empty Uint32Set.
func NewUint32Set() *Uint32Set {
	return &Uint32Set{seen: make(map[uint32]bool)}
}

// Add inserts id if not already present.
func (s *Uint32Set) Add(id uint32) {
	if s.seen[id] {
		return
	}
	s.seen[id] = true
	s.ids = append(s.ids, id)
}

// Contains reports whether id was inserted.
func (s *Uint32Set) Contains(id uint32) bool { return s.seen[id] }

// Len returns the number of distinct ids collected.
func (s *Uint32Set) Len() int { return len(s.ids) }

// Ids returns the collected ids, in insertion order. The caller
// must not mutate the result.
func (s *Uint32Set) Ids() []uint32 { return s.ids }
