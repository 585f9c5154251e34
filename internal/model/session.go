package model

// Session is one chronological run of expense entries. Insertion order is
// significant and preserved across persistence.
type Session struct {
	Name    string
	Entries []Entry
}

// Find returns the entry with the given ID and whether it exists.
func (s Session) Find(id string) (Entry, bool) {
	for _, e := range s.Entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Len returns the number of entries.
func (s Session) Len() int { return len(s.Entries) }
