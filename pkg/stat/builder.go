package stat

// Builder accumulates records in document order. It is used once per
// parse and discarded after Stat is called.
type Builder struct {
	st      *Stat
	current string
	started bool
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		st: &Stat{records: make(map[string][]NameRecord)},
	}
}

// StartYear makes year the current grouping key and resets its record
// list. It returns true if the year was already seen. A repeated year keeps
// the position of its first heading.
func (b *Builder) StartYear(year string) bool {
	_, seen := b.st.records[year]
	if !seen {
		b.st.years = append(b.st.years, year)
	}
	b.st.records[year] = []NameRecord{}
	b.current = year
	b.started = true
	return seen
}

// CurrentYear returns the year of the latest heading and false if no
// heading was seen yet.
func (b *Builder) CurrentYear() (string, bool) {
	return b.current, b.started
}

// Add appends a record to the current year. It returns false and drops the
// record if there is no current year.
func (b *Builder) Add(rec NameRecord) bool {
	if !b.started {
		return false
	}
	b.st.records[b.current] = append(b.st.records[b.current], rec)
	return true
}

// Stat returns the collected data. The Builder must not be used afterwards.
func (b *Builder) Stat() *Stat {
	res := b.st
	b.st = nil
	return res
}
