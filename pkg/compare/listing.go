package compare

import (
	"github.com/smathieu/dualpane/pkg/models"
)

// MarksListener is notified when a listing's marked entries change
type MarksListener interface {
	MarksChanged(listing *Listing)
}

// Listing is an ordered directory listing with per-entry mark state.
// It is the pane-side model the comparator operates on: entries are fixed
// for the lifetime of the listing, marks and listeners are mutable.
type Listing struct {
	path      string
	entries   []models.Entry
	marks     MarkSet
	listeners []MarksListener
}

// NewListing creates a listing for the given pane path and entries
func NewListing(path string, entries []models.Entry) *Listing {
	return &Listing{
		path:    path,
		entries: entries,
		marks:   make(MarkSet),
	}
}

// Path returns the pane path the listing was built from
func (l *Listing) Path() string {
	return l.path
}

// Len returns the number of entries
func (l *Listing) Len() int {
	return len(l.entries)
}

// EntryAt returns the entry at index i
func (l *Listing) EntryAt(i int) models.Entry {
	return l.entries[i]
}

// Entries returns the underlying entries in listing order
func (l *Listing) Entries() []models.Entry {
	return l.entries
}

// Marked reports whether the entry at index i is marked
func (l *Listing) Marked(i int) bool {
	return l.marks.Marked(i)
}

// MarkReason returns the reason the entry at index i was marked
func (l *Listing) MarkReason(i int) (models.MarkReason, bool) {
	reason, ok := l.marks[i]
	return reason, ok
}

// SetMarked marks the entry at index i. Listeners are not notified until
// FireMarksChanged is called, so callers can batch mark updates.
func (l *Listing) SetMarked(i int, reason models.MarkReason) {
	l.marks[i] = reason
}

// ClearMarks removes all marks without notifying listeners
func (l *Listing) ClearMarks() {
	l.marks = make(MarkSet)
}

// Marks returns a copy of the current mark set
func (l *Listing) Marks() MarkSet {
	out := make(MarkSet, len(l.marks))
	for i, reason := range l.marks {
		out[i] = reason
	}
	return out
}

// AddMarksListener registers a listener for mark changes.
// Listeners must be removed explicitly when their owner is torn down.
func (l *Listing) AddMarksListener(listener MarksListener) {
	l.listeners = append(l.listeners, listener)
}

// RemoveMarksListener unregisters a previously added listener
func (l *Listing) RemoveMarksListener(listener MarksListener) {
	for i, registered := range l.listeners {
		if registered == listener {
			l.listeners = append(l.listeners[:i], l.listeners[i+1:]...)
			return
		}
	}
}

// FireMarksChanged notifies registered listeners that marks changed
func (l *Listing) FireMarksChanged() {
	for _, listener := range l.listeners {
		listener.MarksChanged(l)
	}
}

// ComparePanes runs MarkDifferences over two pane listings, applies the
// resulting marks to each side and notifies both listings' marks listeners.
// Existing marks are cleared first.
func ComparePanes(left, right *Listing) {
	ComparePanesWithProgress(left, right, nil)
}

// ComparePanesWithProgress is ComparePanes with a progress callback
func ComparePanesWithProgress(left, right *Listing, progress ProgressFunc) {
	left.ClearMarks()
	right.ClearMarks()

	leftMarks, rightMarks := MarkDifferencesWithProgress(left.entries, right.entries, progress)
	for i, reason := range leftMarks {
		left.SetMarked(i, reason)
	}
	for i, reason := range rightMarks {
		right.SetMarked(i, reason)
	}

	left.FireMarksChanged()
	right.FireMarksChanged()
}
