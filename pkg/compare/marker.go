package compare

import (
	"github.com/smathieu/dualpane/pkg/models"
)

// MarkSet maps entry indexes to the reason they were marked
type MarkSet map[int]models.MarkReason

// Marked reports whether the entry at index i is marked
func (m MarkSet) Marked(i int) bool {
	_, ok := m[i]
	return ok
}

// ProgressFunc reports marking progress as entries are processed
type ProgressFunc func(done, total int)

// MarkDifferences compares two directory listings and returns the entries to
// mark on each side. A non-directory entry is marked when no entry of the
// same name exists on the other side, or when the other side's entry is
// strictly older. Each side is evaluated against the other independently, so
// a name may end up marked on one side only. Directories are never marked.
func MarkDifferences(left, right []models.Entry) (MarkSet, MarkSet) {
	return MarkDifferencesWithProgress(left, right, nil)
}

// MarkDifferencesWithProgress is MarkDifferences with a progress callback,
// invoked once per processed entry. A nil callback is ignored.
func MarkDifferencesWithProgress(left, right []models.Entry, progress ProgressFunc) (MarkSet, MarkSet) {
	total := len(left) + len(right)
	done := 0

	report := func() {
		done++
		if progress != nil {
			progress(done, total)
		}
	}

	leftMarks := markSide(left, right, report)
	rightMarks := markSide(right, left, report)
	return leftMarks, rightMarks
}

// markSide marks every non-directory entry that is missing or newer relative
// to the other listing. The first name match in scan order wins; listings are
// expected to hold unique names so at most one match exists in practice.
func markSide(entries, other []models.Entry, report func()) MarkSet {
	marks := make(MarkSet)

	for i, entry := range entries {
		report()
		if entry.IsDir {
			continue
		}

		match := -1
		for j := range other {
			if other[j].Name == entry.Name {
				match = j
				break
			}
		}

		if match < 0 {
			marks[i] = models.MarkMissing
		} else if other[match].ModTime.Before(entry.ModTime) {
			marks[i] = models.MarkNewer
		}
	}

	return marks
}
