package scheduling

// ConflictPair is two timetable entries holding the same room at overlapping times.
type ConflictPair struct {
	First  TimetableEntry
	Second TimetableEntry
}

// FindConflicts compares every unordered pair (i, j), i < j, and reports those in
// the same room on the same day with overlapping intervals. Entries with an
// unresolved course or a malformed interval take no part. Pairs come back in
// discovery order.
//
// The scan is quadratic; bucketing by (room, day) first would cut it down if the
// class count ever grows past a few hundred.
func FindConflicts(entries []TimetableEntry) []ConflictPair {
	var pairs []ConflictPair
	for i := 0; i < len(entries); i++ {
		a := entries[i]
		if !eligible(a) {
			continue
		}
		for j := i + 1; j < len(entries); j++ {
			b := entries[j]
			if !eligible(b) || a.RoomID != b.RoomID {
				continue
			}
			if overlaps(a.Interval, b.Interval) {
				pairs = append(pairs, ConflictPair{First: a, Second: b})
			}
		}
	}
	return pairs
}

func eligible(e TimetableEntry) bool {
	return e.CourseResolved && e.RoomID != "" && e.Interval.Validate() == nil
}
