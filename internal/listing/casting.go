// Package listing contains the pure filter, sort and partition functions
// applied to fetched collections before rendering. Nothing in this
// package performs I/O; handlers feed it rows from the repository layer
// and the current wall-clock time where a date comparison is involved.
package listing

import (
	"sort"
	"time"

	"github.com/callboardhq/callboard/internal/model"
)

// isoDate is the layout of the date strings carried on casting calls.
const isoDate = "2006-01-02"

// expiringWindowDays is the width of the "expiring soon" window: a call
// whose audition deadline lies within [today, today+7 days] inclusive is
// flagged. Day boundaries are taken in the local timezone of now.
const expiringWindowDays = 7

// Partition splits calls into active and archived purely on the Archived
// flag. Source order is preserved within each part, so the union of the
// two slices is always the input collection and the intersection is
// empty.
func Partition(calls []model.CastingCall) (active, archived []model.CastingCall) {
	active = make([]model.CastingCall, 0, len(calls))
	archived = make([]model.CastingCall, 0)
	for _, c := range calls {
		if c.Archived {
			archived = append(archived, c)
		} else {
			active = append(active, c)
		}
	}
	return active, archived
}

// ExpiringSoon filters active to the calls whose deadline falls inside
// the inclusive window starting at now's local day boundary. Archived
// calls and calls without a deadline never qualify; an unparseable
// deadline is treated as absent.
func ExpiringSoon(active []model.CastingCall, now time.Time) []model.CastingCall {
	// Normalize both sides to UTC midnights so the day arithmetic is
	// exact across DST transitions.
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	out := make([]model.CastingCall, 0)
	for _, c := range active {
		if c.Archived || c.AuditionDeadline == "" {
			continue
		}
		deadline, err := time.ParseInLocation(isoDate, c.AuditionDeadline, time.UTC)
		if err != nil {
			continue
		}
		days := int(deadline.Sub(today).Hours() / 24)
		if days >= 0 && days <= expiringWindowDays {
			out = append(out, c)
		}
	}
	return out
}

// SortByDateDesc orders calls by post date descending. Ties keep their
// source order (stable sort), matching the database ordering so results
// agree whichever side performs the sort. Calls without a date sink to
// the end.
func SortByDateDesc(calls []model.CastingCall) {
	sort.SliceStable(calls, func(i, j int) bool {
		a, b := calls[i].Date, calls[j].Date
		if a == "" || b == "" {
			return b == "" && a != ""
		}
		// ISO dates compare correctly as strings.
		return a > b
	})
}
