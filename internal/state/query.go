package state

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/rcliao/moderk/internal/model"
)

// TodayReminders returns the incomplete reminders due on now's calendar day,
// in now's location, ordered by time.
func (s *Store) TodayReminders(now time.Time) []model.Reminder {
	y, m, d := now.Date()
	var out []model.Reminder
	for _, r := range s.Reminders() {
		ry, rm, rd := r.Date.In(now.Location()).Date()
		if ry == y && rm == m && rd == d && !r.IsCompleted {
			out = append(out, r)
		}
	}
	sortByDate(out, true)
	return out
}

// UpcomingReminders returns incomplete reminders due at or after now,
// soonest first.
func (s *Store) UpcomingReminders(now time.Time) []model.Reminder {
	var out []model.Reminder
	for _, r := range s.Reminders() {
		if !r.IsCompleted && !r.Date.Before(now) {
			out = append(out, r)
		}
	}
	sortByDate(out, true)
	return out
}

// CompletedReminders returns completed reminders, most recent first.
func (s *Store) CompletedReminders() []model.Reminder {
	var out []model.Reminder
	for _, r := range s.Reminders() {
		if r.IsCompleted {
			out = append(out, r)
		}
	}
	sortByDate(out, false)
	return out
}

// SearchReminders returns reminders whose title or description contains
// term, ignoring case. An empty term matches everything.
func (s *Store) SearchReminders(term string) []model.Reminder {
	match := matcher(term)
	var out []model.Reminder
	for _, r := range s.Reminders() {
		if match(r.Title) || match(r.Description) {
			out = append(out, r)
		}
	}
	return out
}

// SearchMemories returns memories whose title, description, tags or people
// contain term, ignoring case. An empty term matches everything.
func (s *Store) SearchMemories(term string) []model.Memory {
	match := matcher(term)
	var out []model.Memory
	for _, m := range s.Memories() {
		if match(m.Title) || match(m.Description) || matchAny(match, m.Tags) || matchAny(match, m.People) {
			out = append(out, m)
		}
	}
	return out
}

func matcher(term string) func(string) bool {
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(term))
	return func(s string) bool {
		return strings.Contains(fold.String(s), needle)
	}
}

func matchAny(match func(string) bool, list []string) bool {
	for _, v := range list {
		if match(v) {
			return true
		}
	}
	return false
}

func sortByDate(rs []model.Reminder, asc bool) {
	sort.SliceStable(rs, func(i, j int) bool {
		if asc {
			return rs[i].Date.Before(rs[j].Date)
		}
		return rs[j].Date.Before(rs[i].Date)
	})
}
