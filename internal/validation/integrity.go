package validation

import (
	"fmt"

	"github.com/julianstephens/recoverwise/internal/constants"
	"github.com/julianstephens/recoverwise/internal/models"
)

// CheckData scans a full snapshot for integrity problems: duplicate ids,
// more than one consumption log per user and day, records owned by unknown
// users, activities pointing at unknown catalog entries and field values
// outside their ranges.
func CheckData(d models.DataExport) Result {
	var r Result

	users := make(map[string]bool, len(d.Users))
	for _, u := range d.Users {
		users[u.ID] = true
	}
	habits := make(map[string]bool, len(d.HabitReplacements))
	for _, h := range d.HabitReplacements {
		habits[h.ID] = true
	}

	checkIDs(&r, constants.KeyUsers, len(d.Users), func(i int) string { return d.Users[i].ID })
	checkIDs(&r, constants.KeyConsumptionLogs, len(d.ConsumptionLogs), func(i int) string { return d.ConsumptionLogs[i].ID })
	checkIDs(&r, constants.KeyHabitReplacements, len(d.HabitReplacements), func(i int) string { return d.HabitReplacements[i].ID })
	checkIDs(&r, constants.KeyUserActivities, len(d.UserActivities), func(i int) string { return d.UserActivities[i].ID })
	checkIDs(&r, constants.KeyJournalEntries, len(d.JournalEntries), func(i int) string { return d.JournalEntries[i].ID })
	checkIDs(&r, constants.KeyCrisisEvents, len(d.CrisisEvents), func(i int) string { return d.CrisisEvents[i].ID })

	type userDay struct{ user, date string }
	seenDays := make(map[userDay]string)
	for _, l := range d.ConsumptionLogs {
		key := userDay{l.UserID, l.Date}
		if first, ok := seenDays[key]; ok {
			r.add(Problem{
				Type:        ProblemDuplicateDay,
				Description: fmt.Sprintf("more than one consumption log for %s", l.Date),
				Collection:  constants.KeyConsumptionLogs,
				IDs:         []string{first, l.ID},
			})
		} else {
			seenDays[key] = l.ID
		}
		checkOwner(&r, users, constants.KeyConsumptionLogs, l.ID, l.UserID)
		checkRecord(&r, constants.KeyConsumptionLogs, l.ID, Consumption(l))
	}

	for _, a := range d.UserActivities {
		if !habits[a.HabitReplacementID] {
			r.add(Problem{
				Type:        ProblemUnknownHabit,
				Description: fmt.Sprintf("activity %s refers to unknown habit %s", a.ID, a.HabitReplacementID),
				Collection:  constants.KeyUserActivities,
				IDs:         []string{a.ID},
			})
		}
		checkOwner(&r, users, constants.KeyUserActivities, a.ID, a.UserID)
		checkRecord(&r, constants.KeyUserActivities, a.ID, Activity(a))
	}

	for _, e := range d.JournalEntries {
		checkOwner(&r, users, constants.KeyJournalEntries, e.ID, e.UserID)
		checkRecord(&r, constants.KeyJournalEntries, e.ID, Entry(e))
	}

	for _, c := range d.CrisisEvents {
		checkOwner(&r, users, constants.KeyCrisisEvents, c.ID, c.UserID)
		checkRecord(&r, constants.KeyCrisisEvents, c.ID, Crisis(c))
	}

	for _, u := range d.Users {
		checkRecord(&r, constants.KeyUsers, u.ID, User(u))
	}

	return r
}

func checkIDs(r *Result, collection string, n int, idAt func(int) string) {
	seen := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		id := idAt(i)
		if seen[id] {
			r.add(Problem{
				Type:        ProblemDuplicateID,
				Description: fmt.Sprintf("id %s appears more than once", id),
				Collection:  collection,
				IDs:         []string{id},
			})
		}
		seen[id] = true
	}
}

func checkOwner(r *Result, users map[string]bool, collection, id, userID string) {
	if users[userID] {
		return
	}
	r.add(Problem{
		Type:        ProblemUnknownUser,
		Description: fmt.Sprintf("record %s belongs to unknown user %q", id, userID),
		Collection:  collection,
		IDs:         []string{id},
	})
}

func checkRecord(r *Result, collection, id string, err error) {
	if err == nil {
		return
	}
	r.add(Problem{
		Type:        ProblemOutOfRange,
		Description: fmt.Sprintf("record %s: %v", id, err),
		Collection:  collection,
		IDs:         []string{id},
	})
}
