package services

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/mfiume/toronto-free-skates/models"
	"github.com/mfiume/toronto-free-skates/util"
)

const dateLayout = "2006-01-02"

// FilterSessions applies every filter axis to the entries and returns a
// new slice. The predicates are independent and commutative; the input
// is never mutated, so filtering twice with the same configuration
// yields identical output.
func FilterSessions(entries []models.SessionEntry, params models.FilterParams, now time.Time) []models.SessionEntry {
	today := now.Format(dateLayout)
	target, hasTarget := targetDate(params, now)

	filtered := make([]models.SessionEntry, 0, len(entries))
	for _, entry := range entries {
		if !matchesRink(entry.Rink, params) {
			continue
		}
		if !matchesTimeOfDay(util.ParseTimeToHour(entry.Session.Time), params.TimeOfDay) {
			continue
		}
		if !matchesTimeFilter(entry.Session.Date, today, params.TimeFilter) {
			continue
		}
		if hasTarget && entry.Session.Date != target {
			continue
		}
		filtered = append(filtered, entry)
	}
	return filtered
}

func matchesRink(rink models.Rink, params models.FilterParams) bool {
	if params.RinkType != "" && rink.Type != params.RinkType {
		return false
	}
	// Distance can only be enforced when one was computed.
	if !params.AnyDistance && rink.DistanceKm != nil && *rink.DistanceKm > params.MaxDistanceKm {
		return false
	}
	return true
}

func matchesTimeOfDay(hour int, bucket string) bool {
	switch bucket {
	case models.TimeOfDayMorning:
		return hour < 12
	case models.TimeOfDayAfternoon:
		return hour >= 12 && hour < 17
	case models.TimeOfDayEvening:
		return hour >= 17
	default:
		return true
	}
}

// matchesTimeFilter compares dates lexically, which is valid because
// both sides are zero-padded YYYY-MM-DD strings.
func matchesTimeFilter(date, today, timeFilter string) bool {
	switch timeFilter {
	case models.TimeFilterUpcoming:
		return date >= today
	case models.TimeFilterPast:
		return date < today
	default:
		return true
	}
}

// targetDate resolves the specific-date selection. Pick without a
// selected date degrades to no restriction rather than failing.
func targetDate(params models.FilterParams, now time.Time) (string, bool) {
	switch params.DateFilter {
	case models.DateFilterToday:
		return now.Format(dateLayout), true
	case models.DateFilterTomorrow:
		return now.AddDate(0, 0, 1).Format(dateLayout), true
	case models.DateFilterPick:
		if params.SelectedDate == "" {
			return "", false
		}
		return params.SelectedDate, true
	default:
		return "", false
	}
}

// SortSessions returns a sorted copy of the entries. The time order,
// ascending (date, parsed hour), is the canonical one the aggregator
// applies; name and distance are view-level reorderings on top of it.
func SortSessions(entries []models.SessionEntry, sortBy string) []models.SessionEntry {
	sorted := make([]models.SessionEntry, len(entries))
	copy(sorted, entries)

	switch sortBy {
	case models.SortByName:
		sort.SliceStable(sorted, func(i, j int) bool {
			return strings.ToLower(sorted[i].Rink.Name) < strings.ToLower(sorted[j].Rink.Name)
		})
	case models.SortByDistance:
		sort.SliceStable(sorted, func(i, j int) bool {
			return rinkDistance(sorted[i].Rink) < rinkDistance(sorted[j].Rink)
		})
	default:
		sort.SliceStable(sorted, func(i, j int) bool {
			if sorted[i].Session.Date != sorted[j].Session.Date {
				return sorted[i].Session.Date < sorted[j].Session.Date
			}
			return util.ParseTimeToHour(sorted[i].Session.Time) < util.ParseTimeToHour(sorted[j].Session.Time)
		})
	}

	return sorted
}

// rinkDistance treats a missing distance as infinitely far so those
// entries sort after every entry that has one.
func rinkDistance(rink models.Rink) float64 {
	if rink.DistanceKm == nil {
		return math.Inf(1)
	}
	return *rink.DistanceKm
}
