package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mfiume/toronto-free-skates/models"
)

func entry(rink models.Rink, date, clock string) models.SessionEntry {
	return models.SessionEntry{
		Rink: rink,
		Session: models.Session{
			Activity: "Leisure Skate",
			Date:     date,
			Time:     clock,
			AgeGroup: "All Ages",
		},
	}
}

func withDistance(rink models.Rink, km float64) models.Rink {
	rink.DistanceKm = &km
	return rink
}

var (
	outdoorRink = models.Rink{ID: 1, Name: "City Hall Rink", Type: models.RinkTypeOutdoor}
	indoorRink  = models.Rink{ID: 2, Name: "memorial arena", Type: models.RinkTypeIndoor}

	testNow = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
)

func TestFilterSessions_TimeOfDayBuckets(t *testing.T) {
	entries := []models.SessionEntry{
		entry(outdoorRink, "2024-01-02", "9:00 AM"),  // morning
		entry(outdoorRink, "2024-01-02", "12:00 PM"), // afternoon
		entry(outdoorRink, "2024-01-02", "4:59 PM"),  // afternoon
		entry(outdoorRink, "2024-01-02", "5:00 PM"),  // evening
	}

	params := models.DefaultFilterParams()

	params.TimeOfDay = models.TimeOfDayMorning
	assert.Len(t, FilterSessions(entries, params, testNow), 1)

	params.TimeOfDay = models.TimeOfDayAfternoon
	assert.Len(t, FilterSessions(entries, params, testNow), 2)

	params.TimeOfDay = models.TimeOfDayEvening
	assert.Len(t, FilterSessions(entries, params, testNow), 1)

	params.TimeOfDay = models.TimeOfDayAll
	assert.Len(t, FilterSessions(entries, params, testNow), 4)
}

func TestFilterSessions_UpcomingAndPast(t *testing.T) {
	entries := []models.SessionEntry{
		entry(outdoorRink, "2023-12-31", "10:00 AM"),
		entry(outdoorRink, "2024-01-01", "10:00 AM"), // today counts as upcoming
		entry(outdoorRink, "2024-01-02", "10:00 AM"),
	}

	params := models.DefaultFilterParams()

	params.TimeFilter = models.TimeFilterUpcoming
	upcoming := FilterSessions(entries, params, testNow)
	assert.Len(t, upcoming, 2)
	for _, e := range upcoming {
		assert.GreaterOrEqual(t, e.Session.Date, "2024-01-01")
	}

	params.TimeFilter = models.TimeFilterPast
	past := FilterSessions(entries, params, testNow)
	assert.Len(t, past, 1)
	assert.Equal(t, "2023-12-31", past[0].Session.Date)

	params.TimeFilter = models.TimeFilterAll
	assert.Len(t, FilterSessions(entries, params, testNow), 3)
}

func TestFilterSessions_SpecificDates(t *testing.T) {
	entries := []models.SessionEntry{
		entry(outdoorRink, "2024-01-01", "10:00 AM"),
		entry(outdoorRink, "2024-01-02", "10:00 AM"),
		entry(outdoorRink, "2024-01-05", "10:00 AM"),
	}

	params := models.DefaultFilterParams()
	params.TimeFilter = models.TimeFilterAll

	params.DateFilter = models.DateFilterToday
	today := FilterSessions(entries, params, testNow)
	assert.Len(t, today, 1)
	assert.Equal(t, "2024-01-01", today[0].Session.Date)

	params.DateFilter = models.DateFilterTomorrow
	tomorrow := FilterSessions(entries, params, testNow)
	assert.Len(t, tomorrow, 1)
	assert.Equal(t, "2024-01-02", tomorrow[0].Session.Date)

	params.DateFilter = models.DateFilterPick
	params.SelectedDate = "2024-01-05"
	picked := FilterSessions(entries, params, testNow)
	assert.Len(t, picked, 1)
	assert.Equal(t, "2024-01-05", picked[0].Session.Date)
}

func TestFilterSessions_PickWithoutDateMeansNoRestriction(t *testing.T) {
	entries := []models.SessionEntry{
		entry(outdoorRink, "2024-01-01", "10:00 AM"),
		entry(outdoorRink, "2024-01-02", "10:00 AM"),
	}

	params := models.DefaultFilterParams()
	params.TimeFilter = models.TimeFilterAll
	params.DateFilter = models.DateFilterPick
	params.SelectedDate = ""

	assert.Len(t, FilterSessions(entries, params, testNow), 2)
}

func TestFilterSessions_RinkTypeAndDistanceAxes(t *testing.T) {
	entries := []models.SessionEntry{
		entry(withDistance(outdoorRink, 2), "2024-01-02", "10:00 AM"),
		entry(withDistance(indoorRink, 20), "2024-01-02", "10:00 AM"),
	}

	params := models.DefaultFilterParams()
	params.TimeFilter = models.TimeFilterAll
	params.MaxDistanceKm = 10

	got := FilterSessions(entries, params, testNow)
	assert.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Rink.ID)

	// AnyDistance ignores MaxDistanceKm entirely.
	params.AnyDistance = true
	assert.Len(t, FilterSessions(entries, params, testNow), 2)

	params.RinkType = models.RinkTypeIndoor
	got = FilterSessions(entries, params, testNow)
	assert.Len(t, got, 1)
	assert.Equal(t, 2, got[0].Rink.ID)
}

func TestFilterSessions_Idempotent(t *testing.T) {
	entries := []models.SessionEntry{
		entry(outdoorRink, "2024-01-02", "10:00 AM"),
		entry(indoorRink, "2024-01-01", "6:00 PM"),
		entry(outdoorRink, "2023-12-30", "9:00 AM"),
	}
	original := make([]models.SessionEntry, len(entries))
	copy(original, entries)

	params := models.DefaultFilterParams()

	first := FilterSessions(entries, params, testNow)
	second := FilterSessions(entries, params, testNow)

	assert.Equal(t, first, second)
	assert.Equal(t, original, entries, "input must not be mutated")
}

func TestSortSessions_ByTime(t *testing.T) {
	entries := []models.SessionEntry{
		entry(outdoorRink, "2024-01-02", "9:00 AM"),
		entry(outdoorRink, "2024-01-01", "6:00 PM"),
		entry(outdoorRink, "2024-01-01", "10:00 AM"),
	}

	sorted := SortSessions(entries, models.SortByTime)

	assert.Equal(t, "10:00 AM", sorted[0].Session.Time)
	assert.Equal(t, "6:00 PM", sorted[1].Session.Time)
	assert.Equal(t, "2024-01-02", sorted[2].Session.Date)

	// Input order untouched.
	assert.Equal(t, "2024-01-02", entries[0].Session.Date)
}

func TestSortSessions_ByNameCaseInsensitive(t *testing.T) {
	entries := []models.SessionEntry{
		entry(indoorRink, "2024-01-01", "10:00 AM"), // "memorial arena"
		entry(outdoorRink, "2024-01-01", "10:00 AM"), // "City Hall Rink"
	}

	sorted := SortSessions(entries, models.SortByName)

	assert.Equal(t, "City Hall Rink", sorted[0].Rink.Name)
	assert.Equal(t, "memorial arena", sorted[1].Rink.Name)
}

func TestSortSessions_ByDistanceMissingLast(t *testing.T) {
	entries := []models.SessionEntry{
		entry(outdoorRink, "2024-01-01", "10:00 AM"), // no distance
		entry(withDistance(indoorRink, 12), "2024-01-01", "11:00 AM"),
		entry(withDistance(outdoorRink, 3), "2024-01-01", "12:00 PM"),
	}

	sorted := SortSessions(entries, models.SortByDistance)

	assert.Equal(t, 3.0, *sorted[0].Rink.DistanceKm)
	assert.Equal(t, 12.0, *sorted[1].Rink.DistanceKm)
	assert.Nil(t, sorted[2].Rink.DistanceKm)
}

func TestSortSessions_MalformedTimesSortFirst(t *testing.T) {
	entries := []models.SessionEntry{
		entry(outdoorRink, "2024-01-01", "10:00 AM"),
		entry(outdoorRink, "2024-01-01", "whenever"),
	}

	sorted := SortSessions(entries, models.SortByTime)

	// Unparseable times default to hour 0 and land first.
	assert.Equal(t, "whenever", sorted[0].Session.Time)
}
