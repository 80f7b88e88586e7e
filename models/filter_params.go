package models

import "net/url"
import "strconv"

// Date filter modes.
const (
	DateFilterAny      = "any"
	DateFilterToday    = "today"
	DateFilterTomorrow = "tomorrow"
	DateFilterPick     = "pick"
)

// Time-of-day buckets.
const (
	TimeOfDayAll       = "all"
	TimeOfDayMorning   = "morning"   // hour in [0,12)
	TimeOfDayAfternoon = "afternoon" // hour in [12,17)
	TimeOfDayEvening   = "evening"   // hour in [17,24)
)

// Upcoming/past selection.
const (
	TimeFilterUpcoming = "upcoming"
	TimeFilterAll      = "all"
	TimeFilterPast     = "past"
)

// Sort orders.
const (
	SortByTime     = "time"
	SortByName     = "name"
	SortByDistance = "distance"
)

// Distance bounds applied by Normalize.
const (
	MinDistanceKm     = 1.0
	MaxDistanceKm     = 50.0
	DefaultDistanceKm = 10.0
)

// FilterParams is the recognized set of filter options. When
// AnyDistance is true MaxDistanceKm is ignored entirely for exclusion;
// distance may still be computed and attached for display and sort.
type FilterParams struct {
	MaxDistanceKm float64
	AnyDistance   bool
	DateFilter    string
	SelectedDate  string // YYYY-MM-DD, only honored when DateFilter == pick
	TimeOfDay     string
	RinkType      RinkType // empty means both types
	TimeFilter    string
	SortBy        string
}

// DefaultFilterParams returns the configuration a first-time visitor
// would see.
func DefaultFilterParams() FilterParams {
	return FilterParams{
		MaxDistanceKm: DefaultDistanceKm,
		AnyDistance:   false,
		DateFilter:    DateFilterAny,
		TimeOfDay:     TimeOfDayAll,
		RinkType:      "",
		TimeFilter:    TimeFilterUpcoming,
		SortBy:        SortByTime,
	}
}

// FilterParamsFromValues parses a configuration out of URL query
// values, the same place the hosted app persists it. Unknown or
// malformed values fall back to defaults via Normalize.
func FilterParamsFromValues(vals url.Values) FilterParams {
	p := DefaultFilterParams()

	if v := vals.Get("maxDistance"); v != "" {
		if d, err := strconv.ParseFloat(v, 64); err == nil {
			p.MaxDistanceKm = d
		}
	}
	if v := vals.Get("anyDistance"); v != "" {
		p.AnyDistance, _ = strconv.ParseBool(v)
	}
	if v := vals.Get("dateFilter"); v != "" {
		p.DateFilter = v
	}
	if v := vals.Get("selectedDate"); v != "" {
		p.SelectedDate = v
	}
	if v := vals.Get("timeOfDay"); v != "" {
		p.TimeOfDay = v
	}
	if v := vals.Get("rinkType"); v != "" {
		p.RinkType = RinkType(v)
	}
	if v := vals.Get("timeFilter"); v != "" {
		p.TimeFilter = v
	}
	if v := vals.Get("sortBy"); v != "" {
		p.SortBy = v
	}

	return p.Normalize()
}

// Normalize clamps out-of-range values and coerces unknown enum values
// to their defaults so nothing unchecked enters the pipeline.
func (p FilterParams) Normalize() FilterParams {
	if p.MaxDistanceKm < MinDistanceKm {
		p.MaxDistanceKm = MinDistanceKm
	}
	if p.MaxDistanceKm > MaxDistanceKm {
		p.MaxDistanceKm = MaxDistanceKm
	}

	switch p.DateFilter {
	case DateFilterAny, DateFilterToday, DateFilterTomorrow, DateFilterPick:
	default:
		p.DateFilter = DateFilterAny
	}

	switch p.TimeOfDay {
	case TimeOfDayAll, TimeOfDayMorning, TimeOfDayAfternoon, TimeOfDayEvening:
	default:
		p.TimeOfDay = TimeOfDayAll
	}

	switch p.RinkType {
	case "", RinkTypeIndoor, RinkTypeOutdoor:
	default:
		p.RinkType = ""
	}

	switch p.TimeFilter {
	case TimeFilterUpcoming, TimeFilterAll, TimeFilterPast:
	default:
		p.TimeFilter = TimeFilterUpcoming
	}

	switch p.SortBy {
	case SortByTime, SortByName, SortByDistance:
	default:
		p.SortBy = SortByTime
	}

	return p
}

// ToValues serializes the configuration back into URL query values.
// Defaults are omitted to keep shared URLs short.
func (p FilterParams) ToValues() url.Values {
	q := url.Values{}
	def := DefaultFilterParams()

	if p.MaxDistanceKm != def.MaxDistanceKm {
		q.Set("maxDistance", ftoa(p.MaxDistanceKm))
	}
	if p.AnyDistance {
		q.Set("anyDistance", "true")
	}
	if p.DateFilter != def.DateFilter {
		q.Set("dateFilter", p.DateFilter)
	}
	if p.SelectedDate != "" {
		q.Set("selectedDate", p.SelectedDate)
	}
	if p.TimeOfDay != def.TimeOfDay {
		q.Set("timeOfDay", p.TimeOfDay)
	}
	if p.RinkType != "" {
		q.Set("rinkType", string(p.RinkType))
	}
	if p.TimeFilter != def.TimeFilter {
		q.Set("timeFilter", p.TimeFilter)
	}
	if p.SortBy != def.SortBy {
		q.Set("sortBy", p.SortBy)
	}

	return q
}

// lightweight helper (no fmt.Sprintf allocations)
func ftoa(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
