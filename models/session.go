package models

// Session is one scheduled leisure-skate slot at a rink.
type Session struct {
	Activity string `json:"activity"`
	Date     string `json:"date"` // YYYY-MM-DD, lexically sortable
	Time     string `json:"time"` // e.g. "3:30 PM"
	AgeGroup string `json:"age_group"`
}

// SessionEntry pairs a session with the rink snapshot it was fetched
// from, including any attached distance. Entries are independent and
// never outlive one load cycle.
type SessionEntry struct {
	Rink    Rink    `json:"rink"`
	Session Session `json:"session"`
}

// SessionSet is what the aggregator hands to view renderers: the
// filtered, sorted entries plus the rink population they were drawn
// from (post distance/type exclusion).
type SessionSet struct {
	Sessions []SessionEntry `json:"sessions"`
	Rinks    []Rink         `json:"rinks"`
}
