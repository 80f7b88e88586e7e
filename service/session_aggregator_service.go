package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/mfiume/toronto-free-skates/api/cityrec"
	"github.com/mfiume/toronto-free-skates/config"
	"github.com/mfiume/toronto-free-skates/dao"
	"github.com/mfiume/toronto-free-skates/models"
	"github.com/mfiume/toronto-free-skates/util"
)

// ScheduleResult carries one rink's schedule fetch outcome into the
// join. A non-nil Err means that rink contributes nothing; it never
// fails the batch.
type ScheduleResult struct {
	Rink     models.Rink
	Sessions []models.Session
	Err      error
}

// SessionAggregatorService orchestrates the catalog, per-rink schedule
// fetches and filtering into one consistent result set.
type SessionAggregatorService struct {
	catalogDao   *dao.RinkCatalogDAO
	cityRecAPI   cityrec.CityRecAPI
	fetchTimeout time.Duration
}

// NewSessionAggregatorService constructs a new aggregator with dependencies.
func NewSessionAggregatorService(
	catalogDao *dao.RinkCatalogDAO,
	cityRecAPI cityrec.CityRecAPI,
) *SessionAggregatorService {
	return &SessionAggregatorService{
		catalogDao:   catalogDao,
		cityRecAPI:   cityRecAPI,
		fetchTimeout: config.SCHEDULE_FETCH_TIMEOUT_SECONDS * time.Second,
	}
}

// SetFetchTimeout overrides the per-rink schedule fetch timeout.
func (s *SessionAggregatorService) SetFetchTimeout(d time.Duration) {
	s.fetchTimeout = d
}

// FetchAllSessions runs the whole pipeline: catalog, distance attach,
// distance/type pre-filter, concurrent schedule fetches, flatten,
// filter and sort. It always returns a structurally valid set; every
// failure along the way degrades to an empty contribution.
func (s *SessionAggregatorService) FetchAllSessions(
	ctx context.Context,
	ref *models.Location,
	params models.FilterParams,
) models.SessionSet {
	params = params.Normalize()

	rinks := s.catalogDao.GetRinks(ctx)
	if len(rinks) == 0 {
		return models.SessionSet{Sessions: []models.SessionEntry{}, Rinks: []models.Rink{}}
	}

	rinks = selectRinks(rinks, ref, params)

	log.Printf("[SessionAggregatorService] fetching schedules for %d rinks", len(rinks))
	results := s.fetchSchedules(ctx, rinks)

	entries := flattenResults(results)
	entries = FilterSessions(entries, params, time.Now())
	entries = SortSessions(entries, params.SortBy)

	log.Printf("[SessionAggregatorService] aggregated %d sessions", len(entries))
	return models.SessionSet{Sessions: entries, Rinks: rinks}
}

// FetchRinks runs the catalog and rink-selection stages only, for
// callers that drive a rink picker without needing sessions.
func (s *SessionAggregatorService) FetchRinks(
	ctx context.Context,
	ref *models.Location,
	params models.FilterParams,
) []models.Rink {
	params = params.Normalize()
	return selectRinks(s.catalogDao.GetRinks(ctx), ref, params)
}

// selectRinks attaches distances and drops rinks outside the distance
// and type constraints. This happens before any schedule fetch, so an
// excluded rink never costs a network call. Distance is attached even
// when AnyDistance is set: it is still wanted for display and sort.
func selectRinks(rinks []models.Rink, ref *models.Location, params models.FilterParams) []models.Rink {
	selected := make([]models.Rink, 0, len(rinks))
	for _, rink := range rinks {
		if ref != nil {
			d := util.DistanceKm(ref.Lat, ref.Lng, rink.Lat, rink.Lng)
			rink.DistanceKm = &d
			if !params.AnyDistance && d > params.MaxDistanceKm {
				continue
			}
		}
		if params.RinkType != "" && rink.Type != params.RinkType {
			continue
		}
		selected = append(selected, rink)
	}
	return selected
}

// fetchSchedules fans out one schedule fetch per rink and waits for all
// of them. Each call carries its own timeout; one slow or failing rink
// reports an error result without blocking or cancelling its siblings.
func (s *SessionAggregatorService) fetchSchedules(ctx context.Context, rinks []models.Rink) []ScheduleResult {
	results := make([]ScheduleResult, len(rinks))

	var wg sync.WaitGroup
	for i, rink := range rinks {
		wg.Add(1)
		go func(i int, rink models.Rink) {
			defer wg.Done()

			fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
			defer cancel()

			sessions, err := s.cityRecAPI.GetSchedule(fetchCtx, rink.ID)
			results[i] = ScheduleResult{Rink: rink, Sessions: sessions, Err: err}
		}(i, rink)
	}
	wg.Wait()

	return results
}

// flattenResults pairs every fetched session with its rink snapshot.
// Failed fetches are logged and contribute nothing.
func flattenResults(results []ScheduleResult) []models.SessionEntry {
	var entries []models.SessionEntry
	for _, result := range results {
		if result.Err != nil {
			log.Printf("[SessionAggregatorService] schedule fetch failed for rink %d (%s): %v",
				result.Rink.ID, result.Rink.Name, result.Err)
			continue
		}
		for _, session := range result.Sessions {
			entries = append(entries, models.SessionEntry{Rink: result.Rink, Session: session})
		}
	}
	return entries
}
