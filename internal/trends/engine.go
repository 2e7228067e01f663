package trends

import (
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/trackforge/bottrack/internal/domain"
	"github.com/trackforge/bottrack/internal/logger"
)

// Window selects which observation periods participate in delta computation.
type Window string

const (
	WindowAll         Window = "all"
	WindowLast7       Window = "7day"
	WindowLast30      Window = "30day"
	WindowMonthToDate Window = "current_month"
)

// IsValidWindow reports whether w names a supported window.
func IsValidWindow(w Window) bool {
	switch w {
	case WindowAll, WindowLast7, WindowLast30, WindowMonthToDate:
		return true
	}
	return false
}

// Observation is a single (entity, period) metric count.
type Observation struct {
	EntityID string
	Period   domain.Period
	Count    int64
}

// DeltaPoint is an observation annotated with its period-over-period gain.
type DeltaPoint struct {
	EntityID string
	Period   domain.Period
	Count    int64
	Delta    int64
}

// Anomaly records a raw negative delta that was clamped to zero.
type Anomaly struct {
	EntityID string
	Period   domain.Period
	Previous int64
	Current  int64
}

// PeriodTotal is the summed delta across all entities for one period.
type PeriodTotal struct {
	Period domain.Period
	Total  int64
}

// EntitySummary aggregates an entity's gains over a window.
type EntitySummary struct {
	EntityID  string
	TotalGain int64
	Latest    int64
	Points    []DeltaPoint
}

type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// WindowStart returns the inclusive lower bound for a window relative to now.
// The second return value is false for WindowAll, which has no bound.
func WindowStart(w Window, now time.Time) (time.Time, bool) {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch w {
	case WindowLast7:
		return day.AddDate(0, 0, -6), true
	case WindowLast30:
		return day.AddDate(0, 0, -29), true
	case WindowMonthToDate:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), true
	default:
		return time.Time{}, false
	}
}

// ComputeDeltas computes per-entity period-over-period gains across the full
// history. Observations are grouped by entity and ordered by period; each
// entity's first observation gets a delta of zero. Raw negative deltas are
// clamped to zero and reported as anomalies.
func (e *Engine) ComputeDeltas(obs []Observation) ([]DeltaPoint, []Anomaly) {
	return e.computeDeltas(obs, time.Time{}, false)
}

// DeltasForWindow computes deltas restricted to periods on or after the
// window's start. The first in-window observation of each entity is diffed
// against that entity's latest pre-window count, so a gain that straddles the
// boundary is not lost.
func (e *Engine) DeltasForWindow(obs []Observation, w Window, now time.Time) ([]DeltaPoint, []Anomaly) {
	start, bounded := WindowStart(w, now)
	return e.computeDeltas(obs, start, bounded)
}

func (e *Engine) computeDeltas(obs []Observation, start time.Time, bounded bool) ([]DeltaPoint, []Anomaly) {
	// PERIOD_LAYOUT orders lexicographically, so periods compare as strings
	var startPeriod domain.Period
	if bounded {
		startPeriod = domain.PeriodOf(start)
	}

	byEntity := make(map[string][]Observation)
	order := make([]string, 0)
	for _, o := range obs {
		if !domain.IsValidPeriod(o.Period) {
			continue
		}
		if _, ok := byEntity[o.EntityID]; !ok {
			order = append(order, o.EntityID)
		}
		byEntity[o.EntityID] = append(byEntity[o.EntityID], o)
	}
	sort.Strings(order)

	var points []DeltaPoint
	var anomalies []Anomaly
	for _, id := range order {
		series := byEntity[id]
		sort.Slice(series, func(i, j int) bool { return series[i].Period < series[j].Period })

		// prev < 0 means no baseline yet: delta of the next point is zero
		prev := int64(-1)
		for _, o := range series {
			if bounded && o.Period < startPeriod {
				// Pre-window counts only seed the baseline
				prev = o.Count
				continue
			}
			var delta int64
			if prev >= 0 {
				delta = o.Count - prev
			}
			if delta < 0 {
				anomalies = append(anomalies, Anomaly{
					EntityID: id,
					Period:   o.Period,
					Previous: prev,
					Current:  o.Count,
				})
				delta = 0
			}
			points = append(points, DeltaPoint{
				EntityID: id,
				Period:   o.Period,
				Count:    o.Count,
				Delta:    delta,
			})
			prev = o.Count
		}
	}
	return points, anomalies
}

// Totals sums deltas per period across all entities, ordered by period.
func (e *Engine) Totals(points []DeltaPoint) []PeriodTotal {
	sums := make(map[domain.Period]int64)
	for _, p := range points {
		sums[p.Period] += p.Delta
	}
	periods := make([]domain.Period, 0, len(sums))
	for p := range sums {
		periods = append(periods, p)
	}
	sort.Slice(periods, func(i, j int) bool { return periods[i] < periods[j] })

	out := make([]PeriodTotal, 0, len(periods))
	for _, p := range periods {
		out = append(out, PeriodTotal{Period: p, Total: sums[p]})
	}
	return out
}

// Summarize folds delta points into per-entity summaries sorted by total gain
// descending, ties broken by entity id.
func (e *Engine) Summarize(points []DeltaPoint) []EntitySummary {
	byEntity := make(map[string]*EntitySummary)
	order := make([]string, 0)
	for _, p := range points {
		s, ok := byEntity[p.EntityID]
		if !ok {
			s = &EntitySummary{EntityID: p.EntityID}
			byEntity[p.EntityID] = s
			order = append(order, p.EntityID)
		}
		s.TotalGain += p.Delta
		s.Latest = p.Count
		s.Points = append(s.Points, p)
	}

	out := make([]EntitySummary, 0, len(order))
	for _, id := range order {
		out = append(out, *byEntity[id])
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalGain != out[j].TotalGain {
			return out[i].TotalGain > out[j].TotalGain
		}
		return out[i].EntityID < out[j].EntityID
	})
	return out
}

// LogAnomalies emits a warning per clamped delta. Kept separate from the pure
// computation so tests can assert on the returned anomalies directly.
func LogAnomalies(anomalies []Anomaly) {
	for _, a := range anomalies {
		logger.Warn("negative metric delta clamped to zero",
			zap.String("entityID", a.EntityID),
			zap.String("period", string(a.Period)),
			zap.Int64("previous", a.Previous),
			zap.Int64("current", a.Current))
	}
}
