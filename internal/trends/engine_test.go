package trends_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trackforge/bottrack/internal/domain"
	"github.com/trackforge/bottrack/internal/logger"
	"github.com/trackforge/bottrack/internal/trends"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

func TestIsValidWindow(t *testing.T) {
	tests := []struct {
		name   string
		window trends.Window
		want   bool
	}{
		{name: "all", window: trends.WindowAll, want: true},
		{name: "7day", window: trends.WindowLast7, want: true},
		{name: "30day", window: trends.WindowLast30, want: true},
		{name: "current_month", window: trends.WindowMonthToDate, want: true},
		{name: "unknown", window: trends.Window("fortnight"), want: false},
		{name: "empty", window: trends.Window(""), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, trends.IsValidWindow(tt.window))
		})
	}
}

func TestWindowStart(t *testing.T) {
	now := time.Date(2025, 3, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		window  trends.Window
		want    time.Time
		bounded bool
	}{
		{
			name:    "7day spans seven calendar days inclusive",
			window:  trends.WindowLast7,
			want:    time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC),
			bounded: true,
		},
		{
			name:    "30day spans thirty calendar days inclusive",
			window:  trends.WindowLast30,
			want:    time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC),
			bounded: true,
		},
		{
			name:    "current_month starts on the first",
			window:  trends.WindowMonthToDate,
			want:    time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			bounded: true,
		},
		{
			name:    "all is unbounded",
			window:  trends.WindowAll,
			bounded: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, bounded := trends.WindowStart(tt.window, now)
			assert.Equal(t, tt.bounded, bounded)
			if tt.bounded {
				assert.Equal(t, tt.want, start)
			}
		})
	}
}

func TestComputeDeltas_FirstObservationIsZero(t *testing.T) {
	engine := trends.NewEngine()

	points, anomalies := engine.ComputeDeltas([]trends.Observation{
		{EntityID: "bot-1", Period: "2025-03-01", Count: 100},
	})

	require.Len(t, points, 1)
	assert.Equal(t, int64(0), points[0].Delta)
	assert.Equal(t, int64(100), points[0].Count)
	assert.Empty(t, anomalies)
}

func TestComputeDeltas_GainsAcrossPeriods(t *testing.T) {
	engine := trends.NewEngine()

	points, anomalies := engine.ComputeDeltas([]trends.Observation{
		{EntityID: "bot-1", Period: "2025-03-01", Count: 100},
		{EntityID: "bot-1", Period: "2025-03-02", Count: 150},
		{EntityID: "bot-1", Period: "2025-03-03", Count: 210},
	})

	require.Len(t, points, 3)
	assert.Equal(t, int64(0), points[0].Delta)
	assert.Equal(t, int64(50), points[1].Delta)
	assert.Equal(t, int64(60), points[2].Delta)
	assert.Empty(t, anomalies)
}

func TestComputeDeltas_UnorderedInput(t *testing.T) {
	engine := trends.NewEngine()

	// Same series shuffled; grouping and per-entity sort restore order
	points, anomalies := engine.ComputeDeltas([]trends.Observation{
		{EntityID: "bot-1", Period: "2025-03-03", Count: 210},
		{EntityID: "bot-1", Period: "2025-03-01", Count: 100},
		{EntityID: "bot-1", Period: "2025-03-02", Count: 150},
	})

	require.Len(t, points, 3)
	assert.Equal(t, domain.Period("2025-03-01"), points[0].Period)
	assert.Equal(t, int64(50), points[1].Delta)
	assert.Equal(t, int64(60), points[2].Delta)
	assert.Empty(t, anomalies)
}

func TestComputeDeltas_NegativeClampedAndReported(t *testing.T) {
	engine := trends.NewEngine()

	points, anomalies := engine.ComputeDeltas([]trends.Observation{
		{EntityID: "bot-1", Period: "2025-03-01", Count: 100},
		{EntityID: "bot-1", Period: "2025-03-02", Count: 80},
		{EntityID: "bot-1", Period: "2025-03-03", Count: 95},
	})

	require.Len(t, points, 3)
	assert.Equal(t, int64(0), points[1].Delta, "negative delta clamped to zero")
	assert.Equal(t, int64(15), points[2].Delta, "next delta diffs against the raw count")

	require.Len(t, anomalies, 1)
	assert.Equal(t, "bot-1", anomalies[0].EntityID)
	assert.Equal(t, domain.Period("2025-03-02"), anomalies[0].Period)
	assert.Equal(t, int64(100), anomalies[0].Previous)
	assert.Equal(t, int64(80), anomalies[0].Current)
}

func TestComputeDeltas_SkipsMalformedPeriods(t *testing.T) {
	engine := trends.NewEngine()

	points, anomalies := engine.ComputeDeltas([]trends.Observation{
		{EntityID: "bot-1", Period: "2025-03-01", Count: 100},
		{EntityID: "bot-1", Period: "not-a-date", Count: 999},
		{EntityID: "bot-1", Period: "2025-03-02", Count: 150},
	})

	require.Len(t, points, 2)
	assert.Equal(t, int64(50), points[1].Delta)
	assert.Empty(t, anomalies)
}

func TestComputeDeltas_IndependentEntities(t *testing.T) {
	engine := trends.NewEngine()

	points, _ := engine.ComputeDeltas([]trends.Observation{
		{EntityID: "bot-b", Period: "2025-03-01", Count: 10},
		{EntityID: "bot-a", Period: "2025-03-01", Count: 500},
		{EntityID: "bot-b", Period: "2025-03-02", Count: 25},
		{EntityID: "bot-a", Period: "2025-03-02", Count: 510},
	})

	require.Len(t, points, 4)
	// Entities are emitted in id order, each with its own baseline
	assert.Equal(t, "bot-a", points[0].EntityID)
	assert.Equal(t, int64(0), points[0].Delta)
	assert.Equal(t, int64(10), points[1].Delta)
	assert.Equal(t, "bot-b", points[2].EntityID)
	assert.Equal(t, int64(0), points[2].Delta)
	assert.Equal(t, int64(15), points[3].Delta)
}

func TestDeltasForWindow_BoundaryBaseline(t *testing.T) {
	engine := trends.NewEngine()

	// Window opens at 2025-03-02: the pre-window count seeds the baseline so
	// the gain across the boundary is kept
	now := time.Date(2025, 3, 8, 12, 0, 0, 0, time.UTC)

	points, anomalies := engine.DeltasForWindow([]trends.Observation{
		{EntityID: "bot-1", Period: "2025-03-01", Count: 100},
		{EntityID: "bot-1", Period: "2025-03-02", Count: 150},
		{EntityID: "bot-1", Period: "2025-03-03", Count: 210},
	}, trends.WindowLast7, now)

	require.Len(t, points, 2)
	assert.Equal(t, domain.Period("2025-03-02"), points[0].Period)
	assert.Equal(t, int64(50), points[0].Delta, "first in-window point diffs against pre-window count")
	assert.Equal(t, int64(60), points[1].Delta)
	assert.Empty(t, anomalies)
}

func TestDeltasForWindow_NoPreWindowHistory(t *testing.T) {
	engine := trends.NewEngine()

	now := time.Date(2025, 3, 8, 12, 0, 0, 0, time.UTC)

	points, _ := engine.DeltasForWindow([]trends.Observation{
		{EntityID: "bot-1", Period: "2025-03-05", Count: 100},
		{EntityID: "bot-1", Period: "2025-03-06", Count: 130},
	}, trends.WindowLast7, now)

	require.Len(t, points, 2)
	assert.Equal(t, int64(0), points[0].Delta, "no baseline before the window")
	assert.Equal(t, int64(30), points[1].Delta)
}

func TestDeltasForWindow_CurrentMonth(t *testing.T) {
	engine := trends.NewEngine()

	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	points, _ := engine.DeltasForWindow([]trends.Observation{
		{EntityID: "bot-1", Period: "2025-02-27", Count: 90},
		{EntityID: "bot-1", Period: "2025-03-01", Count: 100},
		{EntityID: "bot-1", Period: "2025-03-05", Count: 140},
	}, trends.WindowMonthToDate, now)

	require.Len(t, points, 2)
	assert.Equal(t, domain.Period("2025-03-01"), points[0].Period)
	assert.Equal(t, int64(10), points[0].Delta)
	assert.Equal(t, int64(40), points[1].Delta)
}

func TestDeltasForWindow_AllEqualsComputeDeltas(t *testing.T) {
	engine := trends.NewEngine()

	obs := []trends.Observation{
		{EntityID: "bot-1", Period: "2025-03-01", Count: 100},
		{EntityID: "bot-1", Period: "2025-03-02", Count: 150},
	}

	windowed, _ := engine.DeltasForWindow(obs, trends.WindowAll, time.Now())
	full, _ := engine.ComputeDeltas(obs)

	assert.Equal(t, full, windowed)
}

func TestTotals(t *testing.T) {
	engine := trends.NewEngine()

	points, _ := engine.ComputeDeltas([]trends.Observation{
		{EntityID: "bot-a", Period: "2025-03-01", Count: 100},
		{EntityID: "bot-a", Period: "2025-03-02", Count: 150},
		{EntityID: "bot-b", Period: "2025-03-01", Count: 10},
		{EntityID: "bot-b", Period: "2025-03-02", Count: 40},
	})

	totals := engine.Totals(points)

	require.Len(t, totals, 2)
	assert.Equal(t, domain.Period("2025-03-01"), totals[0].Period)
	assert.Equal(t, int64(0), totals[0].Total, "both first observations contribute zero")
	assert.Equal(t, domain.Period("2025-03-02"), totals[1].Period)
	assert.Equal(t, int64(80), totals[1].Total)
}

func TestSummarize_OrderedByTotalGain(t *testing.T) {
	engine := trends.NewEngine()

	points, _ := engine.ComputeDeltas([]trends.Observation{
		{EntityID: "bot-slow", Period: "2025-03-01", Count: 100},
		{EntityID: "bot-slow", Period: "2025-03-02", Count: 110},
		{EntityID: "bot-fast", Period: "2025-03-01", Count: 10},
		{EntityID: "bot-fast", Period: "2025-03-02", Count: 200},
	})

	summaries := engine.Summarize(points)

	require.Len(t, summaries, 2)
	assert.Equal(t, "bot-fast", summaries[0].EntityID)
	assert.Equal(t, int64(190), summaries[0].TotalGain)
	assert.Equal(t, int64(200), summaries[0].Latest)
	assert.Equal(t, "bot-slow", summaries[1].EntityID)
	assert.Equal(t, int64(10), summaries[1].TotalGain)
	require.Len(t, summaries[0].Points, 2)
}

func TestSummarize_TieBrokenByEntityID(t *testing.T) {
	engine := trends.NewEngine()

	points, _ := engine.ComputeDeltas([]trends.Observation{
		{EntityID: "bot-b", Period: "2025-03-01", Count: 5},
		{EntityID: "bot-a", Period: "2025-03-01", Count: 5},
	})

	summaries := engine.Summarize(points)

	require.Len(t, summaries, 2)
	assert.Equal(t, "bot-a", summaries[0].EntityID)
	assert.Equal(t, "bot-b", summaries[1].EntityID)
}
