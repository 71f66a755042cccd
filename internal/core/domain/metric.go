package domain

import (
	"time"

	"github.com/google/uuid"
)

// MetricWindow is a half-open period [From, To).
type MetricWindow struct {
	From time.Time
	To   time.Time
}

// Contains reports whether t falls inside the window.
func (w MetricWindow) Contains(t time.Time) bool {
	return !t.Before(w.From) && t.Before(w.To)
}

// MetricSnapshot aggregates campaign performance over a window. Spend and
// Revenue are in minor currency units.
type MetricSnapshot struct {
	CampaignID  uuid.UUID
	Window      MetricWindow
	Impressions int64
	Clicks      int64
	Conversions int64
	Spend       int64
	Revenue     int64
}

// HasHistory reports whether the snapshot carries any signal.
func (m MetricSnapshot) HasHistory() bool {
	return m.Spend > 0 || m.Impressions > 0
}

// CTR is clicks per impression.
func (m MetricSnapshot) CTR() float64 {
	if m.Impressions == 0 {
		return 0
	}
	return float64(m.Clicks) / float64(m.Impressions)
}

// ConversionRate is conversions per click.
func (m MetricSnapshot) ConversionRate() float64 {
	if m.Clicks == 0 {
		return 0
	}
	return float64(m.Conversions) / float64(m.Clicks)
}

// ROI is (revenue - spend) / spend.
func (m MetricSnapshot) ROI() float64 {
	if m.Spend == 0 {
		return 0
	}
	return float64(m.Revenue-m.Spend) / float64(m.Spend)
}

// Add merges o into m.
func (m MetricSnapshot) Add(o MetricSnapshot) MetricSnapshot {
	m.Impressions += o.Impressions
	m.Clicks += o.Clicks
	m.Conversions += o.Conversions
	m.Spend += o.Spend
	m.Revenue += o.Revenue
	return m
}
