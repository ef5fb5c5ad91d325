package models

import "time"

// FeedRecord is one normalized status-feed entry.
type FeedRecord struct {
	Title        string
	StartTime    time.Time
	Description  string
	IncidentType string // lowercased, empty when the entry has no Type: line
	Components   []string
}
