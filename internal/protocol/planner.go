package protocol

import (
	"strings"
	"time"
)

var EventOccasionTypes = []string{
	"work", "casual", "formal", "party", "date", "sports", "travel", "other",
}

type Event struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Date         string `json:"date"`
	Time         string `json:"time,omitempty"`
	OccasionType string `json:"occasion_type"`
	Location     string `json:"location,omitempty"`
	Notes        string `json:"notes,omitempty"`

	OutfitID   string `json:"outfit_id,omitempty"`
	OutfitName string `json:"outfit_name,omitempty"`

	IsCompleted bool `json:"is_completed"`

	CreatedUTC time.Time `json:"created_utc"`
	UpdatedUTC time.Time `json:"updated_utc"`
}

// OutfitPlanning pins an outfit onto a calendar date.
type OutfitPlanning struct {
	ID         string `json:"id"`
	OutfitID   string `json:"outfit_id"`
	OutfitName string `json:"outfit_name,omitempty"`

	Date             string `json:"date"`
	EventName        string `json:"event_name,omitempty"`
	EventDescription string `json:"event_description,omitempty"`
	Location         string `json:"location,omitempty"`
	Notes            string `json:"notes,omitempty"`

	CreatedUTC time.Time `json:"created_utc"`
	UpdatedUTC time.Time `json:"updated_utc"`
}

type CreateEventRequest struct {
	Title        string `json:"title"`
	Date         string `json:"date"`
	Time         string `json:"time,omitempty"`
	OccasionType string `json:"occasion_type,omitempty"`
	Location     string `json:"location,omitempty"`
	Notes        string `json:"notes,omitempty"`
	OutfitID     string `json:"outfit_id,omitempty"`
}

type UpdateEventRequest struct {
	Title        *string `json:"title,omitempty"`
	Date         *string `json:"date,omitempty"`
	Time         *string `json:"time,omitempty"`
	OccasionType *string `json:"occasion_type,omitempty"`
	Location     *string `json:"location,omitempty"`
	Notes        *string `json:"notes,omitempty"`
	OutfitID     *string `json:"outfit_id,omitempty"`
	IsCompleted  *bool   `json:"is_completed,omitempty"`
}

type CreatePlanningRequest struct {
	OutfitID         string `json:"outfit_id"`
	Date             string `json:"date"`
	EventName        string `json:"event_name,omitempty"`
	EventDescription string `json:"event_description,omitempty"`
	Location         string `json:"location,omitempty"`
	Notes            string `json:"notes,omitempty"`
}

type EventResponse struct {
	Event Event `json:"event"`
}

type EventListResponse struct {
	Events []Event `json:"events"`
	Total  int     `json:"total"`
}

type PlanningResponse struct {
	Planning OutfitPlanning `json:"planning"`
}

type PlanningListResponse struct {
	Plannings []OutfitPlanning `json:"plannings"`
	Total     int              `json:"total"`
}

func IsValidEventOccasionType(occasion string) bool {
	normalized := strings.ToLower(strings.TrimSpace(occasion))
	for _, o := range EventOccasionTypes {
		if o == normalized {
			return true
		}
	}
	return false
}

// IsValidPlannerDate accepts the calendar date format used across the planner
// API and the store (YYYY-MM-DD).
func IsValidPlannerDate(date string) bool {
	_, err := time.Parse("2006-01-02", strings.TrimSpace(date))
	return err == nil
}
