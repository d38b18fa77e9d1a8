package protocol

import (
	"strings"
	"time"
)

const (
	OutfitSourceUser      = "user"
	OutfitSourceCommunity = "community"
)

var OutfitOccasions = []string{
	"casual", "work", "formal", "sport", "evening",
	"weekend", "wedding", "travel", "date", "other",
}

type Outfit struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	Items []OutfitItem `json:"items,omitempty"`

	Occasion  string   `json:"occasion"`
	StyleTags []string `json:"style_tags,omitempty"`
	Source    string   `json:"source"`
	Rating    *int     `json:"rating,omitempty"`

	TimesWorn int    `json:"times_worn"`
	LastWorn  string `json:"last_worn,omitempty"`
	Favorite  bool   `json:"favorite"`

	MinTemperature *int `json:"min_temperature,omitempty"`
	MaxTemperature *int `json:"max_temperature,omitempty"`

	CreatedUTC time.Time `json:"created_utc"`
	UpdatedUTC time.Time `json:"updated_utc"`
}

// OutfitItem is one clothing item slotted into an outfit; Position orders the
// layers top to bottom the way the original composer renders them.
type OutfitItem struct {
	ItemID   string `json:"item_id"`
	Name     string `json:"name,omitempty"`
	Category string `json:"category,omitempty"`
	Color    string `json:"color,omitempty"`
	Status   string `json:"status,omitempty"`
	Position int    `json:"position"`
}

type CreateOutfitRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	ItemIDs     []string `json:"item_ids"`
	Occasion    string   `json:"occasion,omitempty"`
	StyleTags   []string `json:"style_tags,omitempty"`
	Rating      *int     `json:"rating,omitempty"`

	MinTemperature *int `json:"min_temperature,omitempty"`
	MaxTemperature *int `json:"max_temperature,omitempty"`
}

type UpdateOutfitRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	ItemIDs     []string `json:"item_ids,omitempty"`
	Occasion    *string  `json:"occasion,omitempty"`
	StyleTags   []string `json:"style_tags,omitempty"`
	Rating      *int     `json:"rating,omitempty"`
	Favorite    *bool    `json:"favorite,omitempty"`

	MinTemperature *int `json:"min_temperature,omitempty"`
	MaxTemperature *int `json:"max_temperature,omitempty"`
}

type OutfitResponse struct {
	Outfit Outfit `json:"outfit"`
}

type OutfitListResponse struct {
	Outfits []Outfit `json:"outfits"`
	Total   int      `json:"total"`
}

func IsValidOutfitOccasion(occasion string) bool {
	normalized := strings.ToLower(strings.TrimSpace(occasion))
	for _, o := range OutfitOccasions {
		if o == normalized {
			return true
		}
	}
	return false
}

func IsValidOutfitRating(rating int) bool {
	return rating >= 1 && rating <= 5
}
