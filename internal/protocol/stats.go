package protocol

// WardrobeStats feeds the dashboard counters and the stats page.
type WardrobeStats struct {
	TotalItems    int `json:"total_items"`
	TotalOutfits  int `json:"total_outfits"`
	FavoriteItems int `json:"favorite_items"`
	PlannedEvents int `json:"planned_events"`

	ByCategory map[string]int `json:"by_category,omitempty"`
	ByColor    map[string]int `json:"by_color,omitempty"`
	BySeason   map[string]int `json:"by_season,omitempty"`
	ByStatus   map[string]int `json:"by_status,omitempty"`

	MostWorn        []WornItemStat `json:"most_worn,omitempty"`
	RecentAdditions []ClothingItem `json:"recent_additions,omitempty"`

	WardrobeLimit  int `json:"wardrobe_limit"`
	RemainingSlots int `json:"remaining_slots"`
}

type WornItemStat struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	TimesWorn int    `json:"times_worn"`
}

type StatsResponse struct {
	Stats WardrobeStats `json:"stats"`
}

type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}
