package protocol

// LaundryOverview summarizes the wash state of the whole wardrobe for the
// dashboard and the laundry API.
type LaundryOverview struct {
	NeedsWash       []LaundryItem `json:"needs_wash,omitempty"`
	ApproachingWash []LaundryItem `json:"approaching_wash,omitempty"`
	Washing         []LaundryItem `json:"washing,omitempty"`
	Drying          []LaundryItem `json:"drying,omitempty"`
	DryCleaning     []LaundryItem `json:"dry_cleaning,omitempty"`
}

type LaundryItem struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Category           string `json:"category,omitempty"`
	Status             string `json:"status"`
	WearsSinceWash     int    `json:"wears_since_wash"`
	MaxWearsBeforeWash int    `json:"max_wears_before_wash"`
	CareType           string `json:"care_type,omitempty"`
	LastWashed         string `json:"last_washed,omitempty"`
	ReadyUTC           string `json:"ready_utc,omitempty"`
}

type LaundryOverviewResponse struct {
	Overview LaundryOverview `json:"overview"`
}
