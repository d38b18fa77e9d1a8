package protocol

import "time"

type ClothingCategory struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ParentID string `json:"parent_id,omitempty"`
	Icon     string `json:"icon,omitempty"`
	IsCustom bool   `json:"is_custom,omitempty"`
}

type ClothingItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CategoryID  string `json:"category_id,omitempty"`
	Category    string `json:"category,omitempty"`

	ImagePath string `json:"image_path,omitempty"`
	Color     string `json:"color"`
	ColorHex  string `json:"color_hex,omitempty"`
	Pattern   string `json:"pattern,omitempty"`

	Material string `json:"material,omitempty"`
	Brand    string `json:"brand,omitempty"`

	Seasons   []string `json:"seasons,omitempty"`
	Occasions []string `json:"occasions,omitempty"`
	Tags      []string `json:"tags,omitempty"`

	PurchaseDate     string   `json:"purchase_date,omitempty"`
	PurchasePrice    *float64 `json:"purchase_price,omitempty"`
	PurchaseLocation string   `json:"purchase_location,omitempty"`
	IsSecondhand     bool     `json:"is_secondhand,omitempty"`

	Status    string `json:"status"`
	Condition string `json:"condition"`

	TimesWorn int    `json:"times_worn"`
	LastWorn  string `json:"last_worn,omitempty"`
	Favorite  bool   `json:"favorite"`

	WearsSinceWash     int    `json:"wears_since_wash"`
	LastWashed         string `json:"last_washed,omitempty"`
	MaxWearsBeforeWash int    `json:"max_wears_before_wash"`
	CareType           string `json:"care_type"`
	DryingTimeHours    int    `json:"drying_time_hours"`

	CreatedUTC time.Time `json:"created_utc"`
	UpdatedUTC time.Time `json:"updated_utc"`
}

type CreateItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CategoryID  string `json:"category_id,omitempty"`

	ImagePath string `json:"image_path,omitempty"`
	Color     string `json:"color"`
	ColorHex  string `json:"color_hex,omitempty"`
	Pattern   string `json:"pattern,omitempty"`

	Material string `json:"material,omitempty"`
	Brand    string `json:"brand,omitempty"`

	Seasons   []string `json:"seasons,omitempty"`
	Occasions []string `json:"occasions,omitempty"`
	Tags      []string `json:"tags,omitempty"`

	PurchaseDate     string   `json:"purchase_date,omitempty"`
	PurchasePrice    *float64 `json:"purchase_price,omitempty"`
	PurchaseLocation string   `json:"purchase_location,omitempty"`
	IsSecondhand     bool     `json:"is_secondhand,omitempty"`

	Condition string `json:"condition,omitempty"`
	CareType  string `json:"care_type,omitempty"`

	MaxWearsBeforeWash int `json:"max_wears_before_wash,omitempty"`
	DryingTimeHours    int `json:"drying_time_hours,omitempty"`
}

// UpdateItemRequest carries only the fields present in the request body; nil
// pointers mean "leave unchanged".
type UpdateItemRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	CategoryID  *string `json:"category_id,omitempty"`

	ImagePath *string `json:"image_path,omitempty"`
	Color     *string `json:"color,omitempty"`
	ColorHex  *string `json:"color_hex,omitempty"`
	Pattern   *string `json:"pattern,omitempty"`

	Material *string `json:"material,omitempty"`
	Brand    *string `json:"brand,omitempty"`

	Seasons   []string `json:"seasons,omitempty"`
	Occasions []string `json:"occasions,omitempty"`
	Tags      []string `json:"tags,omitempty"`

	Status    *string `json:"status,omitempty"`
	Condition *string `json:"condition,omitempty"`
	CareType  *string `json:"care_type,omitempty"`

	Favorite *bool `json:"favorite,omitempty"`

	MaxWearsBeforeWash *int `json:"max_wears_before_wash,omitempty"`
	DryingTimeHours    *int `json:"drying_time_hours,omitempty"`
}

type ItemResponse struct {
	Item ClothingItem `json:"item"`
}

type ItemListResponse struct {
	Items []ClothingItem `json:"items"`
	Total int            `json:"total"`
}

type CategoryListResponse struct {
	Categories []ClothingCategory `json:"categories"`
}
