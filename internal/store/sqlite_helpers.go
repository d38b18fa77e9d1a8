package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/tailora-app/tailora/internal/protocol"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

func parseUTC(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func encodeJSONList(values []string) string {
	if len(values) == 0 {
		return "[]"
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "[]"
	}
	return string(data)
}

func decodeJSONList(data string) []string {
	var out []string
	_ = json.Unmarshal([]byte(data), &out)
	return out
}

func nullableString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullableInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func nullableFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func stringValue(v sql.NullString) string {
	if !v.Valid {
		return ""
	}
	return v.String
}

func intPtrValue(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

func floatPtrValue(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

const itemColumns = `i.id, i.name, i.description, i.category_id, c.name,
	i.image_path, i.color, i.color_hex, i.pattern, i.material, i.brand,
	i.seasons_json, i.occasions_json, i.tags_json,
	i.purchase_date, i.purchase_price, i.purchase_location, i.is_secondhand,
	i.status, i.condition, i.times_worn, i.last_worn, i.favorite,
	i.wears_since_wash, i.last_washed, i.max_wears_before_wash, i.care_type, i.drying_time_hours,
	i.created_utc, i.updated_utc`

func scanItem(scanner interface{ Scan(dest ...any) error }) (protocol.ClothingItem, error) {
	var (
		item                                        protocol.ClothingItem
		description, categoryID, categoryName       sql.NullString
		imagePath, colorHex, pattern                sql.NullString
		material, brand                             sql.NullString
		seasonsJSON, occasionsJSON, tagsJSON        string
		purchaseDate, purchaseLocation              sql.NullString
		purchasePrice                               sql.NullFloat64
		isSecondhand, favorite                      int
		lastWorn, lastWashed                        sql.NullString
		createdUTC, updatedUTC                      string
	)

	if err := scanner.Scan(
		&item.ID, &item.Name, &description, &categoryID, &categoryName,
		&imagePath, &item.Color, &colorHex, &pattern, &material, &brand,
		&seasonsJSON, &occasionsJSON, &tagsJSON,
		&purchaseDate, &purchasePrice, &purchaseLocation, &isSecondhand,
		&item.Status, &item.Condition, &item.TimesWorn, &lastWorn, &favorite,
		&item.WearsSinceWash, &lastWashed, &item.MaxWearsBeforeWash, &item.CareType, &item.DryingTimeHours,
		&createdUTC, &updatedUTC,
	); err != nil {
		return protocol.ClothingItem{}, err
	}

	item.Description = stringValue(description)
	item.CategoryID = stringValue(categoryID)
	item.Category = stringValue(categoryName)
	item.ImagePath = stringValue(imagePath)
	item.ColorHex = stringValue(colorHex)
	item.Pattern = stringValue(pattern)
	item.Material = stringValue(material)
	item.Brand = stringValue(brand)
	item.Seasons = decodeJSONList(seasonsJSON)
	item.Occasions = decodeJSONList(occasionsJSON)
	item.Tags = decodeJSONList(tagsJSON)
	item.PurchaseDate = stringValue(purchaseDate)
	item.PurchasePrice = floatPtrValue(purchasePrice)
	item.PurchaseLocation = stringValue(purchaseLocation)
	item.IsSecondhand = isSecondhand != 0
	item.LastWorn = stringValue(lastWorn)
	item.Favorite = favorite != 0
	item.LastWashed = stringValue(lastWashed)
	item.CreatedUTC = parseUTC(createdUTC)
	item.UpdatedUTC = parseUTC(updatedUTC)
	return item, nil
}
