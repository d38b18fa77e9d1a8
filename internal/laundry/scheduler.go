// Package laundry tracks wear/wash cycles and tells the rest of the app which
// items need attention before they can be worn again.
package laundry

import (
	"strings"
	"time"

	"github.com/tailora-app/tailora/internal/protocol"
)

// DefaultThreshold is the wear count an item may reach before it needs a wash
// when nothing more specific is known about it.
const DefaultThreshold = 3

// washThresholds maps category/name substrings (lowercase) to recommended
// wears-before-wash counts. First match wins when iterating the ordered keys.
var washThresholds = map[string]int{
	// intimates: wash after (almost) every wear
	"underwear": 1,
	"socks":     1,
	"briefs":    1,
	"boxers":    1,
	"bra":       2,
	"lingerie":  1,

	// tops
	"t-shirt":  2,
	"tee":      2,
	"shirt":    2,
	"blouse":   2,
	"tank top": 1,
	"polo":     2,

	// active wear
	"sportswear": 1,
	"gym":        1,
	"workout":    1,
	"activewear": 1,

	// bottoms
	"pants":    4,
	"trousers": 4,
	"jeans":    6,
	"shorts":   3,
	"skirt":    3,

	// dresses
	"dress": 2,
	"gown":  1,

	// outerwear
	"jacket":     10,
	"blazer":     8,
	"coat":       15,
	"cardigan":   5,
	"sweater":    4,
	"hoodie":     3,
	"sweatshirt": 3,

	// formal
	"suit":      5,
	"vest":      5,
	"waistcoat": 5,

	// accessories
	"scarf":  10,
	"hat":    15,
	"gloves": 10,
}

// thresholdOrder fixes the lookup order so longer, more specific keys win over
// substrings they contain ("t-shirt" before "shirt", "sweatshirt" before
// "shirt", "tank top" before "hat"-ish accidents).
var thresholdOrder = []string{
	"underwear", "socks", "briefs", "boxers", "lingerie", "bra",
	"t-shirt", "sweatshirt", "tank top", "shirt", "tee", "blouse", "polo",
	"sportswear", "activewear", "workout", "gym",
	"trousers", "pants", "jeans", "shorts", "skirt",
	"dress", "gown",
	"jacket", "blazer", "coat", "cardigan", "sweater", "hoodie",
	"waistcoat", "suit", "vest",
	"scarf", "gloves", "hat",
}

// ThresholdFor returns the recommended wears-before-wash count for an item.
// A user-customized max_wears_before_wash (anything but the default) wins;
// otherwise category and item name are scanned for a known substring.
func ThresholdFor(item protocol.ClothingItem) int {
	if item.MaxWearsBeforeWash != DefaultThreshold && item.MaxWearsBeforeWash > 0 {
		return item.MaxWearsBeforeWash
	}
	category := strings.ToLower(item.Category)
	name := strings.ToLower(item.Name)
	for _, key := range thresholdOrder {
		if strings.Contains(category, key) || strings.Contains(name, key) {
			return washThresholds[key]
		}
	}
	return DefaultThreshold
}

// Urgency levels, ordered.
const (
	UrgencyClean       = 0
	UrgencyApproaching = 1
	UrgencyNeedsWash   = 2
	UrgencyOverdue     = 3
)

// UrgencyLevel grades how badly an item needs a wash. 70% of the threshold
// counts as approaching, 100% as due, 150% as overdue.
func UrgencyLevel(item protocol.ClothingItem) int {
	if item.WearsSinceWash == 0 {
		return UrgencyClean
	}
	threshold := ThresholdFor(item)
	if threshold < 1 {
		threshold = 1
	}
	ratio := float64(item.WearsSinceWash) / float64(threshold)
	switch {
	case ratio >= 1.5:
		return UrgencyOverdue
	case ratio >= 1.0:
		return UrgencyNeedsWash
	case ratio >= 0.7:
		return UrgencyApproaching
	}
	return UrgencyClean
}

func NeedsWashing(item protocol.ClothingItem) bool {
	return item.WearsSinceWash >= ThresholdFor(item)
}

// DryingReadyAt reports when a drying item is wearable again, based on its
// last wash date plus its drying time. ok is false when the item has never
// been washed.
func DryingReadyAt(item protocol.ClothingItem) (time.Time, bool) {
	if item.LastWashed == "" {
		return time.Time{}, false
	}
	washed, err := time.Parse("2006-01-02", item.LastWashed)
	if err != nil {
		return time.Time{}, false
	}
	hours := item.DryingTimeHours
	if hours <= 0 {
		hours = 24
	}
	return washed.Add(time.Duration(hours) * time.Hour), true
}

// IsDry reports whether a drying item has had enough time on the rack.
func IsDry(item protocol.ClothingItem, now time.Time) bool {
	ready, ok := DryingReadyAt(item)
	if !ok {
		return true
	}
	return !now.Before(ready)
}

// BuildOverview partitions the wardrobe into the laundry buckets the dashboard
// shows. Available items land in NeedsWash/ApproachingWash by urgency; items
// already in the laundry loop are grouped by status.
func BuildOverview(items []protocol.ClothingItem) protocol.LaundryOverview {
	var overview protocol.LaundryOverview
	for _, item := range items {
		entry := toLaundryItem(item)
		switch item.Status {
		case protocol.ItemStatusWashing:
			overview.Washing = append(overview.Washing, entry)
		case protocol.ItemStatusDrying:
			overview.Drying = append(overview.Drying, entry)
		case protocol.ItemStatusDryCleaning:
			overview.DryCleaning = append(overview.DryCleaning, entry)
		case protocol.ItemStatusAvailable:
			switch UrgencyLevel(item) {
			case UrgencyNeedsWash, UrgencyOverdue:
				overview.NeedsWash = append(overview.NeedsWash, entry)
			case UrgencyApproaching:
				overview.ApproachingWash = append(overview.ApproachingWash, entry)
			}
		}
	}
	return overview
}

// OutfitCheck is the laundry verdict for one outfit: which of its items block
// wearing it and which are close to their limit.
type OutfitCheck struct {
	NeedsWash   []protocol.LaundryItem
	Approaching []protocol.LaundryItem
	Unavailable []protocol.LaundryItem
	Clear       bool
}

// CheckOutfit inspects every item in an outfit and reports wash conflicts.
// Items in the laundry loop make the outfit unavailable outright.
func CheckOutfit(items []protocol.ClothingItem) OutfitCheck {
	check := OutfitCheck{Clear: true}
	for _, item := range items {
		entry := toLaundryItem(item)
		if protocol.IsLaundryItemStatus(item.Status) {
			check.Unavailable = append(check.Unavailable, entry)
			check.Clear = false
			continue
		}
		switch UrgencyLevel(item) {
		case UrgencyNeedsWash, UrgencyOverdue:
			check.NeedsWash = append(check.NeedsWash, entry)
			check.Clear = false
		case UrgencyApproaching:
			check.Approaching = append(check.Approaching, entry)
		}
	}
	return check
}

func toLaundryItem(item protocol.ClothingItem) protocol.LaundryItem {
	entry := protocol.LaundryItem{
		ID:                 item.ID,
		Name:               item.Name,
		Category:           item.Category,
		Status:             item.Status,
		WearsSinceWash:     item.WearsSinceWash,
		MaxWearsBeforeWash: ThresholdFor(item),
		CareType:           item.CareType,
		LastWashed:         item.LastWashed,
	}
	if item.Status == protocol.ItemStatusDrying {
		if ready, ok := DryingReadyAt(item); ok {
			entry.ReadyUTC = ready.UTC().Format(time.RFC3339)
		}
	}
	return entry
}
