package protocol

import "strings"

const (
	ItemStatusAvailable   = "available"
	ItemStatusWashing     = "washing"
	ItemStatusDrying      = "drying"
	ItemStatusDryCleaning = "dry_cleaning"
	ItemStatusLoaned      = "loaned"
	ItemStatusRepair      = "repair"
)

const (
	ConditionNew       = "new"
	ConditionExcellent = "excellent"
	ConditionGood      = "good"
	ConditionFair      = "fair"
	ConditionWorn      = "worn"
)

const (
	CareMachineWash = "machine_wash"
	CareHandWash    = "hand_wash"
	CareDryClean    = "dry_clean"
	CareSpotClean   = "spot_clean"
)

var Seasons = []string{"spring", "summer", "fall", "winter", "all_seasons"}

func NormalizeItemStatus(status string) string {
	return strings.ToLower(strings.TrimSpace(status))
}

func IsValidItemStatus(status string) bool {
	switch NormalizeItemStatus(status) {
	case ItemStatusAvailable, ItemStatusWashing, ItemStatusDrying,
		ItemStatusDryCleaning, ItemStatusLoaned, ItemStatusRepair:
		return true
	default:
		return false
	}
}

// IsWearableItemStatus reports whether an item can be planned into an outfit
// right now. Items in any laundry or out-of-closet state are excluded.
func IsWearableItemStatus(status string) bool {
	return NormalizeItemStatus(status) == ItemStatusAvailable
}

// IsLaundryItemStatus reports whether the item is somewhere in the wash cycle.
func IsLaundryItemStatus(status string) bool {
	switch NormalizeItemStatus(status) {
	case ItemStatusWashing, ItemStatusDrying, ItemStatusDryCleaning:
		return true
	default:
		return false
	}
}

func IsValidCondition(condition string) bool {
	switch strings.ToLower(strings.TrimSpace(condition)) {
	case ConditionNew, ConditionExcellent, ConditionGood, ConditionFair, ConditionWorn:
		return true
	default:
		return false
	}
}

func IsValidCareType(care string) bool {
	switch strings.ToLower(strings.TrimSpace(care)) {
	case CareMachineWash, CareHandWash, CareDryClean, CareSpotClean:
		return true
	default:
		return false
	}
}

func IsValidSeason(season string) bool {
	normalized := strings.ToLower(strings.TrimSpace(season))
	for _, s := range Seasons {
		if s == normalized {
			return true
		}
	}
	return false
}
