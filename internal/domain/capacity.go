package domain

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var numberPrinter = message.NewPrinter(language.English)

// MaxCapacity returns the largest populated dimension, absent dimensions count as zero
func MaxCapacity(c Capacity) int {
	largest := 0
	for _, v := range []*int{c.Standing, c.Seated, c.Banquet, c.Cocktail} {
		if v != nil && *v > largest {
			largest = *v
		}
	}
	return largest
}

// TotalSiteCapacity - сумма максимальных вместимостей всех площадок территории
func TotalSiteCapacity(site VenueSite) int {
	total := 0
	for _, f := range site.Facilities {
		total += MaxCapacity(f.Capacity)
	}
	return total
}

// SiteMaxCapacity - вместимость самой большой площадки территории
func SiteMaxCapacity(site VenueSite) int {
	largest := 0
	for _, f := range site.Facilities {
		if c := MaxCapacity(f.Capacity); c > largest {
			largest = c
		}
	}
	return largest
}

var capacityDimensionLabels = [4]Text{
	{En: "Standing", Ar: "وقوف"},
	{En: "Seated", Ar: "جلوس"},
	{En: "Banquet", Ar: "مأدبة"},
	{En: "Cocktail", Ar: "كوكتيل"},
}

// FormatCapacity lists populated dimensions in the order standing, seated, banquet, cocktail.
func FormatCapacity(c Capacity, isRTL bool) string {
	lang, sep := LanguageEN, ", "
	if isRTL {
		lang, sep = LanguageAR, "، "
	}

	parts := make([]string, 0, 4)
	for i, v := range []*int{c.Standing, c.Seated, c.Banquet, c.Cocktail} {
		if v == nil {
			continue
		}
		parts = append(parts, capacityDimensionLabels[i].In(lang)+": "+FormatNumber(*v))
	}
	return strings.Join(parts, sep)
}

// FormatNumber formats an integer with thousands separators
func FormatNumber(n int) string {
	return numberPrinter.Sprintf("%d", n)
}

// CapacityBucket - диапазон фильтра по вместимости
type CapacityBucket string

const (
	CapacityBucketAll    CapacityBucket = "all"
	CapacityBucketSmall  CapacityBucket = "0-500"
	CapacityBucketMedium CapacityBucket = "500-1000"
	CapacityBucketLarge  CapacityBucket = "1000-3000"
	CapacityBucketXLarge CapacityBucket = "3000+"
)

// ValidCapacityBuckets returns buckets in display order, without "all"
func ValidCapacityBuckets() []CapacityBucket {
	return []CapacityBucket{
		CapacityBucketSmall,
		CapacityBucketMedium,
		CapacityBucketLarge,
		CapacityBucketXLarge,
	}
}

// Contains reports whether a max capacity falls in the bucket:
// ≤500, 501–1000, 1001–3000, >3000.
func (b CapacityBucket) Contains(maxCapacity int) bool {
	switch b {
	case CapacityBucketAll:
		return true
	case CapacityBucketSmall:
		return maxCapacity <= 500
	case CapacityBucketMedium:
		return maxCapacity > 500 && maxCapacity <= 1000
	case CapacityBucketLarge:
		return maxCapacity > 1000 && maxCapacity <= 3000
	case CapacityBucketXLarge:
		return maxCapacity > 3000
	default:
		return false
	}
}

// IntPtr - помощник для литералов вместимости
func IntPtr(v int) *int {
	return &v
}
