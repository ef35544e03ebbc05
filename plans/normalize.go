// Package plans reconciles the heterogeneous plan data carried by OTT
// service records into one canonical duration/price/stock list.
//
// Historical records encode plans in two places that are not guaranteed to
// agree: planDurations (an array of strings, or of objects with their own
// price and stock) and mainHeadings (an array of duration/price-table
// entries). Normalize merges both defensively; it never fails, it only
// degrades to an empty result.
package plans

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

const (
	StockIn  = "InStock"
	StockOut = "OutOfStock"
)

// PlanItem is the canonical plan shape stored and served everywhere.
// Price is nil when no source carried a parsable price for the duration;
// it is never coerced to zero.
type PlanItem struct {
	Duration    string   `json:"duration"`
	Price       *float64 `json:"price"`
	StockStatus string   `json:"stockStatus"`
}

// planEntry covers the object-shaped planDurations variants. Legacy rows
// use either "duration" or "planDurations" for the key, and price may be a
// number or a numeric string.
type planEntry struct {
	Duration      string          `json:"duration"`
	PlanDurations string          `json:"planDurations"`
	Price         json.RawMessage `json:"price"`
	StockStatus   string          `json:"stockStatus"`
}

// headingEntry is one mainHeadings row: a duration label plus a price
// table whose first element is the plan price.
type headingEntry struct {
	PlanDurations string          `json:"planDurations"`
	Duration      string          `json:"duration"`
	Price         json.RawMessage `json:"Price"`
}

// Normalize produces the canonical plan list for one service record.
// stock is the record's top-level stock field; planDurations and
// mainHeadings are the raw JSON of the two legacy arrays (either may be
// nil, empty, or malformed).
func Normalize(stock string, planDurations, mainHeadings json.RawMessage) []PlanItem {
	rootStock := StockIn
	if stock == StockOut {
		rootStock = StockOut
	}

	lookupKeys, lookup := headingLookup(mainHeadings)

	var entries []json.RawMessage
	if len(planDurations) > 0 {
		_ = json.Unmarshal(planDurations, &entries)
	}

	if len(entries) > 0 {
		var items []PlanItem
		for _, raw := range entries {
			var s string
			if err := json.Unmarshal(raw, &s); err == nil {
				// String-shaped entry: the string is the duration.
				if s = strings.TrimSpace(s); s == "" {
					continue
				}
				items = append(items, PlanItem{
					Duration:    s,
					Price:       lookupPrice(lookup, s),
					StockStatus: rootStock,
				})
				continue
			}

			var e planEntry
			if err := json.Unmarshal(raw, &e); err != nil {
				continue
			}
			duration := strings.TrimSpace(e.Duration)
			if duration == "" {
				duration = strings.TrimSpace(e.PlanDurations)
			}
			if duration == "" {
				continue
			}

			price := parsePrice(e.Price)
			if price == nil {
				price = lookupPrice(lookup, duration)
			}

			status := rootStock
			if e.StockStatus == StockOut {
				status = StockOut
			}
			items = append(items, PlanItem{Duration: duration, Price: price, StockStatus: status})
		}
		// A non-empty planDurations array owns the result, even when every
		// entry was skipped; the price table fills in only for records that
		// carry no plan array at all.
		return items
	}

	// No planDurations: fall back to the price table alone.
	var items []PlanItem
	for _, key := range lookupKeys {
		price := lookup[key]
		items = append(items, PlanItem{Duration: key, Price: &price, StockStatus: rootStock})
	}
	return items
}

// headingLookup builds the duration -> price table from mainHeadings,
// preserving first-seen order. Entries with a blank duration or an
// unparsable price are skipped.
func headingLookup(raw json.RawMessage) ([]string, map[string]float64) {
	lookup := make(map[string]float64)
	var keys []string
	if len(raw) == 0 {
		return keys, lookup
	}

	var entries []headingEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return keys, lookup
	}
	for _, e := range entries {
		duration := strings.TrimSpace(e.PlanDurations)
		if duration == "" {
			duration = strings.TrimSpace(e.Duration)
		}
		if duration == "" {
			continue
		}
		price := parsePrice(e.Price)
		if price == nil {
			continue
		}
		if _, seen := lookup[duration]; !seen {
			keys = append(keys, duration)
		}
		lookup[duration] = *price
	}
	return keys, lookup
}

func lookupPrice(lookup map[string]float64, duration string) *float64 {
	if p, ok := lookup[duration]; ok {
		return &p
	}
	return nil
}

// parsePrice coerces a raw price value to a number. The value may be a
// JSON number, a numeric string, or an array whose first element is
// either of those. Anything unparsable yields nil, never zero.
func parsePrice(raw json.RawMessage) *float64 {
	if len(raw) == 0 {
		return nil
	}

	var arr []json.RawMessage
	if err := json.Unmarshal(raw, &arr); err == nil {
		if len(arr) == 0 {
			return nil
		}
		return parsePrice(arr[0])
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return nil
		}
		return &n
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
		if s == "" {
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil
		}
		return &f
	}
	return nil
}

// PriceRange returns the min and max plan price over entries that carry
// one. ok is false when no plan has a price, in which case callers fall
// back to the service-level price field.
func PriceRange(items []PlanItem) (min, max float64, ok bool) {
	for _, item := range items {
		if item.Price == nil {
			continue
		}
		p := *item.Price
		if !ok {
			min, max, ok = p, p, true
			continue
		}
		if p < min {
			min = p
		}
		if p > max {
			max = p
		}
	}
	return min, max, ok
}
