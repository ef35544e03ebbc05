package plans

import (
	"encoding/json"
	"reflect"
	"testing"
)

func mustJSON(t *testing.T, v any) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return b
}

func fptr(f float64) *float64 { return &f }

func TestNormalizePriceFallbackFromHeadings(t *testing.T) {
	durations := json.RawMessage(`[{"duration":"1 month"}]`)
	headings := json.RawMessage(`[{"planDurations":"1 month","Price":["500"]}]`)

	got := Normalize("", durations, headings)
	want := []PlanItem{{Duration: "1 month", Price: fptr(500), StockStatus: StockIn}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestNormalizeOwnPriceWins(t *testing.T) {
	durations := json.RawMessage(`[{"duration":"1 month","price":300}]`)
	headings := json.RawMessage(`[{"planDurations":"1 month","Price":["500"]}]`)

	got := Normalize("", durations, headings)
	if len(got) != 1 || got[0].Price == nil || *got[0].Price != 300 {
		t.Fatalf("expected entry price 300, got %+v", got)
	}
}

func TestNormalizeRootStockPropagates(t *testing.T) {
	durations := json.RawMessage(`[{"duration":"1 month"}]`)

	got := Normalize(StockOut, durations, nil)
	if len(got) != 1 || got[0].StockStatus != StockOut {
		t.Fatalf("expected OutOfStock, got %+v", got)
	}

	// An entry's own OutOfStock sticks even when the root is in stock.
	durations = json.RawMessage(`[{"duration":"1 month","stockStatus":"OutOfStock"}]`)
	got = Normalize("", durations, nil)
	if len(got) != 1 || got[0].StockStatus != StockOut {
		t.Fatalf("expected entry-level OutOfStock, got %+v", got)
	}
}

func TestNormalizeGarbagePriceIsNil(t *testing.T) {
	durations := json.RawMessage(`[{"duration":"1 month","price":"abc"}]`)

	got := Normalize("", durations, nil)
	if len(got) != 1 {
		t.Fatalf("expected 1 item, got %+v", got)
	}
	if got[0].Price != nil {
		t.Fatalf("expected nil price, got %v", *got[0].Price)
	}
}

func TestNormalizeStringDurations(t *testing.T) {
	durations := json.RawMessage(`["1 month","3 months",""]`)
	headings := json.RawMessage(`[{"planDurations":"3 months","Price":["1200"]}]`)

	got := Normalize("", durations, headings)
	want := []PlanItem{
		{Duration: "1 month", Price: nil, StockStatus: StockIn},
		{Duration: "3 months", Price: fptr(1200), StockStatus: StockIn},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestNormalizeHeadingsOnly(t *testing.T) {
	headings := json.RawMessage(`[
		{"planDurations":"1 month","Price":["500"]},
		{"planDurations":"1 year","Price":["4000"]},
		{"planDurations":"","Price":["9"]},
		{"planDurations":"broken","Price":["n/a"]}
	]`)

	got := Normalize("", nil, headings)
	want := []PlanItem{
		{Duration: "1 month", Price: fptr(500), StockStatus: StockIn},
		{Duration: "1 year", Price: fptr(4000), StockStatus: StockIn},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestNormalizeSkippedEntriesSuppressHeadingFallback(t *testing.T) {
	// A plan array that is present but yields nothing still owns the
	// result; the price table only stands in when no array exists.
	durations := json.RawMessage(`["", "   "]`)
	headings := json.RawMessage(`[{"planDurations":"1 month","Price":["500"]}]`)

	if got := Normalize("", durations, headings); len(got) != 0 {
		t.Fatalf("expected empty, got %+v", got)
	}
}

func TestNormalizeEmptyInputs(t *testing.T) {
	if got := Normalize("", nil, nil); len(got) != 0 {
		t.Fatalf("expected empty, got %+v", got)
	}
	if got := Normalize("", json.RawMessage(`"garbage`), json.RawMessage(`{"not":"an array"}`)); len(got) != 0 {
		t.Fatalf("expected empty on malformed input, got %+v", got)
	}
}

func TestNormalizeIdempotentOnOwnOutput(t *testing.T) {
	durations := json.RawMessage(`[{"duration":"1 month","price":500},{"duration":"1 year"}]`)
	headings := json.RawMessage(`[{"planDurations":"1 year","Price":["4000"]}]`)

	first := Normalize(StockOut, durations, headings)
	second := Normalize(StockOut, mustJSON(t, first), nil)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("round trip diverged:\nfirst  %+v\nsecond %+v", first, second)
	}
}

func TestNormalizeKeepsDuplicateDurations(t *testing.T) {
	// Duplicate durations across entries are preserved as-is.
	durations := json.RawMessage(`["1 month",{"duration":"1 month","price":700}]`)

	got := Normalize("", durations, nil)
	if len(got) != 2 {
		t.Fatalf("expected both entries kept, got %+v", got)
	}
}

func TestPriceRange(t *testing.T) {
	items := []PlanItem{
		{Duration: "1 month", Price: fptr(500)},
		{Duration: "3 months", Price: nil},
		{Duration: "1 year", Price: fptr(4000)},
	}
	min, max, ok := PriceRange(items)
	if !ok || min != 500 || max != 4000 {
		t.Fatalf("got min=%v max=%v ok=%v", min, max, ok)
	}

	if _, _, ok := PriceRange([]PlanItem{{Duration: "x"}}); ok {
		t.Fatal("expected ok=false with no priced plans")
	}
}
