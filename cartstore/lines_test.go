package cartstore

import "testing"

func line(id string, price float64, qty int) Line {
	return Line{ID: id, Kind: KindCourse, Title: id, Price: price, Qty: qty}
}

func TestAddDuplicateIsNoOp(t *testing.T) {
	lines, already := Add(nil, line("course-1", 1000, 1))
	if already || len(lines) != 1 {
		t.Fatalf("first add: already=%v len=%d", already, len(lines))
	}

	lines, already = Add(lines, line("course-1", 1000, 3))
	if !already {
		t.Fatal("second add should report already present")
	}
	if len(lines) != 1 || lines[0].Qty != 1 {
		t.Fatalf("cart changed on duplicate add: %+v", lines)
	}
}

func TestAddClampsInitialQuantity(t *testing.T) {
	lines, _ := Add(nil, line("course-1", 1000, 0))
	if lines[0].Qty != 1 {
		t.Fatalf("qty = %d, want 1", lines[0].Qty)
	}
}

func TestSetQuantityFloor(t *testing.T) {
	lines, _ := Add(nil, line("course-1", 1000, 2))

	for _, qty := range []int{0, -5} {
		lines = SetQuantity(lines, "course-1", qty)
		if lines[0].Qty != 1 {
			t.Fatalf("SetQuantity(%d): qty = %d, want 1", qty, lines[0].Qty)
		}
	}

	lines = SetQuantity(lines, "course-1", 4)
	if lines[0].Qty != 4 {
		t.Fatalf("qty = %d, want 4", lines[0].Qty)
	}
}

func TestSetQuantityUnknownIDIsNoOp(t *testing.T) {
	lines, _ := Add(nil, line("course-1", 1000, 2))
	lines = SetQuantity(lines, "missing", 7)
	if len(lines) != 1 || lines[0].Qty != 2 {
		t.Fatalf("unexpected mutation: %+v", lines)
	}
}

func TestRemove(t *testing.T) {
	lines, _ := Add(nil, line("course-1", 1000, 1))
	lines, _ = Add(lines, line("course-2", 500, 1))

	lines = Remove(lines, "course-1")
	if len(lines) != 1 || lines[0].ID != "course-2" {
		t.Fatalf("remove failed: %+v", lines)
	}

	lines = Remove(lines, "missing")
	if len(lines) != 1 {
		t.Fatalf("remove of unknown id mutated cart: %+v", lines)
	}
}

func TestTotal(t *testing.T) {
	lines, _ := Add(nil, line("course-1", 1000, 2))
	lines, _ = Add(lines, Line{ID: "42-1-month", Kind: KindPlan, Price: 500, Qty: 1})

	if got := Total(lines); got != 2500 {
		t.Fatalf("total = %v, want 2500", got)
	}
	if got := Total(nil); got != 0 {
		t.Fatalf("empty total = %v, want 0", got)
	}
}

func TestLineIDs(t *testing.T) {
	if got := CourseLineID(7); got != "course-7" {
		t.Fatalf("course id = %q", got)
	}
	if got := PlanLineID(42, " 1 Month "); got != "42-1-month" {
		t.Fatalf("plan id = %q", got)
	}
	// Distinct durations of the same service are distinct lines.
	if PlanLineID(42, "1 month") == PlanLineID(42, "3 months") {
		t.Fatal("durations collided")
	}
}
