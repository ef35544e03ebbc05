package models

import (
	"reflect"
	"testing"

	"github.com/ijasahamedstr/buycourse.lk-sub000/plans"
)

func TestCourseHeadingListRoundTrip(t *testing.T) {
	headings := CourseHeadingList{
		{Heading: "Intro", SubHeadings: []string{"Lesson 1"}},
		{Heading: "Advanced", SubHeadings: []string{"Lesson 2", "Lesson 3"}},
	}

	value, err := headings.Value()
	if err != nil {
		t.Fatal(err)
	}

	var restored CourseHeadingList
	if err := restored.Scan([]byte(value.(string))); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(headings, restored) {
		t.Fatalf("round trip diverged: %+v vs %+v", headings, restored)
	}
}

func TestPlanListRoundTrip(t *testing.T) {
	price := 500.0
	list := PlanList{{Duration: "1 month", Price: &price, StockStatus: plans.StockIn}}

	value, err := list.Value()
	if err != nil {
		t.Fatal(err)
	}

	var restored PlanList
	if err := restored.Scan(value.(string)); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(list, restored) {
		t.Fatalf("round trip diverged: %+v vs %+v", list, restored)
	}
}

func TestRawJSONScanNil(t *testing.T) {
	var raw RawJSON
	if err := raw.Scan(nil); err != nil {
		t.Fatal(err)
	}
	if raw != nil {
		t.Fatalf("expected nil, got %q", raw)
	}

	value, err := raw.Value()
	if err != nil || value != nil {
		t.Fatalf("empty RawJSON should store NULL, got %v err %v", value, err)
	}
}
