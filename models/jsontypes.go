package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ijasahamedstr/buycourse.lk-sub000/plans"
)

// The document-store ancestry of this schema leaves several fields as
// nested JSON rather than relational rows. These column types keep that
// shape in a single JSONB column per field.

// CourseHeading is one outline entry of a course: a heading plus its
// lesson titles.
type CourseHeading struct {
	Heading     string   `json:"heading"`
	SubHeadings []string `json:"subHeadings"`
}

type CourseHeadingList []CourseHeading

func (l CourseHeadingList) Value() (driver.Value, error) { return jsonValue(l) }

func (l *CourseHeadingList) Scan(src any) error { return jsonScan(src, l) }

func (CourseHeadingList) GormDataType() string { return "jsonb" }

// StringList stores []string fields (images, license types) as JSONB.
type StringList []string

func (l StringList) Value() (driver.Value, error) { return jsonValue(l) }

func (l *StringList) Scan(src any) error { return jsonScan(src, l) }

func (StringList) GormDataType() string { return "jsonb" }

// PlanList stores the canonical plan list produced by plans.Normalize.
type PlanList []plans.PlanItem

func (l PlanList) Value() (driver.Value, error) { return jsonValue(l) }

func (l *PlanList) Scan(src any) error { return jsonScan(src, l) }

func (PlanList) GormDataType() string { return "jsonb" }

// RawJSON preserves legacy plan data exactly as submitted, for rows that
// predate normalize-on-write.
type RawJSON json.RawMessage

func (r RawJSON) Value() (driver.Value, error) {
	if len(r) == 0 {
		return nil, nil
	}
	return string(r), nil
}

func (r *RawJSON) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*r = nil
		return nil
	case []byte:
		*r = append(RawJSON(nil), v...)
		return nil
	case string:
		*r = RawJSON(v)
		return nil
	default:
		return fmt.Errorf("unsupported source type %T for RawJSON", src)
	}
}

func (RawJSON) GormDataType() string { return "jsonb" }

func (r RawJSON) MarshalJSON() ([]byte, error) {
	if len(r) == 0 {
		return []byte("null"), nil
	}
	return r, nil
}

func (r *RawJSON) UnmarshalJSON(data []byte) error {
	*r = append(RawJSON(nil), data...)
	return nil
}

func jsonValue(v any) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func jsonScan(src any, dest any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return errors.New("unsupported source type for JSON column")
	}
}
