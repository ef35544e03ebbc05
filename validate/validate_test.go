package validate

import (
	"encoding/json"
	"testing"
)

func TestNotBlank(t *testing.T) {
	if err := NotBlank("name", "  "); err == nil {
		t.Fatal("whitespace-only value should fail")
	}
	if err := NotBlank("name", "Spoken English"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPrice(t *testing.T) {
	if _, err := Price("price", "abc", false); err == nil {
		t.Fatal("non-numeric price should fail")
	}
	if _, err := Price("price", "", false); err == nil {
		t.Fatal("required price should reject empty")
	}
	if p, err := Price("discountedPrice", "", true); err != nil || p != nil {
		t.Fatalf("optional empty price: p=%v err=%v", p, err)
	}
	if _, err := Price("price", "-10", false); err == nil {
		t.Fatal("negative price should fail")
	}
	p, err := Price("price", " 1500.50 ", false)
	if err != nil || p == nil || *p != 1500.50 {
		t.Fatalf("p=%v err=%v", p, err)
	}
}

func TestRawPrice(t *testing.T) {
	p, err := RawPrice("price", json.RawMessage(`1000`), false)
	if err != nil || p == nil || *p != 1000 {
		t.Fatalf("number: p=%v err=%v", p, err)
	}
	p, err = RawPrice("price", json.RawMessage(`"1500.50"`), false)
	if err != nil || p == nil || *p != 1500.50 {
		t.Fatalf("numeric string: p=%v err=%v", p, err)
	}
	if p, err := RawPrice("discountedPrice", nil, true); err != nil || p != nil {
		t.Fatalf("optional absent: p=%v err=%v", p, err)
	}
	if p, err := RawPrice("discountedPrice", json.RawMessage(`null`), true); err != nil || p != nil {
		t.Fatalf("optional null: p=%v err=%v", p, err)
	}
	if _, err := RawPrice("price", json.RawMessage(`"free"`), false); err == nil {
		t.Fatal("non-numeric string should fail")
	}
	if _, err := RawPrice("price", json.RawMessage(`{"amount":5}`), false); err == nil {
		t.Fatal("object should fail")
	}
}

func TestImageURL(t *testing.T) {
	cases := []struct {
		value string
		ok    bool
	}{
		{"", true},
		{"https://example.com/pic.JPG", true},
		{"https://example.com/pic.webp?v=2", true},
		{"https://example.com/pic.pdf", false},
		{"not a url", false},
		{"/relative/pic.png", false},
	}
	for _, c := range cases {
		err := ImageURL("image", c.value)
		if c.ok && err != nil {
			t.Errorf("%q: unexpected error %v", c.value, err)
		}
		if !c.ok && err == nil {
			t.Errorf("%q: expected error", c.value)
		}
	}
}

func TestAppendUnique(t *testing.T) {
	list, err := AppendUnique("licenses", nil, "Personal")
	if err != nil || len(list) != 1 {
		t.Fatalf("list=%v err=%v", list, err)
	}
	if _, err := AppendUnique("licenses", list, "Personal"); err == nil {
		t.Fatal("exact duplicate should fail")
	}
	// Case-sensitive match only: a different casing is a new value.
	list, err = AppendUnique("licenses", list, "personal")
	if err != nil || len(list) != 2 {
		t.Fatalf("case variant rejected: list=%v err=%v", list, err)
	}
	if _, err := AppendUnique("licenses", list, "   "); err == nil {
		t.Fatal("blank value should fail")
	}
}

func TestUniqueNonEmpty(t *testing.T) {
	if err := UniqueNonEmpty("images", []string{"a.png", "b.png"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := UniqueNonEmpty("images", []string{"a.png", "a.png"}); err == nil {
		t.Fatal("duplicate should fail")
	}
	if err := UniqueNonEmpty("images", []string{"a.png", " "}); err == nil {
		t.Fatal("blank entry should fail")
	}
}
