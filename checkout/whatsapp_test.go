package checkout

import (
	"net/url"
	"strings"
	"testing"

	"github.com/ijasahamedstr/buycourse.lk-sub000/cartstore"
)

func TestComposeEmptyCart(t *testing.T) {
	if _, err := Compose(nil); err != ErrEmptyCart {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
	if _, err := Link("94771234567", nil); err != ErrEmptyCart {
		t.Fatalf("expected ErrEmptyCart from Link, got %v", err)
	}
}

func TestComposeSummary(t *testing.T) {
	lines := []cartstore.Line{
		{ID: "course-1", Title: "Spoken English", Price: 1000, Qty: 2},
		{ID: "42-1-month", Title: "StreamBox", DurationLabel: "1 month", Price: 500, Qty: 1},
	}

	msg, err := Compose(lines)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"1. Spoken English x2 - Rs. 2000.00",
		"2. StreamBox (1 month) - Rs. 500.00",
		"Total: Rs. 2500.00",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("summary missing %q:\n%s", want, msg)
		}
	}
}

func TestLinkEncoding(t *testing.T) {
	lines := []cartstore.Line{{ID: "course-1", Title: "Tamil 101 & more", Price: 750, Qty: 1}}

	link, err := Link("94771234567", lines)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(link, "https://wa.me/94771234567?") {
		t.Fatalf("unexpected link prefix: %s", link)
	}

	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("link does not parse: %v", err)
	}
	text := u.Query().Get("text")
	if !strings.Contains(text, "Tamil 101 & more") {
		t.Fatalf("decoded text lost the title: %q", text)
	}

	if _, err := Link("", lines); err == nil {
		t.Fatal("expected error when number is unset")
	}
}
