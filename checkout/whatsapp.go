// Package checkout turns a cart into the prefilled WhatsApp handoff link.
// There is no payment gateway; the storefront closes the sale in chat.
package checkout

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/ijasahamedstr/buycourse.lk-sub000/cartstore"
)

var ErrEmptyCart = errors.New("cart is empty")

// Compose renders the human-readable order summary sent as the chat
// message body.
func Compose(lines []cartstore.Line) (string, error) {
	if len(lines) == 0 {
		return "", ErrEmptyCart
	}

	var b strings.Builder
	b.WriteString("Hello! I'd like to place an order:\n\n")
	for i, l := range lines {
		b.WriteString(fmt.Sprintf("%d. %s", i+1, l.Title))
		if l.DurationLabel != "" {
			b.WriteString(fmt.Sprintf(" (%s)", l.DurationLabel))
		}
		if l.Qty > 1 {
			b.WriteString(fmt.Sprintf(" x%d", l.Qty))
		}
		b.WriteString(fmt.Sprintf(" - Rs. %.2f\n", l.Price*float64(l.Qty)))
	}
	b.WriteString(fmt.Sprintf("\nTotal: Rs. %.2f", cartstore.Total(lines)))
	return b.String(), nil
}

// Link builds the wa.me deep link for the given destination number
// (digits only, with country code). An empty cart is refused so a
// malformed link can never be opened.
func Link(number string, lines []cartstore.Line) (string, error) {
	msg, err := Compose(lines)
	if err != nil {
		return "", err
	}
	if number == "" {
		return "", errors.New("whatsapp number is not configured")
	}

	q := url.Values{}
	q.Set("text", msg)
	return fmt.Sprintf("https://wa.me/%s?%s", number, q.Encode()), nil
}
