package cartstore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/ijasahamedstr/buycourse.lk-sub000/pkg/logger"
)

const (
	keyPrefix = "cart:"
	// Channel carrying the token of every cart that changed.
	EventsChannel = "cart:events"

	cartTTL = 30 * 24 * time.Hour
)

// Store persists carts as whole JSON blobs, last writer wins. Every
// successful save publishes the cart token on EventsChannel so the
// websocket layer can push the fresh cart to other open clients.
type Store struct {
	rdb *redis.Client
}

func New(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// NewToken creates an empty cart and returns its token.
func (s *Store) NewToken(ctx context.Context) (string, error) {
	token := uuid.NewString()
	if err := s.save(ctx, token, []Line{}); err != nil {
		return "", err
	}
	return token, nil
}

// Load returns the cart for token. A missing key is an empty cart; a
// corrupt or legacy-shaped blob also degrades to empty rather than
// failing the request.
func (s *Store) Load(ctx context.Context, token string) ([]Line, error) {
	data, err := s.rdb.Get(ctx, keyPrefix+token).Bytes()
	if err == redis.Nil {
		return []Line{}, nil
	}
	if err != nil {
		return nil, err
	}

	var lines []Line
	if err := json.Unmarshal(data, &lines); err != nil {
		logger.Warn().Str("token", token).Err(err).Msg("discarding unreadable cart blob")
		return []Line{}, nil
	}
	return lines, nil
}

// Add inserts a line, reporting already=true (and changing nothing) when
// the composite id is in the cart.
func (s *Store) Add(ctx context.Context, token string, line Line) (lines []Line, already bool, err error) {
	lines, err = s.Load(ctx, token)
	if err != nil {
		return nil, false, err
	}
	lines, already = Add(lines, line)
	if already {
		return lines, true, nil
	}
	return lines, false, s.save(ctx, token, lines)
}

// SetQuantity clamps qty to at least 1; an unknown line id is a no-op.
func (s *Store) SetQuantity(ctx context.Context, token, lineID string, qty int) ([]Line, error) {
	lines, err := s.Load(ctx, token)
	if err != nil {
		return nil, err
	}
	lines = SetQuantity(lines, lineID, qty)
	return lines, s.save(ctx, token, lines)
}

// Remove drops a line if present.
func (s *Store) Remove(ctx context.Context, token, lineID string) ([]Line, error) {
	lines, err := s.Load(ctx, token)
	if err != nil {
		return nil, err
	}
	lines = Remove(lines, lineID)
	return lines, s.save(ctx, token, lines)
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context, token string) error {
	return s.save(ctx, token, []Line{})
}

// save overwrites the full blob. Two concurrent writers race and the
// later write wins wholesale; cart contents are low stakes and this
// mirrors how the cart has always behaved.
func (s *Store) save(ctx context.Context, token string, lines []Line) error {
	data, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, keyPrefix+token, data, cartTTL).Err(); err != nil {
		return err
	}
	if err := s.rdb.Publish(ctx, EventsChannel, token).Err(); err != nil {
		logger.Warn().Str("token", token).Err(err).Msg("cart change notification failed")
	}
	return nil
}

// Subscribe returns the pub/sub feed of changed cart tokens.
func (s *Store) Subscribe(ctx context.Context) *redis.PubSub {
	return s.rdb.Subscribe(ctx, EventsChannel)
}
