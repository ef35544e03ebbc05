package cartcontroller

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/ijasahamedstr/buycourse.lk-sub000/cartstore"
	"github.com/ijasahamedstr/buycourse.lk-sub000/pkg/logger"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Every open tab of the same cart connects here; when any of them
// writes, the others receive the full refreshed cart. Last writer wins,
// no merge.
var cartClients = struct {
	sync.Mutex
	conns map[string]map[*websocket.Conn]bool
}{conns: make(map[string]map[*websocket.Conn]bool)}

// CartWebSocketHandler handles GET /ws/cart/:token.
func CartWebSocketHandler(c *gin.Context) {
	token := c.Param("token")
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	cartClients.Lock()
	if cartClients.conns[token] == nil {
		cartClients.conns[token] = make(map[*websocket.Conn]bool)
	}
	cartClients.conns[token][conn] = true
	cartClients.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			cartClients.Lock()
			delete(cartClients.conns[token], conn)
			if len(cartClients.conns[token]) == 0 {
				delete(cartClients.conns, token)
			}
			cartClients.Unlock()
			break
		}
	}
}

func pushCart(token string, lines []cartstore.Line) {
	payload, err := json.Marshal(gin.H{
		"type":  "cart",
		"items": lines,
		"total": cartstore.Total(lines),
	})
	if err != nil {
		return
	}

	cartClients.Lock()
	defer cartClients.Unlock()
	for conn := range cartClients.conns[token] {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			conn.Close()
			delete(cartClients.conns[token], conn)
		}
	}
}

// StartCartSync consumes the store's change feed and pushes the fresh
// cart to every connected client of the changed token. Runs until ctx
// is cancelled.
func StartCartSync(ctx context.Context, store *cartstore.Store) {
	sub := store.Subscribe(ctx)
	defer sub.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-sub.Channel():
			if !ok {
				return
			}
			token := msg.Payload

			cartClients.Lock()
			_, watched := cartClients.conns[token]
			cartClients.Unlock()
			if !watched {
				continue
			}

			lines, err := store.Load(ctx, token)
			if err != nil {
				logger.Warn().Err(err).Str("token", token).Msg("cart sync load failed")
				continue
			}
			pushCart(token, lines)
		}
	}
}
