package ordercontroller

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/ijasahamedstr/buycourse.lk-sub000/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var wsClients = struct {
	sync.Mutex
	conns map[*websocket.Conn]bool
}{conns: make(map[*websocket.Conn]bool)}

// OrderWebSocketHandler handles GET /ws/orders: the admin dashboard
// connects here and receives every newly placed order.
func OrderWebSocketHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	wsClients.Lock()
	wsClients.conns[conn] = true
	wsClients.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			wsClients.Lock()
			delete(wsClients.conns, conn)
			wsClients.Unlock()
			break
		}
	}
}

func broadcastNewOrder(order models.Order) {
	data, err := json.Marshal(order)
	if err != nil {
		return
	}

	wsClients.Lock()
	defer wsClients.Unlock()
	for conn := range wsClients.conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			conn.Close()
			delete(wsClients.conns, conn)
		}
	}
}
