package reservas

import (
	"encoding/json"
	"net/http"
	"sync"

	"reservago/models"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins; tighten for production
		return true
	},
}

var (
	subscribers = make(map[string][]*websocket.Conn)
	mu          sync.Mutex
)

// HandleReservaWS subscribes the caller to live reservation updates for one
// sede. Creation and state transitions are pushed as hydrated records.
func HandleReservaWS(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sedeID := ps.ByName("sedeId")

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "WebSocket upgrade failed", http.StatusBadRequest)
		return
	}

	mu.Lock()
	subscribers[sedeID] = append(subscribers[sedeID], conn)
	mu.Unlock()

	for {
		// keeps the connection alive until the client disconnects
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	mu.Lock()
	conns := subscribers[sedeID]
	newList := make([]*websocket.Conn, 0, len(conns))
	for _, c := range conns {
		if c != conn {
			newList = append(newList, c)
		}
	}
	subscribers[sedeID] = newList
	mu.Unlock()

	conn.Close()
}

// BroadcastReserva pushes a reservation to every subscriber of its sede,
// dropping connections that fail to write.
func BroadcastReserva(sedeID string, reserva models.Reserva) {
	data, err := json.Marshal(reserva)
	if err != nil {
		return
	}

	mu.Lock()
	defer mu.Unlock()

	conns := subscribers[sedeID]
	newList := conns[:0]
	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err == nil {
			newList = append(newList, conn)
		} else {
			conn.Close()
		}
	}
	subscribers[sedeID] = newList
}
