package websocket

import (
	"encoding/json"
	"log"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	engine "github.com/Skario37/bubbles/bubble-engine"
)

// Params configures the streaming server.
type Params struct {
	Address string // host:port to listen on
	Prefix  string // URL prefix for the static root
	Root    string // directory served at the prefix
	FPS     int    // frames broadcast per second
}

// resize is the only message clients send.
type resize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// A server application calls the Upgrade method from an HTTP request handler
// to initiate a connection.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Server drives the engine on a frame ticker and broadcasts every frame's
// draw ops to all connected clients.
type Server struct {
	params Params

	mu      sync.Mutex
	clients map[*websocket.Conn]bool

	// resizes are buffered here and applied on frame boundaries only.
	resizeChan chan resize
}

// NewServer builds a server with the given parameters.
func NewServer(p Params) *Server {
	if p.FPS <= 0 {
		p.FPS = 60
	}
	return &Server{
		params:     p,
		clients:    make(map[*websocket.Conn]bool),
		resizeChan: make(chan resize, 8),
	}
}

// Run serves the static root, upgrades /ws connections and runs the frame
// loop until the listener fails.
func (s *Server) Run(e *engine.Engine) error {
	root, err := filepath.Abs(s.params.Root)
	if err != nil {
		return err
	}

	log.Printf("serving %s as %s on %s", root, s.params.Prefix, s.params.Address)
	mux := http.NewServeMux()
	mux.Handle(s.params.Prefix, http.StripPrefix(s.params.Prefix, http.FileServer(http.Dir(root))))
	mux.HandleFunc("/ws", s.wsHandler)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Print(r.RemoteAddr + " " + r.Method + " " + r.URL.String())
		mux.ServeHTTP(w, r)
	})

	go s.loop(e)

	server := http.Server{
		Addr:    s.params.Address,
		Handler: handler,
	}
	return server.ListenAndServe()
}

// loop is the frame scheduler: one engine step per tick, with any pending
// resizes applied first so they never interleave mid-frame.
func (s *Server) loop(e *engine.Engine) {
	rec := new(Recorder)
	ticker := time.NewTicker(time.Second / time.Duration(s.params.FPS))
	defer ticker.Stop()

	for range ticker.C {
		for drained := false; !drained; {
			select {
			case rz := <-s.resizeChan:
				e.HandleResize(rz.Width, rz.Height)
			default:
				drained = true
			}
		}
		e.StepFrame(rec)
		s.broadcast(rec.Snapshot())
	}
}

func (s *Server) broadcast(f Frame) {
	buf, err := json.Marshal(f)
	if err != nil {
		log.Println(err)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.clients {
		if err := conn.WriteMessage(websocket.TextMessage, buf); err != nil {
			log.Println(err)
			conn.Close()
			delete(s.clients, conn)
		}
	}
}

// wsHandler defines the websocket connection endpoint.
func (s *Server) wsHandler(w http.ResponseWriter, r *http.Request) {
	upgrader.CheckOrigin = func(r *http.Request) bool { return true }

	// Upgrade the http connection to a WebSocket connection.
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		if _, ok := err.(websocket.HandshakeError); !ok {
			log.Println(err)
		}
		return
	}

	s.mu.Lock()
	s.clients[conn] = true
	s.mu.Unlock()

	go s.readSocket(conn)
}

// readSocket listens for resize messages until the client goes away.
func (s *Server) readSocket(conn *websocket.Conn) {
	defer func() {
		s.mu.Lock()
		delete(s.clients, conn)
		s.mu.Unlock()
		conn.Close()
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("error: %v", err)
			}
			return
		}
		var rz resize
		if err := json.Unmarshal(msg, &rz); err != nil {
			log.Println(err)
			continue
		}
		select {
		case s.resizeChan <- rz:
		default:
			// frame loop is behind; drop rather than block the reader
		}
	}
}
