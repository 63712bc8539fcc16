package v1alpha1

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/KirkDiggler/tamagotchi-api/internal/errors"
)

const (
	wsWriteWait    = 10 * time.Second
	wsPongWait     = 60 * time.Second
	wsPingInterval = wsPongWait * 9 / 10
	wsMaxFrameSize = 4096
)

// inboundFrame is what a WebSocket client sends. The user comes from the URL.
type inboundFrame struct {
	Text         string `json:"text"`
	CallbackData string `json:"callback_data"`
}

// GatewayConfig holds dependencies for the WebSocket gateway
type GatewayConfig struct {
	Dispatcher *Dispatcher
	// Token, when set, must be presented as ?token= or a bearer Authorization header
	Token string
	// CheckOrigin defaults to allowing every origin
	CheckOrigin func(r *http.Request) bool
}

// Validate ensures all required dependencies are present
func (c *GatewayConfig) Validate() error {
	if c == nil || c.Dispatcher == nil {
		return errors.InvalidArgument("dispatcher is required")
	}
	return nil
}

// Gateway serves the chat over WebSocket for browser and test clients
type Gateway struct {
	dispatcher *Dispatcher
	token      string
	upgrader   websocket.Upgrader
}

// NewGateway creates a gateway
func NewGateway(cfg *GatewayConfig) (*Gateway, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	checkOrigin := cfg.CheckOrigin
	if checkOrigin == nil {
		checkOrigin = func(*http.Request) bool { return true }
	}

	return &Gateway{
		dispatcher: cfg.Dispatcher,
		token:      cfg.Token,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin,
		},
	}, nil
}

// Routes returns the gateway's HTTP routes: /ws and /health
func (g *Gateway) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", g.serveWS)
	mux.HandleFunc("/health", serveHealth)
	return mux
}

func serveHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (g *Gateway) authorized(r *http.Request) bool {
	if g.token == "" {
		return true
	}
	presented := r.URL.Query().Get("token")
	if presented == "" {
		presented = strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	}
	return subtle.ConstantTimeCompare([]byte(presented), []byte(g.token)) == 1
}

func (g *Gateway) serveWS(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := strings.TrimSpace(r.URL.Query().Get("user_id"))
	if userID == "" {
		http.Error(w, "user_id is required", errors.CodeInvalidArgument.HTTPStatus())
		return
	}
	if !g.authorized(r) {
		http.Error(w, "invalid token", errors.CodeUnauthenticated.HTTPStatus())
		return
	}

	conn, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error
		slog.WarnContext(ctx, "websocket upgrade failed",
			"user_id", userID,
			"error", err.Error())
		return
	}
	defer conn.Close()

	slog.InfoContext(ctx, "websocket client connected", "user_id", userID)

	conn.SetReadLimit(wsMaxFrameSize)
	_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})

	done := make(chan struct{})
	defer close(done)
	go keepAlive(conn, done)

	for {
		var frame inboundFrame
		if err := conn.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.WarnContext(ctx, "websocket read failed",
					"user_id", userID,
					"error", err.Error())
			}
			return
		}

		reply, err := g.dispatcher.Handle(ctx, &Update{
			UserID:       userID,
			Text:         frame.Text,
			CallbackData: frame.CallbackData,
		})
		if err != nil {
			reply = textReply(errors.UserMessage(err))
		}

		_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
		if err := conn.WriteJSON(reply); err != nil {
			slog.WarnContext(ctx, "websocket write failed",
				"user_id", userID,
				"error", err.Error())
			return
		}
	}
}

// keepAlive pings the client so idle connections survive proxies. Control frames
// may be written concurrently with WriteJSON.
func keepAlive(conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(wsPingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteWait)); err != nil {
				return
			}
		}
	}
}
