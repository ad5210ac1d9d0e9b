package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/quantpitch/pitchdeck/internal/series"
	"github.com/quantpitch/pitchdeck/pkg/config"
	"github.com/quantpitch/pitchdeck/pkg/logger"
)

const (
	writeTimeout   = 10 * time.Second
	refreshMessage = "refresh"
)

// StreamHandler pushes freshly generated datasets over a WebSocket. Each
// connection owns its own generator, so concurrent viewers never share
// state; a viewer sends "refresh" to receive a new dataset.
type StreamHandler struct {
	config   *config.Config
	logger   *logger.Logger
	upgrader websocket.Upgrader
}

// NewStreamHandler creates a new stream handler
func NewStreamHandler(cfg *config.Config, log *logger.Logger) *StreamHandler {
	return &StreamHandler{
		config: cfg,
		logger: log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			// Presentation is public marketing collateral
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Stream upgrades the connection and serves refresh requests
// GET /ws/performance
func (h *StreamHandler) Stream(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WithError(err).Warn("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	h.logger.WithField("remote", conn.RemoteAddr().String()).Debug("Viewer connected")

	// Initial dataset on connect
	if err := h.push(conn); err != nil {
		h.logger.WithError(err).Warn("Failed to push initial dataset")
		return
	}

	for {
		messageType, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.WithError(err).Warn("WebSocket read failed")
			}
			return
		}

		if messageType != websocket.TextMessage || string(message) != refreshMessage {
			continue
		}

		if err := h.push(conn); err != nil {
			h.logger.WithError(err).Warn("Failed to push dataset")
			return
		}
	}
}

// push generates a dataset and writes it to the connection
func (h *StreamHandler) push(conn *websocket.Conn) error {
	cfg := series.DefaultConfig()
	cfg.HorizonDays = h.config.Series.HorizonDays
	cfg.PeriodsPerYear = h.config.Series.PeriodsPerYear
	cfg.RiskFreeRate = h.config.Series.RiskFreeRate

	result, err := series.NewGenerator(cfg).Generate()
	if err != nil {
		result = series.Empty(cfg)
	}

	_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return conn.WriteJSON(result)
}
