package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantpitch/pitchdeck/internal/series"
	"github.com/quantpitch/pitchdeck/pkg/config"
	"github.com/quantpitch/pitchdeck/pkg/logger"
)

func testStreamHandler() *StreamHandler {
	cfg := &config.Config{
		Env:      "development",
		LogLevel: "error",
		Series: config.SeriesConfig{
			HorizonDays:    20,
			PeriodsPerYear: 252,
			RiskFreeRate:   0.03,
		},
	}
	return NewStreamHandler(cfg, logger.New(cfg))
}

func TestStream(t *testing.T) {
	h := testStreamHandler()
	server := httptest.NewServer(http.HandlerFunc(h.Stream))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/performance"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	// Initial dataset arrives without a request
	var initial series.Result
	_, message, err := conn.ReadMessage()
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(message, &initial))
	assert.Len(t, initial.Points, 20)

	// Each refresh message yields a fresh dataset
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("refresh")))

	var refreshed series.Result
	_, message, err = conn.ReadMessage()
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(message, &refreshed))
	assert.Len(t, refreshed.Points, 20)
}

func TestStream_IgnoresUnknownMessages(t *testing.T) {
	h := testStreamHandler()
	server := httptest.NewServer(http.HandlerFunc(h.Stream))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	// Drain the initial dataset
	_, _, err = conn.ReadMessage()
	require.NoError(t, err)

	// Unknown messages are ignored; a refresh afterwards still works
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("bogus")))
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("refresh")))

	var result series.Result
	_, message, err := conn.ReadMessage()
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(message, &result))
	assert.Len(t, result.Points, 20)
}
