package sse

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ykatyhoney/sunflower-land/internal/logger"
)

// Handler streams the lifecycle events of the farm named by the {id} route
// parameter. ?types=a,b narrows the stream to those event types.
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "SSE not supported", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		farmID := chi.URLParam(r, ParamFarmID)

		var eventTypes []string
		if filterParam := r.URL.Query().Get(QueryTypes); filterParam != "" {
			eventTypes = strings.Split(filterParam, ",")
		}

		log := logger.FromContext(r.Context())

		client := hub.Register(farmID, eventTypes)
		log.Info(LogMsgClientConnected,
			"client_id", client.ID,
			"farm_id", farmID,
			"filters", eventTypes,
			"total_clients", hub.ClientCount())

		defer func() {
			hub.Unregister(client.ID)
			log.Info(LogMsgClientDisconnected,
				"client_id", client.ID,
				"total_clients", hub.ClientCount())
		}()

		write := func(e Event) bool {
			msg, err := FormatSSEMessage(e)
			if err != nil {
				log.Error(LogMsgWriteError, "error", err)
				return true
			}
			if _, err := w.Write(msg); err != nil {
				log.Warn(LogMsgWriteError, "error", err)
				return false
			}
			flusher.Flush()
			return true
		}

		connected := Event{
			ID:        client.ID,
			Type:      EventTypeConnected,
			FarmID:    farmID,
			Timestamp: time.Now().UnixMilli(),
			Payload:   map[string]interface{}{"client_id": client.ID, "filters": eventTypes},
		}
		if !write(connected) {
			return
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		ctx := r.Context()
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-client.EventChannel:
				if !ok {
					// hub stopped
					return
				}
				if !write(event) {
					return
				}

			case <-ticker.C:
				if !write(Event{Type: EventTypeKeepalive, FarmID: farmID, Timestamp: time.Now().UnixMilli()}) {
					return
				}
			}
		}
	}
}
