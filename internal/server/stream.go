package server

import (
	"net/http"

	"github.com/felfel/go-felfel/pkg/timer"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Stream writes count names to a websocket, one every stream interval, then closes it.
func (h *Handler) Stream(w http.ResponseWriter, r *http.Request) {
	count, err := queryInt(r, "count", h.cfg.StreamMaxCount)
	if err != nil {
		writeError(h.render, w, http.StatusBadRequest, err)
		return
	}
	if count <= 0 {
		writeError(h.render, w, http.StatusBadRequest, ErrInvalidParam("count", r.URL.Query().Get("count")))
		return
	}
	if count > h.cfg.StreamMaxCount {
		count = h.cfg.StreamMaxCount
	}
	useLatin, err := queryBool(r, "latin", false)
	if err != nil {
		writeError(h.render, w, http.StatusBadRequest, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Debug().Caller().Err(err).Msg("failed to upgrade websocket connection")
		return
	}
	defer conn.Close()

	// the client never sends anything, reading only notices it going away
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	alarm := make(chan bool, 1)
	t := timer.NewTimer(h.cfg.StreamInterval, alarm)
	defer t.Stop()

	for i := 0; i < count; i++ {
		if i > 0 {
			t.Start()
			select {
			case <-alarm:
			case <-gone:
				return
			}
		}
		var name string
		if useLatin {
			name = h.generator.GenID()
		} else {
			name = h.generator.Gen()
		}
		h.onGenerate(r.Context(), KindStream, name)
		if err := conn.WriteJSON(NameResponse{Name: name}); err != nil {
			h.log.Debug().Caller().Err(err).Msg("failed to write to websocket")
			return
		}
	}
	_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "done"))
}
