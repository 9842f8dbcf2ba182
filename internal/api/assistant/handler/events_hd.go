package assistantHandler

import (
	"time"

	"github.com/gofiber/websocket/v2"
)

// handleEventStream keeps one presentation or device client attached to
// the broadcast hub. The read loop only services pings and close frames;
// all data flows server-to-client.
func (h *AssistantHandler) handleEventStream(c *websocket.Conn) {
	h.hub.Register(c)
	defer h.hub.Unregister(c)

	c.SetPingHandler(func(data string) error {
		h.log.Debug("Received ping, sending pong")
		if err := c.WriteControl(websocket.PongMessage, []byte(data), time.Now().Add(5*time.Second)); err != nil {
			h.log.Errorf("Error sending pong: %v", err)
		}
		return nil
	})

	maxReadTimeout := 60 * time.Second

	for {
		if err := c.SetReadDeadline(time.Now().Add(maxReadTimeout)); err != nil {
			h.log.Errorf("Error setting read deadline: %v", err)
			break
		}

		if _, _, err := c.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.log.Errorf("Event stream error: %v", err)
			} else {
				h.log.Info("Event stream connection closed")
			}
			break
		}
	}
}
