package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/postwire/postwire/entities"
)

const heartbeatInterval = 15 * time.Second

func (s *Server) streamPosts(c echo.Context) error {
	return s.stream(c, entities.TopicPost)
}

func (s *Server) streamPostComments(c echo.Context) error {
	id := c.Param("id")

	// Subscribing to a missing post is a 404 rather than a silent stream
	// that never delivers.
	if _, err := s.queries.GetPost(c.Request().Context(), id); err != nil {
		return httpError(err)
	}

	return s.stream(c, entities.TopicComment(id))
}

// stream bridges one bus subscription onto an SSE response. The subscription
// is dropped as soon as the client goes away; an event published concurrently
// with the disconnect may or may not be delivered.
func (s *Server) stream(c echo.Context, topic string) error {
	sub := s.bus.Subscribe(topic)
	defer sub.Unsubscribe()

	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set(echo.HeaderConnection, "keep-alive")
	w.WriteHeader(http.StatusOK)
	w.Flush()

	s.logger.Debug("sse stream opened", zap.String("topic", topic))

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-c.Request().Context().Done():
			s.logger.Debug("sse stream closed", zap.String("topic", topic))
			return nil
		case <-heartbeat.C:
			if _, err := fmt.Fprint(w, ": keep-alive\n\n"); err != nil {
				return nil
			}

			w.Flush()
		case ev := <-sub.C():
			payload, err := json.Marshal(ev)
			if err != nil {
				s.logger.Error("marshal event", zap.Error(err))
				continue
			}

			if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
				return nil
			}

			w.Flush()
		}
	}
}
