package upstreamstub

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/orris-inc/statsboard/internal/shared/logger"
)

func (r Response) delay() (time.Duration, error) {
	if r.Delay == "" {
		return 0, nil
	}
	return time.ParseDuration(r.Delay)
}

// NewHandler serves the fixture on the console paths.
func NewHandler(f *Fixture, serverTotalPath, ticketPath string, log logger.Interface) http.Handler {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.GET(serverTotalPath, reply(f.ServerTotal, log))
	engine.GET(ticketPath, reply(f.TicketWaitReply, log))
	return engine
}

func reply(r Response, log logger.Interface) gin.HandlerFunc {
	delay, _ := r.delay()
	status := r.Status
	if status == 0 {
		status = http.StatusOK
	}

	return func(c *gin.Context) {
		log.Debugw("stub request",
			"path", c.Request.URL.Path,
			"authorization", c.GetHeader("Authorization") != "",
		)

		if delay > 0 {
			select {
			case <-time.After(delay):
			case <-c.Request.Context().Done():
				return
			}
		}

		c.JSON(status, gin.H{
			"code": r.Code,
			"msg":  r.Msg,
			"data": r.Data,
		})
	}
}
