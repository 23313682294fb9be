package logging

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Keys of the request-scoped values on a gin context.
const (
	KeyRequestID = "request_id"
	KeyStartTime = "start_time"
	KeyPage      = "page"
)

func SetRequestID(c *gin.Context, id string) { c.Set(KeyRequestID, id) }

// MarkStart records when handling began; request log lines carry the elapsed time.
func MarkStart(c *gin.Context) { c.Set(KeyStartTime, time.Now()) }

// SetPage tags the request with the dashboard page it operates on.
func SetPage(c *gin.Context, page string) { c.Set(KeyPage, page) }

func annotate(c *gin.Context, e *zerolog.Event) *zerolog.Event {
	if c == nil {
		return e
	}
	for _, key := range []string{KeyRequestID, KeyPage} {
		if s := c.GetString(key); s != "" {
			e.Str(key, s)
		}
	}
	if start := c.GetTime(KeyStartTime); !start.IsZero() {
		e.Dur("duration", time.Since(start))
	}
	return e
}

func Info(c *gin.Context) *zerolog.Event  { return annotate(c, log.Info()) }
func Debug(c *gin.Context) *zerolog.Event { return annotate(c, log.Debug()) }
func Warn(c *gin.Context) *zerolog.Event  { return annotate(c, log.Warn()) }
func Error(c *gin.Context) *zerolog.Event { return annotate(c, log.Error()) }
