package middleware

import (
	"strconv"
	"time"

	"github.com/philbirt/event-staking/internal/monitoring"
	"github.com/wb-go/wbf/ginext"
)

func Metrics() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()

		c.Next()

		// FullPath keeps the route template so ids don't explode cardinality.
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		monitoring.TrackHTTPRequest(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start).Seconds(),
		)
	}
}
