package middleware

import (
	"strconv"
	"time"

	"gonotes/utils"

	"github.com/gin-gonic/gin"
	ua "github.com/mileusna/useragent"
)

// MetricsMiddleware records request counts, latency, response sizes and
// client browser/device distribution. The route template (c.FullPath)
// is used as the path label so note ids do not explode cardinality.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method

		utils.ActiveRequests.Inc()
		defer utils.ActiveRequests.Dec()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		status := strconv.Itoa(c.Writer.Status())
		duration := time.Since(start).Seconds()

		utils.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
		utils.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
		utils.HTTPResponseSize.WithLabelValues(method, path).Observe(float64(c.Writer.Size()))

		browser, device := parseClient(c.Request.UserAgent())
		utils.ClientRequestsTotal.WithLabelValues(browser, device).Inc()
	}
}

func parseClient(userAgent string) (browser, device string) {
	if userAgent == "" {
		return "unknown", "unknown"
	}

	parsed := ua.Parse(userAgent)

	browser = parsed.Name
	if browser == "" {
		browser = "unknown"
	}

	switch {
	case parsed.Bot:
		device = "bot"
	case parsed.Mobile:
		device = "mobile"
	case parsed.Tablet:
		device = "tablet"
	default:
		device = "desktop"
	}

	return browser, device
}
