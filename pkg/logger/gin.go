package logger

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"

	"github.com/Khaled152/tutor-kashier-integration/pkg/correlation"
	"github.com/gin-gonic/gin"
)

const maxBody = 8 * 1024 // 8KB

func limit(b []byte) []byte {
	if len(b) > maxBody {
		return b[:maxBody]
	}
	return b
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r *responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

// CorrelationMiddleware extracts X-Correlation-ID from request header or generates a new one.
// It stores the ID in the request context and adds it to the response header.
func CorrelationMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		corrID := c.GetHeader(correlation.HeaderName)
		if corrID == "" {
			corrID = correlation.NewID()
		}

		ctx := correlation.WithID(c.Request.Context(), corrID)
		c.Request = c.Request.WithContext(ctx)

		c.Header(correlation.HeaderName, corrID)

		c.Next()
	}
}

// GinBodyLogger logs every request with method, path, status and (size-limited)
// request and response bodies. Webhook payloads arrive in whatever shape the
// processor chose, so raw bodies are the primary debugging tool.
func (l *Logger) GinBodyLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		var requestBody []byte
		if c.Request.Body != nil {
			requestBody, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(requestBody))
		}

		responseBuffer := &bytes.Buffer{}
		writer := &responseBodyWriter{
			body:           responseBuffer,
			ResponseWriter: c.Writer,
		}
		c.Writer = writer

		c.Next()

		attrs := []slog.Attr{
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("query", c.Request.URL.RawQuery),
			slog.Int("status", c.Writer.Status()),
			bodyAttr("request_body", limit(requestBody)),
			bodyAttr("response_body", limit(responseBuffer.Bytes())),
		}

		l.l.LogAttrs(c.Request.Context(), slog.LevelInfo, "HTTP Request", attrs...)
	}
}

func bodyAttr(key string, b []byte) slog.Attr {
	bb := bytes.TrimSpace(b)

	if len(bb) == 0 {
		return slog.Any(key, nil)
	}

	// valid JSON goes in structured, anything else as a string
	if json.Valid(bb) {
		return slog.Any(key, json.RawMessage(bb))
	}

	return slog.String(key, string(bb))
}
