package http

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// payloadContextKey carries the marshaled request body so the logging
// transport can report its size without re-reading the request stream.
type payloadContextKey struct{}

type loggingTransport struct {
	logger    *zap.Logger
	transport http.RoundTripper
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	fields := []zap.Field{
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
	}
	if payload, ok := req.Context().Value(payloadContextKey{}).([]byte); ok {
		fields = append(fields, zap.Int("request_bytes", len(payload)))
	}
	t.logger.Debug("outgoing request", fields...)

	resp, err := t.transport.RoundTrip(req)
	if err != nil {
		t.logger.Warn("outgoing request failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
			zap.Error(err),
		)
		return nil, err
	}

	t.logger.Debug("outgoing request finished",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Int("status", resp.StatusCode),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
	)
	return resp, nil
}

// WithRequestLogging logs every outgoing request at debug level and failures
// at warn level.
func WithRequestLogging(logger *zap.Logger) HttpOpts {
	return WithTransport(func(rt http.RoundTripper) http.RoundTripper {
		return &loggingTransport{
			logger:    logger,
			transport: rt,
		}
	})
}
