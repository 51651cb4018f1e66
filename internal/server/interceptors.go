package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"

	"github.com/qrsafety/sds-pipeline/internal/common"
)

// RequestIDInterceptor stamps every RPC with a request ID, carried in the
// context so downstream layers (LLM client, pipeline) log the same one,
// and logs method and timing.
func RequestIDInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	if logger == nil {
		logger = slog.Default()
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		rid := uuid.New().String()
		ctx = common.WithRequestID(ctx, rid)

		start := time.Now()
		resp, err := handler(ctx, req)
		elapsed := time.Since(start)

		if err != nil {
			logger.Warn("rpc.failed",
				"req_id", rid,
				"method", info.FullMethod,
				"elapsed_ms", elapsed.Milliseconds(),
				"error", err,
			)
			return resp, err
		}
		logger.Info("rpc.ok",
			"req_id", rid,
			"method", info.FullMethod,
			"elapsed_ms", elapsed.Milliseconds(),
		)
		return resp, nil
	}
}
