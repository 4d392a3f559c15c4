// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"strings"

	"github.com/MKhiriev/intelli-scan/internal/app"
	"github.com/MKhiriev/intelli-scan/internal/logger"
	"github.com/MKhiriev/intelli-scan/internal/utils"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const (
	traceIDKey       = "x-trace-id"
	authorizationKey = "authorization"
	maxTraceIDLength = 128
)

var traceIDs = utils.NewUUIDGenerator()

// publicServices are reachable without a session token.
var publicServices = []string{
	"/" + healthpb.Health_ServiceDesc.ServiceName + "/",
}

func isPublic(fullMethod string) bool {
	for _, prefix := range publicServices {
		if strings.HasPrefix(fullMethod, prefix) {
			return true
		}
	}
	return false
}

func firstValue(ctx context.Context, key string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if values := md.Get(key); len(values) > 0 {
		return values[0]
	}
	return ""
}

// withTraceID attaches a child logger carrying trace_id to the call context.
// The id is taken from x-trace-id metadata or generated, and is sent back in
// the response header.
func (h *Handler) withTraceID(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	traceID := firstValue(ctx, traceIDKey)
	if traceID == "" || len(traceID) > maxTraceIDLength {
		traceID = traceIDs.Generate()
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID).Str("grpc_method", info.FullMethod)
	})

	// SetHeader fails only outside a real server stream.
	_ = grpc.SetHeader(ctx, metadata.Pairs(traceIDKey, traceID))

	return handler(l.WithContext(ctx), req)
}

// auth guards every method outside publicServices with the bearer token from
// authorization metadata. All failures return the same PermissionDenied
// status.
func (h *Handler) auth(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if isPublic(info.FullMethod) {
		return handler(ctx, req)
	}

	log := logger.FromContext(ctx)

	tokenString, err := utils.ParseBearerToken(firstValue(ctx, authorizationKey))
	if err != nil {
		log.Warn().Err(err).Msg("call rejected by auth interceptor")
		return nil, status.Error(codes.PermissionDenied, app.MsgNotAuthorized)
	}

	userID, err := h.services.AuthService.ParseToken(ctx, tokenString)
	if err != nil {
		log.Warn().Err(err).Msg("call rejected by auth interceptor")
		return nil, status.Error(codes.PermissionDenied, app.MsgNotAuthorized)
	}

	return handler(utils.WithUserID(ctx, userID), req)
}
