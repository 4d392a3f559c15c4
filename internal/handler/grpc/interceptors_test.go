package grpc

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/intelli-scan/internal/app"
	"github.com/MKhiriev/intelli-scan/internal/logger"
	"github.com/MKhiriev/intelli-scan/internal/mock"
	"github.com/MKhiriev/intelli-scan/internal/service"
	"github.com/MKhiriev/intelli-scan/internal/utils"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const guardedMethod = "/intelli.scan.v1.Users/GetUser"

func newTestHandler(t *testing.T) (*Handler, *mock.MockAuthService) {
	t.Helper()
	auth := mock.NewMockAuthService(gomock.NewController(t))
	return NewHandler(&service.Services{AuthService: auth}, logger.Nop()), auth
}

func withMetadata(pairs ...string) context.Context {
	return metadata.NewIncomingContext(context.Background(), metadata.Pairs(pairs...))
}

func TestAuthInterceptor_RejectsUniformly(t *testing.T) {
	tests := []struct {
		name     string
		ctx      context.Context
		parseErr error
	}{
		{name: "no metadata", ctx: context.Background()},
		{name: "no authorization", ctx: withMetadata("x-trace-id", "t")},
		{name: "wrong scheme", ctx: withMetadata(authorizationKey, "Token abc")},
		{name: "empty bearer", ctx: withMetadata(authorizationKey, "Bearer ")},
		{name: "expired", ctx: withMetadata(authorizationKey, "Bearer old"), parseErr: service.ErrExpiredToken},
		{name: "invalid", ctx: withMetadata(authorizationKey, "Bearer bad"), parseErr: service.ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, auth := newTestHandler(t)
			if tt.parseErr != nil {
				auth.EXPECT().ParseToken(gomock.Any(), gomock.Any()).Return(int64(0), tt.parseErr)
			}

			next := func(context.Context, any) (any, error) {
				t.Fatal("handler must not be called")
				return nil, nil
			}

			resp, err := h.auth(tt.ctx, nil, &grpc.UnaryServerInfo{FullMethod: guardedMethod}, next)

			assert.Nil(t, resp)
			st, ok := status.FromError(err)
			require.True(t, ok)
			assert.Equal(t, codes.PermissionDenied, st.Code())
			assert.Equal(t, app.MsgNotAuthorized, st.Message())
		})
	}
}

func TestAuthInterceptor_PutsUserIDInContext(t *testing.T) {
	h, auth := newTestHandler(t)
	auth.EXPECT().ParseToken(gomock.Any(), "good").Return(int64(5), nil)

	var gotID int64
	next := func(ctx context.Context, _ any) (any, error) {
		gotID, _ = utils.GetUserIDFromContext(ctx)
		return "ok", nil
	}

	resp, err := h.auth(withMetadata(authorizationKey, "Bearer good"), nil, &grpc.UnaryServerInfo{FullMethod: guardedMethod}, next)

	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
	assert.Equal(t, int64(5), gotID)
}

func TestAuthInterceptor_HealthIsPublic(t *testing.T) {
	h, _ := newTestHandler(t)

	called := false
	next := func(context.Context, any) (any, error) {
		called = true
		return nil, nil
	}

	_, err := h.auth(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}, next)

	require.NoError(t, err)
	assert.True(t, called)
}

func TestIsPublic(t *testing.T) {
	assert.True(t, isPublic("/grpc.health.v1.Health/Check"))
	assert.True(t, isPublic("/grpc.health.v1.Health/Watch"))
	assert.False(t, isPublic("/grpc.health.v1.HealthX/Check"))
	assert.False(t, isPublic(guardedMethod))
	assert.False(t, isPublic(""))
}

func TestTraceIDInterceptor(t *testing.T) {
	tests := []struct {
		name     string
		ctx      context.Context
		wantSame string
	}{
		{name: "incoming id", ctx: withMetadata(traceIDKey, "trace-7"), wantSame: "trace-7"},
		{name: "generated id", ctx: context.Background()},
		{name: "oversized id", ctx: withMetadata(traceIDKey, strings.Repeat("z", maxTraceIDLength+1))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := NewHandler(&service.Services{}, &logger.Logger{Logger: zerolog.New(&buf)})

			next := func(ctx context.Context, _ any) (any, error) {
				logger.FromContext(ctx).Info().Msg("in handler")
				return nil, nil
			}

			_, err := h.withTraceID(tt.ctx, nil, &grpc.UnaryServerInfo{FullMethod: guardedMethod}, next)
			require.NoError(t, err)

			out := buf.String()
			assert.Contains(t, out, `"grpc_method":"`+guardedMethod+`"`)
			if tt.wantSame != "" {
				assert.Contains(t, out, `"trace_id":"`+tt.wantSame+`"`)
				return
			}
			assert.Contains(t, out, `"trace_id":"`)
			assert.NotContains(t, out, strings.Repeat("z", maxTraceIDLength+1))
		})
	}
}
