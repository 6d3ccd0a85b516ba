package gateway_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"retail-crud/internal/database"
	"retail-crud/internal/database/dbtest"
	"retail-crud/internal/gateway"
)

func status(t *testing.T, hs *health.Server, service string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	resp, err := hs.Check(context.Background(), &healthpb.HealthCheckRequest{Service: service})
	if err != nil {
		return healthpb.HealthCheckResponse_UNKNOWN
	}
	return resp.Status
}

func TestWatchDatabase(t *testing.T) {
	testDB := dbtest.New(t)
	_, hs := gateway.NewHealthServer()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		gateway.WatchDatabase(ctx, testDB, hs, time.Hour)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return status(t, hs, gateway.ServiceName) == healthpb.HealthCheckResponse_SERVING
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, status(t, hs, ""))

	cancel()
	<-done
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, status(t, hs, gateway.ServiceName))
}

func TestWatchDatabaseDown(t *testing.T) {
	testDB := dbtest.New(t)
	require.NoError(t, database.Close(testDB))
	_, hs := gateway.NewHealthServer()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go gateway.WatchDatabase(ctx, testDB, hs, time.Hour)

	require.Eventually(t, func() bool {
		return status(t, hs, gateway.ServiceName) == healthpb.HealthCheckResponse_NOT_SERVING
	}, time.Second, 10*time.Millisecond)
}
