package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/bus-ticket/backend/internal/domain"
	"github.com/pkordes/bus-ticket/backend/internal/service"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSessionStore_CreateAndGet(t *testing.T) {
	s := service.NewSessionStore(discardLogger(), time.Hour)

	id, form := s.Create()
	got, err := s.Get(id)

	require.NoError(t, err)
	assert.Same(t, form, got)
	assert.Equal(t, 1, s.Len())
}

func TestSessionStore_sessionsAreIndependent(t *testing.T) {
	s := service.NewSessionStore(discardLogger(), time.Hour)
	_, a := s.Create()
	_, b := s.Create()

	a.LoadSample()

	assert.Equal(t, domain.EmptyRecord(), b.State().Record)
}

func TestSessionStore_Get_unknown(t *testing.T) {
	s := service.NewSessionStore(discardLogger(), time.Hour)

	_, err := s.Get(uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSessionStore_Prune_disabledWithZeroTTL(t *testing.T) {
	s := service.NewSessionStore(discardLogger(), 0)
	s.Create()

	assert.Zero(t, s.Prune())
	assert.Equal(t, 1, s.Len())
}

func TestSessionStore_RunPruner_stopsOnCancel(t *testing.T) {
	s := service.NewSessionStore(discardLogger(), time.Hour)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.RunPruner(ctx, time.Millisecond)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("RunPruner did not return after cancel")
	}
}
