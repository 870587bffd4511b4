package cli

import (
	"context"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterrupt_Stop(t *testing.T) {
	ctx := WithInterrupt(context.Background())
	ctx.Stop()

	<-ctx.Done()
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
	assert.Nil(t, ctx.Signal())
}

func TestInterrupt_ParentCancel(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	ctx := WithInterrupt(parent)
	defer ctx.Stop()

	cancel()
	<-ctx.Done()
	assert.Nil(t, ctx.Signal())
}

func TestInterrupt_RecordsSignal(t *testing.T) {
	ctx := WithInterrupt(context.Background())
	defer ctx.Stop()

	require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGTERM))

	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("context was not cancelled by SIGTERM")
	}
	assert.Equal(t, syscall.SIGTERM, ctx.Signal())
}
