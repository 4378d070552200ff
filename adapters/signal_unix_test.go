//go:build unix
// +build unix

// File: adapters/signal_unix_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package adapters_test

import (
	"os"
	"testing"
	"time"

	"golang.org/x/sys/unix"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/evq/adapters"
	"github.com/momentics/evq/api"
	"github.com/momentics/evq/facade"
)

func TestSignalProducer_ForwardsSignalAsEvent(t *testing.T) {
	mgr, err := facade.New(facade.DefaultConfig())
	require.NoError(t, err)

	got := make(chan int, 4)
	mgr.AddListener(api.EventUser0, adapters.NewCallback(func(code, param int) {
		got <- code
	}))

	sp := adapters.NewSignalProducer(mgr, api.HighPriority)
	require.NoError(t, sp.Start())
	defer sp.Stop()

	require.NoError(t, unix.Kill(os.Getpid(), unix.SIGUSR1))

	deadline := time.After(5 * time.Second)
	for {
		if mgr.ProcessAllEvents() > 0 {
			break
		}
		select {
		case <-deadline:
			t.Fatal("signal never arrived as an event")
		default:
			time.Sleep(time.Millisecond)
		}
	}
	assert.Equal(t, api.EventUser0, <-got)
}

func TestSignalProducer_MapValidation(t *testing.T) {
	mgr, err := facade.New(facade.DefaultConfig())
	require.NoError(t, err)
	sp := adapters.NewSignalProducer(mgr, api.LowPriority)

	assert.ErrorIs(t, sp.Map(nil, api.EventUser3, 0), api.ErrInvalidArgument)
	assert.ErrorIs(t, sp.Map(unix.SIGHUP, api.EventNone, 0), api.ErrInvalidArgument)
	assert.NoError(t, sp.Map(unix.SIGHUP, api.EventUser3, 1))

	require.NoError(t, sp.Start())
	assert.ErrorIs(t, sp.Start(), api.ErrAlreadyRunning)
	assert.ErrorIs(t, sp.Map(unix.SIGWINCH, api.EventUser4, 0), api.ErrAlreadyRunning)
	sp.Stop()
	sp.Stop() // idempotent
}
