package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
)

// Interrupt is a context ended by the first SIGINT or SIGTERM, or by Stop.
type Interrupt struct {
	context.Context
	cancel context.CancelCauseFunc
}

type signalCause struct{ sig os.Signal }

func (c signalCause) Error() string { return "received " + c.sig.String() }

// WithInterrupt derives an Interrupt from parent. The signal handler is
// released as soon as the context ends.
func WithInterrupt(parent context.Context) *Interrupt {
	ctx, cancel := context.WithCancelCause(parent)
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigs)
		select {
		case sig := <-sigs:
			cancel(signalCause{sig: sig})
		case <-ctx.Done():
		}
	}()

	return &Interrupt{Context: ctx, cancel: cancel}
}

// Stop ends the context without recording a signal.
func (in *Interrupt) Stop() { in.cancel(nil) }

// Signal returns the signal that ended the context, or nil.
func (in *Interrupt) Signal() os.Signal {
	var c signalCause
	if errors.As(context.Cause(in.Context), &c) {
		return c.sig
	}
	return nil
}
