package wcmp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type hooked struct {
	Element
	calls []string
}

func (h *hooked) ConnectedCallback(ctx context.Context, vm *VM) error {
	h.calls = append(h.calls, "connected")
	return nil
}

func (h *hooked) DisconnectedCallback(ctx context.Context, vm *VM) error {
	h.calls = append(h.calls, "disconnected")
	return nil
}

func (h *hooked) RenderedCallback(ctx context.Context, vm *VM) error {
	h.calls = append(h.calls, "rendered")
	return nil
}

func (h *hooked) ErrorCallback(ctx context.Context, vm *VM, err error) error {
	h.calls = append(h.calls, "error")
	return nil
}

func TestCallAdapters(t *testing.T) {
	ctx := context.Background()
	inst := &hooked{}
	vm := &VM{instance: inst}

	assert.NoError(t, CallConnected(ctx, vm))
	assert.NoError(t, CallDisconnected(ctx, vm))
	assert.NoError(t, CallRendered(ctx, vm))
	assert.NoError(t, CallError(ctx, vm, errors.New("x")))
	assert.Nil(t, CallRender(ctx, vm))
	assert.Equal(t, []string{"connected", "disconnected", "rendered", "error"}, inst.calls)
}

func TestCallAdaptersWithoutHooks(t *testing.T) {
	ctx := context.Background()
	vm := &VM{instance: struct{}{}}
	boom := errors.New("boom")

	assert.NoError(t, CallConnected(ctx, vm))
	assert.NoError(t, CallDisconnected(ctx, vm))
	assert.NoError(t, CallRendered(ctx, vm))
	assert.Nil(t, CallRender(ctx, vm))
	assert.ErrorIs(t, CallError(ctx, vm, boom), boom)
}
