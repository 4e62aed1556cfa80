package figmatokens

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kataras/figma-tokens/pkg/channel"
	"github.com/kataras/figma-tokens/pkg/store"
	"github.com/kataras/figma-tokens/pkg/visual"
)

func TestPluginServe(t *testing.T) {
	ch := channel.NewMemory()
	canvas := visual.NewMemoryCanvas(visual.DefaultTemplates()...)
	log := new(recordLogger)

	p := &Plugin{
		Store:   store.NewMemory(fixture()),
		Channel: ch,
		Canvas:  canvas,
		Logger:  log,
	}

	ch.Push(channel.Message{Type: channel.TypeRunPlugin})
	ch.Push(channel.Message{Type: "resize"})
	ch.Push(channel.Message{Type: channel.TypeGenerateVisual})
	ch.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, p.Serve(ctx))

	assert.Equal(t, []channel.Message{
		channel.JSONOutput(reducedJSON),
		channel.VisualGenerated(),
	}, ch.Sent())

	committed := canvas.Committed()
	require.Len(t, committed, 1)
	assert.Len(t, committed[0].Children, 2, "two collections, the fallback entry is not drawn")
	assert.Equal(t, []string{visual.MsgCreated}, canvas.Notifications())
	assert.True(t, log.has(`ERROR resize: unknown message type`))
}

func TestPluginGenerateVisualMissingTemplate(t *testing.T) {
	ch := channel.NewMemory()
	canvas := visual.NewMemoryCanvas(visual.DefaultTemplates()[:6]...)

	p := &Plugin{Store: store.NewMemory(fixture()), Channel: ch, Canvas: canvas}

	err := p.Handle(context.Background(), channel.Message{Type: channel.TypeGenerateVisual})
	assert.ErrorIs(t, err, visual.ErrMissingComponent)
	assert.Empty(t, ch.Sent(), "visual-generated is only sent on success")
	assert.Equal(t, []string{visual.MsgMissingVariables}, canvas.Notifications())
}

func TestPluginHandleErrors(t *testing.T) {
	ctx := context.Background()
	p := &Plugin{Store: store.NewMemory(fixture()), Channel: channel.NewMemory()}

	assert.ErrorIs(t, p.Handle(ctx, channel.Message{Type: "nope"}), channel.ErrUnknownMessage)
	assert.Error(t, p.Handle(ctx, channel.Message{Type: channel.TypeGenerateVisual}), "no canvas")

	assert.ErrorIs(t, (&Plugin{Channel: channel.NewMemory()}).Serve(ctx), ErrNoStore)
	assert.ErrorIs(t, (&Plugin{Store: store.NewMemory(nil)}).Serve(ctx), ErrNoChannel)
}

func TestPluginServeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := &Plugin{Store: store.NewMemory(fixture()), Channel: channel.NewMemory()}
	assert.ErrorIs(t, p.Serve(ctx), context.Canceled)
}
