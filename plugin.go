package figmatokens

import (
	"context"
	"errors"
	"fmt"

	"github.com/kataras/figma-tokens/pkg/channel"
	"github.com/kataras/figma-tokens/pkg/store"
	"github.com/kataras/figma-tokens/pkg/tokens"
	"github.com/kataras/figma-tokens/pkg/visual"
)

// Plugin answers UI messages the way the Figma plugin does: "run-plugin"
// posts the value-only JSON export back to the UI and "generate-visual"
// draws the token tree on the canvas.
type Plugin struct {
	Store   store.Store
	Channel channel.Channel
	Canvas  visual.Canvas // nil disables generate-visual
	Collate string
	Logger  Logger
}

func (p *Plugin) options() Options {
	return Options{
		Store:   p.Store,
		Form:    tokens.FormReduced,
		Format:  FormatJSON,
		Collate: p.Collate,
		Logger:  p.Logger,
	}
}

// Serve handles inbound messages one at a time until the channel closes or
// ctx is done. A failed message is logged and does not stop the loop.
func (p *Plugin) Serve(ctx context.Context) error {
	if p.Store == nil {
		return ErrNoStore
	}
	if p.Channel == nil {
		return ErrNoChannel
	}

	opts := p.options()
	for {
		msg, err := p.Channel.Receive(ctx)
		if err != nil {
			if errors.Is(err, channel.ErrClosed) {
				return nil
			}
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			opts.logWarn("Receive: %v", err)
			continue
		}

		if err := p.Handle(ctx, msg); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			opts.logError("%s: %v", msg.Type, err)
		}
	}
}

// Handle processes a single inbound message.
func (p *Plugin) Handle(ctx context.Context, msg channel.Message) error {
	switch msg.Type {
	case channel.TypeRunPlugin:
		return p.runPlugin(ctx)
	case channel.TypeGenerateVisual:
		return p.generateVisual(ctx)
	default:
		return fmt.Errorf("%w: %q", channel.ErrUnknownMessage, msg.Type)
	}
}

func (p *Plugin) runPlugin(ctx context.Context) error {
	opts := p.options()
	res, err := Run(ctx, opts)
	if err != nil {
		return err
	}

	if err := p.Channel.Send(ctx, channel.JSONOutput(string(res.Output))); err != nil {
		return fmt.Errorf("send json output: %w", err)
	}
	opts.logInfo("JSON sent to UI")
	return nil
}

func (p *Plugin) generateVisual(ctx context.Context) error {
	if p.Canvas == nil {
		return fmt.Errorf("%s: no canvas configured", channel.TypeGenerateVisual)
	}

	opts := p.options()
	tree, err := BuildTree(ctx, opts)
	if err != nil {
		return err
	}

	opts.logInfo("Creating visual representation...")
	if _, err := visual.Project(ctx, p.Canvas, tree); err != nil {
		return err
	}

	if err := p.Channel.Send(ctx, channel.VisualGenerated()); err != nil {
		return fmt.Errorf("send visual generated: %w", err)
	}
	return nil
}
