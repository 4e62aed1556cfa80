// Package figmatokens exports the local variables of a Figma file as a
// design-token tree (Collection → Mode → Group → Variable) and renders it
// as JSON, YAML, msgpack or a markdown report.
//
// The CLI lives in cmd/figma-tokens; this root package exposes the same
// pipeline as a Go API so that callers can embed the export in their own
// tools without shelling out.
//
// # Import
//
// The module path contains a hyphen but Go package names cannot, so the
// package is named figmatokens:
//
//	import "github.com/kataras/figma-tokens" // package figmatokens
//
// # Quick start
//
//	s, err := figmatokens.OpenStore(os.Getenv("FIGMA_TOKEN"), "https://www.figma.com/design/ABC123/Tokens", "")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := figmatokens.Run(ctx, figmatokens.Options{
//	    Store:  s,
//	    Format: figmatokens.FormatJSON,
//	    Form:   tokens.FormReduced,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("tokens.json", result.Output, 0644)
//
// # Logging
//
// Pass a [Logger] implementation in [Options.Logger] to receive progress
// messages. A nil Logger silences all output. [NewSlogLogger] adapts a
// *slog.Logger.
//
// # Plugin mode
//
// [Plugin] answers the UI messages of the Figma plugin ("run-plugin",
// "generate-visual") over any [channel.Channel], drawing the visual layout
// on a [visual.Canvas].
package figmatokens
