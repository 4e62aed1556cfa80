package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	figmatokens "github.com/kataras/figma-tokens"
	"github.com/kataras/figma-tokens/pkg/channel"
	"github.com/kataras/figma-tokens/pkg/figma"
	"github.com/kataras/figma-tokens/pkg/tokens"
	"github.com/kataras/figma-tokens/pkg/visual"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const version = figma.Version

// settings holds the flag values after the config file has been merged in.
type settings struct {
	configFile string
	figmaURL   string
	token      string
	snapshot   string
	collate    string

	output string
	format string
	form   string
	title  string

	layout      string
	serveLayout string
	templates   string
	transport   string
	socketURL   string
	namespace   string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	s := new(settings)

	rootCmd := &cobra.Command{
		Use:           "figma-tokens",
		Short:         "Export Figma variables as design tokens",
		Long:          "A tool to export the local variables of a Figma file as a Collection → Mode → Group → Variable design-token tree",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.merge(cmd)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&s.configFile, "config", "c", figmatokens.DefaultConfigFile, "YAML config file")
	pf.StringVarP(&s.figmaURL, "url", "u", "", "Figma file URL")
	pf.StringVarP(&s.token, "token", "t", "", "Figma Personal Access Token (default $FIGMA_TOKEN)")
	pf.StringVarP(&s.snapshot, "snapshot", "s", "", "Read variables from a JSON or YAML snapshot file instead of the Figma API")
	pf.StringVar(&s.collate, "collate", "", "Order collections by the collation of a language (e.g. \"de\") instead of by code point")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export the token tree as json, yaml, msgpack or markdown",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.Context(), s, stdout)
		},
	}
	exportCmd.Flags().StringVarP(&s.output, "output", "o", "", "Output file, \"-\" for stdout (default design-tokens.<format>)")
	exportCmd.Flags().StringVarP(&s.format, "format", "f", "json", "Output format: json, yaml, msgpack, markdown")
	exportCmd.Flags().StringVar(&s.form, "form", "full", "Leaf form: full ({value, type}) or reduced (bare values)")
	exportCmd.Flags().StringVar(&s.title, "title", "Figma Variables", "Markdown document title")

	visualCmd := &cobra.Command{
		Use:   "visual",
		Short: "Project the token tree onto component templates and write the layout",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVisual(cmd.Context(), s, stdout)
		},
	}
	visualCmd.Flags().StringVarP(&s.layout, "output", "o", "visual-layout.json", "Output layout file, \"-\" for stdout")
	visualCmd.Flags().StringVar(&s.templates, "templates", "", "YAML file with the component templates (default built-in templates)")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Answer plugin UI messages over stdio or socket.io",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), s, cmd.InOrStdin(), stdout, stderr)
		},
	}
	serveCmd.Flags().StringVar(&s.transport, "transport", "stdio", "Message transport: stdio or socketio")
	serveCmd.Flags().StringVar(&s.socketURL, "socket-url", "", "socket.io server URL (socketio transport)")
	serveCmd.Flags().StringVar(&s.namespace, "namespace", "/", "socket.io namespace")
	serveCmd.Flags().StringVar(&s.templates, "templates", "", "YAML file with the component templates (default built-in templates)")
	serveCmd.Flags().StringVarP(&s.serveLayout, "output", "o", "visual-layout.json", "Layout file rewritten after each generate-visual, empty to keep layouts in memory only")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(stdout, "figma-tokens version %s\n", version)
		},
	}

	rootCmd.AddCommand(exportCmd, visualCmd, serveCmd, versionCmd)
	return rootCmd
}

// merge fills every flag the user did not set from the config file, then
// falls back to $FIGMA_TOKEN for the token.
func (s *settings) merge(cmd *cobra.Command) error {
	if cmd.Name() == "version" {
		return nil
	}

	path := s.configFile
	if !cmd.Flags().Changed("config") {
		path = ""
	}
	cfg, err := figmatokens.LoadConfig(path)
	if err != nil {
		return err
	}

	set := func(name string, dst *string, value string) {
		f := cmd.Flags().Lookup(name)
		if f == nil || f.Changed || value == "" {
			return
		}
		*dst = value
	}

	set("url", &s.figmaURL, cfg.URL)
	set("token", &s.token, cfg.Token)
	set("snapshot", &s.snapshot, cfg.Snapshot)
	set("collate", &s.collate, cfg.Collate)
	if cmd.Name() == "export" {
		set("output", &s.output, cfg.Output)
	}
	set("format", &s.format, cfg.Format)
	set("form", &s.form, cfg.Form)
	set("title", &s.title, cfg.Title)
	set("templates", &s.templates, cfg.Serve.Templates)
	set("transport", &s.transport, cfg.Serve.Transport)
	set("socket-url", &s.socketURL, cfg.Serve.URL)
	set("namespace", &s.namespace, cfg.Serve.Namespace)

	if s.token == "" {
		s.token = os.Getenv("FIGMA_TOKEN")
	}
	return nil
}

func runExport(ctx context.Context, s *settings, stdout io.Writer) error {
	green := color.New(color.FgGreen)
	cyan := color.New(color.FgCyan)

	format, err := figmatokens.ParseFormat(s.format)
	if err != nil {
		return err
	}
	form, err := tokens.ParseForm(s.form)
	if err != nil {
		return err
	}

	output := s.output
	if output == "" {
		output = "design-tokens" + format.Extension()
	}

	// Progress goes to stderr when the export itself is written to stdout.
	logOut := stdout
	if output == "-" {
		logOut = os.Stderr
	}

	cyan.Fprintln(logOut, "\n🎨 Figma Design Tokens")
	cyan.Fprintln(logOut, "======================")
	cyan.Fprintln(logOut)

	st, err := figmatokens.OpenStore(s.token, s.figmaURL, s.snapshot)
	if err != nil {
		return err
	}

	result, err := figmatokens.Run(ctx, figmatokens.Options{
		Store:   st,
		Form:    form,
		Format:  format,
		Collate: s.collate,
		Title:   s.title,
		Logger:  &cliLogger{w: logOut},
	})
	if err != nil {
		return err
	}

	cyan.Fprintln(logOut, "\n📊 Export Summary:")
	fmt.Fprintf(logOut, "  • Variables: %d\n", result.Variables)
	fmt.Fprintf(logOut, "  • Collections: %d\n", result.Collections)
	fmt.Fprintf(logOut, "  • Top-level keys: %d\n", result.Tree.Len())
	if result.Fallbacks > 0 {
		fmt.Fprintf(logOut, "  • Ungrouped tokens: %d\n", result.Fallbacks)
	}

	if output == "-" {
		_, err := stdout.Write(result.Output)
		return err
	}

	green.Fprintf(logOut, "\n💾 Writing to %s... ", output)
	if err := writeFile(output, result.Output); err != nil {
		color.New(color.FgRed).Fprintln(logOut, "✗")
		return err
	}
	green.Fprintln(logOut, "✓")

	green.Fprintf(logOut, "\n✨ Successfully exported design tokens to %s\n\n", output)
	return nil
}

func runVisual(ctx context.Context, s *settings, stdout io.Writer) error {
	logOut := stdout
	if s.layout == "-" {
		logOut = os.Stderr
	}
	log := &cliLogger{w: logOut}

	canvas, err := newCanvas(s.templates)
	if err != nil {
		return err
	}

	st, err := figmatokens.OpenStore(s.token, s.figmaURL, s.snapshot)
	if err != nil {
		return err
	}

	tree, err := figmatokens.BuildTree(ctx, figmatokens.Options{Store: st, Collate: s.collate, Logger: log})
	if err != nil {
		return err
	}

	root, err := visual.Project(ctx, canvas, tree)
	for _, note := range canvas.Notifications() {
		log.Infof("%s", note)
	}
	if err != nil {
		return err
	}

	data, err := encodeLayout(root)
	if err != nil {
		return err
	}

	if s.layout == "-" {
		_, err := stdout.Write(data)
		return err
	}
	if err := writeFile(s.layout, data); err != nil {
		return err
	}
	color.New(color.FgGreen).Fprintf(logOut, "✨ Layout written to %s (%.0fx%.0f)\n", s.layout, root.Width, root.Height)
	return nil
}

func runServe(ctx context.Context, s *settings, stdin io.Reader, stdout, stderr io.Writer) error {
	logger := figmatokens.NewSlogLogger(slog.New(slog.NewTextHandler(stderr, nil)))

	if s.serveLayout == "-" {
		return errors.New("serve cannot write the layout to stdout")
	}

	mem, err := newCanvas(s.templates)
	if err != nil {
		return err
	}
	var canvas visual.Canvas = mem
	if s.serveLayout != "" {
		canvas = &layoutCanvas{MemoryCanvas: mem, path: s.serveLayout, log: logger}
	}

	st, err := figmatokens.OpenStore(s.token, s.figmaURL, s.snapshot)
	if err != nil {
		return err
	}

	var ch channel.Channel
	switch s.transport {
	case "", "stdio":
		stream := channel.NewStream(stdin, stdout)
		defer stream.Close()
		ch = stream
	case "socketio":
		if s.socketURL == "" {
			return errors.New("--socket-url is required for the socketio transport")
		}
		sio, err := channel.DialSocketIO(ctx, s.socketURL, s.namespace)
		if err != nil {
			return err
		}
		defer sio.Close()
		logger.Infof("Connected to %s (namespace %s, sid %s)", s.socketURL, s.namespace, sio.ID())
		ch = sio
	default:
		return fmt.Errorf("unknown transport %q (must be stdio or socketio)", s.transport)
	}

	plugin := &figmatokens.Plugin{
		Store:   st,
		Channel: ch,
		Canvas:  canvas,
		Collate: s.collate,
		Logger:  logger,
	}

	err = plugin.Serve(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// layoutCanvas writes every committed layout to path.
type layoutCanvas struct {
	*visual.MemoryCanvas
	path string
	log  figmatokens.Logger
}

func (c *layoutCanvas) Commit(ctx context.Context, root *visual.Node) error {
	if err := c.MemoryCanvas.Commit(ctx, root); err != nil {
		return err
	}

	data, err := encodeLayout(root)
	if err != nil {
		return err
	}
	if err := writeFile(c.path, data); err != nil {
		return err
	}
	c.log.Infof("Layout written to %s (%.0fx%.0f)", c.path, root.Width, root.Height)
	return nil
}

func encodeLayout(root *visual.Node) ([]byte, error) {
	data, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode layout: %w", err)
	}
	return append(data, '\n'), nil
}

func newCanvas(templatesFile string) (*visual.MemoryCanvas, error) {
	templates := visual.DefaultTemplates()
	if templatesFile != "" {
		var err error
		if templates, err = visual.LoadTemplates(templatesFile); err != nil {
			return nil, err
		}
	}
	return visual.NewMemoryCanvas(templates...), nil
}

func writeFile(name string, data []byte) error {
	if dir := filepath.Dir(name); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(name, data, 0644)
}

// cliLogger implements figmatokens.Logger with colored terminal output.
type cliLogger struct {
	w io.Writer
}

func (l *cliLogger) Infof(format string, args ...any) {
	color.New(color.FgYellow).Fprintf(l.w, format+"\n", args...)
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Fprintf(l.w, "⚠ "+format+"\n", args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Fprintf(l.w, "✗ "+format+"\n", args...)
}
