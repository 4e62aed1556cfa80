package figmatokens

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/kataras/figma-tokens/pkg/figma"
	"github.com/kataras/figma-tokens/pkg/formatter"
	"github.com/kataras/figma-tokens/pkg/store"
	"github.com/kataras/figma-tokens/pkg/tokens"
)

// Format is an export format.
type Format string

const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMsgpack  Format = "msgpack"
	FormatMarkdown Format = "markdown"
)

// ParseFormat parses a format name; the empty string means JSON.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatJSON, nil
	case FormatJSON, FormatYAML, FormatMsgpack, FormatMarkdown:
		return f, nil
	case "yml":
		return FormatYAML, nil
	case "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("%w: %q (must be json, yaml, msgpack or markdown)", ErrUnknownFormat, s)
	}
}

// Extension returns the usual file extension of the format.
func (f Format) Extension() string {
	switch f {
	case FormatYAML:
		return ".yaml"
	case FormatMsgpack:
		return ".msgpack"
	case FormatMarkdown:
		return ".md"
	default:
		return ".json"
	}
}

// Options configures the export.
type Options struct {
	Store  store.Store
	Form   tokens.Form // leaf shape of json, yaml and msgpack output
	Format Format      // empty = json
	// Collate is a BCP 47 language tag; when set, collections are ordered by
	// that locale's collation instead of by code point.
	Collate string
	Title   string // markdown document title
	Logger  Logger // nil = no logging
}

// Result contains the export output.
type Result struct {
	Tree        *tokens.Tree
	Output      []byte
	Variables   int
	Collections int
	Fallbacks   int
}

func (o *Options) logInfo(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Infof(f, a...)
	}
}

func (o *Options) logWarn(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Warnf(f, a...)
	}
}

func (o *Options) logError(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Errorf(f, a...)
	}
}

// Run reads the variables from the store, builds the sorted token tree and
// encodes it in the requested format.
func Run(ctx context.Context, opts Options) (*Result, error) {
	format, err := ParseFormat(string(opts.Format))
	if err != nil {
		return nil, err
	}

	tree, stats, err := buildTree(ctx, &opts)
	if err != nil {
		return nil, err
	}

	opts.logInfo("Encoding %s (%s form)...", format, opts.Form)
	var out []byte
	switch format {
	case FormatYAML:
		out, err = tree.YAML(opts.Form)
	case FormatMsgpack:
		out, err = tree.Msgpack(opts.Form)
	case FormatMarkdown:
		out = []byte(formatter.ToMarkdown(tree, opts.Title))
	default:
		out, err = tree.JSON(opts.Form)
	}
	if err != nil {
		opts.logError("Encoding failed: %v", err)
		return nil, fmt.Errorf("encode %s: %w", format, err)
	}

	stats.Tree = tree
	stats.Output = out
	return stats, nil
}

// BuildTree reads the variables from the store and returns the sorted token tree.
func BuildTree(ctx context.Context, opts Options) (*tokens.Tree, error) {
	tree, _, err := buildTree(ctx, &opts)
	return tree, err
}

func buildTree(ctx context.Context, opts *Options) (*tokens.Tree, *Result, error) {
	if opts.Store == nil {
		return nil, nil, ErrNoStore
	}

	compare := strings.Compare
	if opts.Collate != "" {
		tag, err := language.Parse(opts.Collate)
		if err != nil {
			return nil, nil, fmt.Errorf("parse collation language %q: %w", opts.Collate, err)
		}
		compare = tokens.Collation(tag)
	}

	opts.logInfo("Fetching local variables...")
	variables, err := opts.Store.ListVariables(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list variables: %w", err)
	}
	opts.logInfo("Found %d variables", len(variables))

	collections, err := fetchCollections(ctx, opts, variables)
	if err != nil {
		return nil, nil, err
	}

	opts.logInfo("Building token tree...")
	tree := tokens.Build(variables, func(id string) *figma.VariableCollection {
		return collections[id]
	})
	tree = tokens.SortCollectionsFunc(tree, compare)

	res := &Result{Variables: len(variables), Collections: len(collections)}
	for _, key := range tree.Keys() {
		if tree.Get(key).IsLeaf() {
			res.Fallbacks++
		}
	}
	if res.Fallbacks > 0 {
		opts.logWarn("%d variable(s) could not be placed in a collection and were exported as top-level tokens", res.Fallbacks)
	}
	return tree, res, nil
}

// fetchCollections resolves every referenced collection once. A failed
// lookup is logged and leaves the collection absent so its variables fall
// back to flat entries; only context cancellation aborts.
func fetchCollections(ctx context.Context, opts *Options, variables []figma.Variable) (map[string]*figma.VariableCollection, error) {
	collections := make(map[string]*figma.VariableCollection)
	seen := make(map[string]struct{})

	for _, v := range variables {
		id := v.VariableCollectionID
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		c, err := opts.Store.GetCollection(ctx, id)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			if errors.Is(err, store.ErrCollectionNotFound) {
				opts.logWarn("Collection %q not found", id)
			} else {
				opts.logWarn("Collection %q could not be read: %v", id, err)
			}
			continue
		}
		if c != nil {
			collections[id] = c
		}
	}

	return collections, nil
}

// OpenStore returns the store for a snapshot file when snapshotPath is set,
// otherwise a Figma REST store for fileURL authenticated with token.
func OpenStore(token, fileURL, snapshotPath string) (store.Store, error) {
	if snapshotPath != "" {
		return store.LoadFile(snapshotPath)
	}
	if fileURL == "" {
		return nil, ErrNoSource
	}
	if token == "" {
		return nil, ErrNoToken
	}

	fileKey, err := figma.ExtractFileKey(fileURL)
	if err != nil {
		return nil, fmt.Errorf("extract file key: %w", err)
	}
	return store.NewFigma(figma.NewClient(token), fileKey), nil
}
