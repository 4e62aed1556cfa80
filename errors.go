package figmatokens

import "errors"

var (
	// ErrNoStore is returned when Run or the Plugin is given no variable store.
	ErrNoStore = errors.New("no variable store")
	// ErrNoChannel is returned when the Plugin is served without a UI channel.
	ErrNoChannel = errors.New("no ui channel")
	// ErrUnknownFormat is returned when an export format name is not supported.
	ErrUnknownFormat = errors.New("unknown export format")
	// ErrReadConfig is returned when the config file cannot be read or decoded.
	ErrReadConfig = errors.New("read config file")
	// ErrNoSource is returned when neither a snapshot file nor a Figma file URL is given.
	ErrNoSource = errors.New("no variables source: set a snapshot file or a Figma file URL")
	// ErrNoToken is returned when a Figma file URL is given without an access token.
	ErrNoToken = errors.New("figma access token is required")
)
