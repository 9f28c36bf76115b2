package domain

import "errors"

var (
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput     = errors.New("Given Param is not valid")
	ErrUnsupportedSchema = errors.New("Unsupported schema")
	ErrInvalidJsonFormat = errors.New("invalid JSON format")

	// precondition failures, reported through the session status
	ErrNotInstalled = errors.New(string(WalletStatusNotInstalled))
	ErrNotConnected = errors.New(string(WalletStatusNotConnected))

	ErrUnsupportedChain = errors.New("unsupported chain")
	ErrNoMetadataURI    = errors.New("no metadata uri")
	ErrEmptyQuery       = errors.New("contract address and token id are required")
)
