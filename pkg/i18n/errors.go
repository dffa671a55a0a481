package i18n

import "errors"

var (
	ErrNilAdapter           = errors.New("translation adapter is nil")
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")
	ErrInvalidCatalogue     = errors.New("invalid translation catalogue")
	ErrLoadingCancelled     = errors.New("loading translations cancelled")
	ErrFailedToReadFile     = errors.New("failed to read translation file")
	ErrFailedToParseFile    = errors.New("failed to parse translation file")
)
