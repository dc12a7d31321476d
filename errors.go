package enumjen

import "errors"

// Errors returned by conversions are always wrapped around one of these
// sentinels, so callers can match them with [errors.Is].
var (
	// ErrArgument indicates a required argument was missing or empty.
	ErrArgument = errors.New("missing required argument")

	// ErrTypeMismatch indicates an argument had the wrong type or shape.
	ErrTypeMismatch = errors.New("argument has wrong type")

	// ErrInvalidFileType indicates a file path did not name the file type
	// expected by the operation.
	ErrInvalidFileType = errors.New("invalid file type")

	// ErrParse indicates malformed JSON, YAML or CSV input.
	ErrParse = errors.New("parse error")

	// ErrTypeConversion indicates a value could not be rendered as an enum
	// member name or literal.
	ErrTypeConversion = errors.New("value cannot be converted")

	// ErrFileExists is returned by [FS.Create] when a target file is
	// already present on disk.
	ErrFileExists = errors.New("file already exists")
)
