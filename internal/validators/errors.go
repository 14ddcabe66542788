package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptySyncpoint      = errors.New("new syncpoint is required")
	ErrInvalidFileID       = errors.New("invalid file ID")
	ErrEmptyTimestamp      = errors.New("change timestamp is required")
	ErrInvalidChangeKind   = errors.New("invalid change kind")
	ErrInvalidUpdateKind   = errors.New("invalid update kind")
	ErrUnexpectedUpdate    = errors.New("update payload is only allowed for update changes")
	ErrEmptyTag            = errors.New("tag is required")
	ErrEmptyDate           = errors.New("date is required")
	ErrInvalidChangeID     = errors.New("change id does not match its content")
	ErrInvalidExtension    = errors.New("invalid file extension")
	ErrEmptyFileContent    = errors.New("file content is required")
	ErrInvalidRemovedFiles = errors.New("invalid removed files list")
)
