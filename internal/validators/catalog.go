package validators

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-photo-catalog/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldChanges targets the list of changes pushed by a peer.
	FieldChanges = "changes"

	// FieldRemovedFiles targets the receiver's own removed file ids.
	FieldRemovedFiles = "removed_files"

	// FieldNewSyncpoint targets the sync point recorded once a push is applied.
	FieldNewSyncpoint = "new_syncpoint"

	// FieldChangeID targets the content-addressed id of a change.
	FieldChangeID = "id"

	FieldAffectedFile = "affected_file"
	FieldTimestamp    = "timestamp"
	FieldChangeType   = "change_type"

	FieldTag       = "tag"
	FieldDate      = "date"
	FieldExtension = "extension"
	FieldContent   = "content"
)

const maxExtensionLength = 16

var allowedUpdateKinds = []models.UpdateKind{
	models.UpdateKindTagAdded,
	models.UpdateKindTagRemoved,
	models.UpdateKindCreationDateChanged,
}

// CatalogValidator implements the Validator interface for the catalog and
// peer protocol models: ChangesRequest, Change, TagRequest,
// CreationDateRequest and UploadRequest.
type CatalogValidator struct {
}

// NewCatalogValidator constructs a new CatalogValidator
// and returns it as the Validator interface.
func NewCatalogValidator() Validator {
	return &CatalogValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Returns ErrUnsupportedType if obj does not match any known model.
func (v *CatalogValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ChangesRequest:
		return v.validateChangesRequest(ctx, value, fields...)
	case *models.ChangesRequest:
		return v.validateChangesRequest(ctx, *value, fields...)

	case models.Change:
		return v.validateChange(ctx, value, fields...)
	case *models.Change:
		return v.validateChange(ctx, *value, fields...)

	case models.TagRequest:
		return v.validateTagRequest(ctx, value, fields...)
	case *models.TagRequest:
		return v.validateTagRequest(ctx, *value, fields...)

	case models.CreationDateRequest:
		return v.validateCreationDateRequest(ctx, value, fields...)
	case *models.CreationDateRequest:
		return v.validateCreationDateRequest(ctx, *value, fields...)

	case models.UploadRequest:
		return v.validateUploadRequest(ctx, value, fields...)
	case *models.UploadRequest:
		return v.validateUploadRequest(ctx, *value, fields...)

	case models.FileDetails:
		return v.validateFileDetails(ctx, value, fields...)
	case *models.FileDetails:
		return v.validateFileDetails(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateChangesRequest validates a change push.
//
// Default validated fields: Changes, RemovedFiles, NewSyncpoint.
// An empty change list is valid: a peer with nothing new still pushes to
// record the sync point.
func (v *CatalogValidator) validateChangesRequest(ctx context.Context, request models.ChangesRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldChanges, FieldRemovedFiles, FieldNewSyncpoint}
	}

	for _, f := range fields {
		switch f {
		case FieldChanges:
			for i, change := range request.Changes {
				if err := v.validateChange(ctx, change); err != nil {
					return fmt.Errorf("validation error at index %d: %w", i, err)
				}
			}
		case FieldRemovedFiles:
			for i, id := range request.RemovedFiles {
				if id <= 0 {
					return fmt.Errorf("validation error at index %d: %w", i, ErrInvalidRemovedFiles)
				}
			}
		case FieldNewSyncpoint:
			if request.NewSyncpoint.IsZero() {
				return ErrEmptySyncpoint
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateChange validates a single change record.
//
// Default validated fields: AffectedFile, Timestamp, ChangeType, ID.
// The id is checked last so a malformed change type is reported as such
// rather than as an id mismatch.
func (v *CatalogValidator) validateChange(ctx context.Context, change models.Change, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAffectedFile, FieldTimestamp, FieldChangeType, FieldChangeID}
	}

	for _, f := range fields {
		switch f {
		case FieldAffectedFile:
			if change.AffectedFile <= 0 {
				return ErrInvalidFileID
			}
		case FieldTimestamp:
			if change.Timestamp.IsZero() {
				return ErrEmptyTimestamp
			}
		case FieldChangeType:
			if err := validateChangeType(change.ChangeType); err != nil {
				return err
			}
		case FieldChangeID:
			if err := change.Verify(); err != nil {
				if errors.Is(err, models.ErrChangeIDMismatch) {
					return fmt.Errorf("%w: %w", ErrInvalidChangeID, err)
				}
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateChangeType(ct models.ChangeType) error {
	switch ct.Kind {
	case models.ChangeKindFileAdded, models.ChangeKindFileRemoved:
		if ct.Update != nil {
			return ErrUnexpectedUpdate
		}
		return nil
	case models.ChangeKindUpdate:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidChangeKind, ct.Kind)
	}

	if ct.Update == nil || !isValidUpdateKind(ct.Update.Kind) {
		return ErrInvalidUpdateKind
	}

	switch ct.Update.Kind {
	case models.UpdateKindCreationDateChanged:
		if ct.Update.Date == nil || ct.Update.Date.IsZero() {
			return ErrEmptyDate
		}
	default:
		if strings.TrimSpace(ct.Update.Tag) == "" {
			return ErrEmptyTag
		}
	}

	return nil
}

func isValidUpdateKind(kind models.UpdateKind) bool {
	for _, k := range allowedUpdateKinds {
		if kind == k {
			return true
		}
	}
	return false
}

func (v *CatalogValidator) validateTagRequest(ctx context.Context, request models.TagRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTag}
	}

	for _, f := range fields {
		switch f {
		case FieldTag:
			if strings.TrimSpace(request.Tag) == "" {
				return ErrEmptyTag
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CatalogValidator) validateCreationDateRequest(ctx context.Context, request models.CreationDateRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDate}
	}

	for _, f := range fields {
		switch f {
		case FieldDate:
			if request.Date.IsZero() {
				return ErrEmptyDate
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateUploadRequest checks the extension is a short alphanumeric token,
// since it becomes part of the stored file name, and that bytes are present.
func (v *CatalogValidator) validateUploadRequest(ctx context.Context, request models.UploadRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldExtension, FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldExtension:
			if !isValidExtension(request.Extension) {
				return ErrInvalidExtension
			}
		case FieldContent:
			if len(request.Data) == 0 {
				return ErrEmptyFileContent
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateFileDetails checks metadata a peer reports for a file it pushed.
// The extension is held to the upload rule before it reaches the disk.
func (v *CatalogValidator) validateFileDetails(ctx context.Context, details models.FileDetails, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldExtension}
	}

	for _, f := range fields {
		switch f {
		case FieldExtension:
			if !isValidExtension(details.Extension) {
				return ErrInvalidExtension
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isValidExtension(ext string) bool {
	if ext == "" || len(ext) > maxExtensionLength {
		return false
	}
	for _, r := range ext {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return false
		}
	}
	return true
}
