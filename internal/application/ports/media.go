package ports

import (
	"context"

	"github.com/yosefin19/sinac-turismo-api/internal/domain"
)

// Upload is one incoming image: the client-supplied filename (used only
// for extension checks and reconcile matching, never for storage identity)
// and the raw bytes.
type Upload struct {
	Filename string
	Data     []byte
}

// MediaStore persists uploaded images under per-entity directories and
// keeps an entity's PhotoSet synchronized with the files on disk.
// Stored paths are relative to the data repository root, in the form
// /{category}/{directory}/{name}.{ext}.
type MediaStore interface {
	// AddImage validates the extension, stores the bytes under a random
	// hex name inside directory, and returns the stored path.
	AddImage(ctx context.Context, directory string, upload Upload) (string, error)
	// AddSet stores every upload in input order and returns the resulting set.
	AddSet(ctx context.Context, directory string, uploads []Upload) (domain.PhotoSet, error)
	// ReconcileSet diffs uploads against existing by original filename:
	// matched stored paths are kept, unmatched uploads are added, and
	// stored files no longer submitted are deleted.
	ReconcileSet(ctx context.Context, directory string, existing domain.PhotoSet, uploads []Upload) (domain.PhotoSet, error)
	// ReplaceSingle keeps path when the upload's filename already names it,
	// otherwise deletes the old file (if any) and stores the upload.
	ReplaceSingle(ctx context.Context, directory, path string, upload Upload) (string, error)
	// AddNamed stores the upload under a fixed name stem (profile/cover
	// photos), replacing any file with the same stem and another allowed
	// extension.
	AddNamed(ctx context.Context, directory, stem string, upload Upload) (string, error)
	// GetNamed probes the allowed extensions for directory/stem and returns
	// the first match.
	GetNamed(ctx context.Context, directory, stem string) ([]byte, error)
	// RemoveNamed deletes directory/stem.{ext} for whichever allowed
	// extension exists. ErrFileNotFound when none do.
	RemoveNamed(ctx context.Context, directory, stem string) error
	// RemoveImage deletes a single stored path. ErrFileNotFound if absent.
	RemoveImage(ctx context.Context, path string) error
	// DeleteDirectory removes every file in directory and then the
	// directory itself. A missing directory is a no-op.
	DeleteDirectory(ctx context.Context, directory string) error
}
