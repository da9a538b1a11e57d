// Package media implements the filesystem-backed photo store. Uploaded
// images live under a single data repository root; every stored path the
// rest of the system sees is relative to that root, shaped like
// /{category}/{directory}/{name}.{ext}, and recorded in the database as a
// comma-joined PhotoSet.
package media

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/yosefin19/sinac-turismo-api/internal/application/ports"
	"github.com/yosefin19/sinac-turismo-api/internal/domain"
	domerrors "github.com/yosefin19/sinac-turismo-api/internal/domain/errors"
)

// Extensions allowed for uploads, probed in this order on retrieval.
var Extensions = []string{"png", "jpg", "jpeg"}

// Store implements ports.MediaStore on the local filesystem.
type Store struct {
	root    string
	quality int
	log     zerolog.Logger

	mu       sync.Mutex
	dirLocks map[string]*sync.Mutex
}

func NewStore(root string, quality int, log zerolog.Logger) *Store {
	return &Store{
		root:     root,
		quality:  quality,
		log:      log,
		dirLocks: make(map[string]*sync.Mutex),
	}
}

// lockDir serializes mutations per directory; concurrent reconciles on the
// same entity would otherwise race on orphan deletion.
func (s *Store) lockDir(directory string) func() {
	s.mu.Lock()
	l, ok := s.dirLocks[directory]
	if !ok {
		l = &sync.Mutex{}
		s.dirLocks[directory] = l
	}
	s.mu.Unlock()
	l.Lock()
	return l.Unlock
}

// abs maps a stored relative path (or directory) onto the filesystem.
func (s *Store) abs(rel string) string {
	return filepath.Join(s.root, filepath.FromSlash(strings.TrimPrefix(rel, "/")))
}

func allowedExtension(filename string) (string, bool) {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(filename), "."))
	for _, e := range Extensions {
		if ext == e {
			return ext, true
		}
	}
	return "", false
}

func randomStem() (string, error) {
	b := make([]byte, 10)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func (s *Store) AddImage(ctx context.Context, directory string, upload ports.Upload) (string, error) {
	unlock := s.lockDir(directory)
	defer unlock()
	return s.addImage(ctx, directory, upload)
}

// addImage is AddImage without the directory lock, for callers that
// already hold it.
func (s *Store) addImage(ctx context.Context, directory string, upload ports.Upload) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	ext, ok := allowedExtension(upload.Filename)
	if !ok {
		return "", domerrors.ErrUnsupportedMedia
	}
	stem, err := randomStem()
	if err != nil {
		return "", err
	}
	rel := "/" + directory + "/" + stem + "." + ext
	target := s.abs(rel)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("create media directory: %w", err)
	}
	if err := os.WriteFile(target, upload.Data, 0o644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}
	// Shrinking is a storage-cost optimization; the original bytes are
	// already persisted, so a failed re-encode is logged, not rolled back.
	if err := s.reencode(target, ext); err != nil {
		s.log.Warn().Err(err).Str("path", rel).Msg("image re-encode failed")
	}
	return rel, nil
}

// reencode rewrites the image at a lossy fixed quality to shrink it.
func (s *Store) reencode(target, ext string) error {
	data, err := os.ReadFile(target)
	if err != nil {
		return err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	switch ext {
	case "jpg", "jpeg":
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: s.quality})
	case "png":
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		err = enc.Encode(&buf, img)
	default:
		return nil
	}
	if err != nil {
		return err
	}
	return os.WriteFile(target, buf.Bytes(), 0o644)
}

func (s *Store) AddSet(ctx context.Context, directory string, uploads []ports.Upload) (domain.PhotoSet, error) {
	unlock := s.lockDir(directory)
	defer unlock()

	var set domain.PhotoSet
	for _, u := range uploads {
		p, err := s.addImage(ctx, directory, u)
		if err != nil {
			return nil, err
		}
		set = append(set, p)
	}
	return set, nil
}

// ReconcileSet diffs the submitted batch against the stored set. Uploads
// whose original filename matches a stored file keep the stored path
// (no re-upload); the rest are added; stored files not resubmitted are
// deleted. The returned set follows processing order. The caller commits
// the database row only after this returns nil error.
func (s *Store) ReconcileSet(ctx context.Context, directory string, existing domain.PhotoSet, uploads []ports.Upload) (domain.PhotoSet, error) {
	unlock := s.lockDir(directory)
	defer unlock()

	paths := append(domain.PhotoSet(nil), existing...)
	names := existing.Filenames()

	var result domain.PhotoSet
	for _, u := range uploads {
		idx := -1
		for i, n := range names {
			if n == u.Filename {
				idx = i
				break
			}
		}
		if idx < 0 {
			p, err := s.addImage(ctx, directory, u)
			if err != nil {
				return nil, err
			}
			result = append(result, p)
			continue
		}
		result = append(result, paths[idx])
		paths = append(paths[:idx], paths[idx+1:]...)
		names = append(names[:idx], names[idx+1:]...)
	}

	// Whatever was not resubmitted is an orphan now.
	for _, name := range names {
		if err := s.removeImage("/" + directory + "/" + name); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (s *Store) ReplaceSingle(ctx context.Context, directory, oldPath string, upload ports.Upload) (string, error) {
	unlock := s.lockDir(directory)
	defer unlock()

	if "/"+directory+"/"+upload.Filename == oldPath {
		// Same filename resubmitted: the stored file stands.
		return oldPath, nil
	}
	if oldPath != "" && oldPath != "/" {
		if err := s.removeImage(oldPath); err != nil {
			return "", err
		}
	}
	return s.addImage(ctx, directory, upload)
}

func (s *Store) AddNamed(ctx context.Context, directory, stem string, upload ports.Upload) (string, error) {
	unlock := s.lockDir(directory)
	defer unlock()

	ext, ok := allowedExtension(upload.Filename)
	if !ok {
		return "", domerrors.ErrUnsupportedMedia
	}
	// One photo per stem: drop any previous upload stored under another
	// allowed extension.
	for _, e := range Extensions {
		old := s.abs("/" + directory + "/" + stem + "." + e)
		if _, err := os.Stat(old); err == nil {
			if err := os.Remove(old); err != nil {
				return "", err
			}
		}
	}
	rel := "/" + directory + "/" + stem + "." + ext
	target := s.abs(rel)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("create media directory: %w", err)
	}
	if err := os.WriteFile(target, upload.Data, 0o644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}
	if err := s.reencode(target, ext); err != nil {
		s.log.Warn().Err(err).Str("path", rel).Msg("image re-encode failed")
	}
	return rel, nil
}

func (s *Store) GetNamed(ctx context.Context, directory, stem string) ([]byte, error) {
	for _, e := range Extensions {
		data, err := os.ReadFile(s.abs("/" + directory + "/" + stem + "." + e))
		if err == nil {
			return data, nil
		}
		if !os.IsNotExist(err) {
			return nil, err
		}
	}
	return nil, domerrors.ErrFileNotFound
}

func (s *Store) RemoveNamed(ctx context.Context, directory, stem string) error {
	unlock := s.lockDir(directory)
	defer unlock()

	for _, e := range Extensions {
		p := s.abs("/" + directory + "/" + stem + "." + e)
		if _, err := os.Stat(p); err == nil {
			return os.Remove(p)
		}
	}
	return domerrors.ErrFileNotFound
}

func (s *Store) RemoveImage(ctx context.Context, rel string) error {
	return s.removeImage(rel)
}

func (s *Store) removeImage(rel string) error {
	p := s.abs(rel)
	if _, err := os.Stat(p); err != nil {
		if os.IsNotExist(err) {
			return domerrors.ErrFileNotFound
		}
		return err
	}
	return os.Remove(p)
}

// removeDirectory deletes an empty directory. Non-recursive: a non-empty
// directory is an error, the caller must clear it first.
func (s *Store) removeDirectory(rel string) error {
	p := s.abs(rel)
	info, err := os.Stat(p)
	if err != nil {
		if os.IsNotExist(err) {
			return domerrors.ErrFileNotFound
		}
		return err
	}
	if !info.IsDir() {
		return domerrors.ErrNotDirectory
	}
	return os.Remove(p)
}

func (s *Store) DeleteDirectory(ctx context.Context, directory string) error {
	unlock := s.lockDir(directory)
	defer unlock()

	p := s.abs("/" + directory)
	if _, err := os.Stat(p); os.IsNotExist(err) {
		return nil
	}
	entries, err := os.ReadDir(p)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if err := s.removeImage("/" + directory + "/" + e.Name()); err != nil {
			return err
		}
	}
	return s.removeDirectory("/" + directory)
}

var _ ports.MediaStore = (*Store)(nil)
