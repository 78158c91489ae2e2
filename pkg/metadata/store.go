package metadata

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/jpfielding/overlay.go/pkg/dicom"
	"github.com/jpfielding/overlay.go/pkg/dicom/tag"
	"github.com/jpfielding/overlay.go/pkg/util"
)

var ErrDuplicateImage = errors.New("metadata: duplicate image id")

// Store is an in-memory Provider over DICOM datasets keyed by image id
type Store struct {
	mu     sync.RWMutex
	images map[string]*dicom.Dataset
	order  []string
}

func NewStore() *Store {
	return &Store{images: make(map[string]*dicom.Dataset)}
}

// Add indexes ds and returns its image id: the SOP Instance UID, or a UUID
// hashed from the dataset when the UID is missing.
func (s *Store) Add(ctx context.Context, ds *dicom.Dataset) (string, error) {
	if ds == nil {
		return "", fmt.Errorf("cannot add nil dataset")
	}
	id := dicom.GetSOPInstanceUID(ds)
	if id == "" {
		id = util.HashUUID(ds)
		if id == "" {
			return "", fmt.Errorf("dataset has no SOP Instance UID and cannot be hashed")
		}
		slog.WarnContext(ctx, "dataset without SOP Instance UID, using hashed image id", "image_id", id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.images[id]; ok {
		return "", fmt.Errorf("%w: %s", ErrDuplicateImage, id)
	}
	s.images[id] = ds
	s.order = append(s.order, id)
	slog.DebugContext(ctx, "indexed image", "image_id", id, "elements", len(ds.Elements))
	return id, nil
}

// AddAll adds every dataset, stopping at the first failure
func (s *Store) AddAll(ctx context.Context, datasets []*dicom.Dataset) ([]string, error) {
	ids := make([]string, 0, len(datasets))
	for i, ds := range datasets {
		id, err := s.Add(ctx, ds)
		if err != nil {
			return ids, fmt.Errorf("dataset %d: %w", i, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Dataset returns the dataset behind an image id
func (s *Store) Dataset(imageID string) (*dicom.Dataset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ds, ok := s.images[imageID]
	return ds, ok
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Stack returns the image ids ordered by instance number; images without one
// keep their insertion order after the numbered ones.
func (s *Store) Stack() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := append([]string(nil), s.order...)
	sort.SliceStable(ids, func(i, j int) bool {
		a := dicom.GetIntPtr(s.images[ids[i]], tag.InstanceNumber)
		b := dicom.GetIntPtr(s.images[ids[j]], tag.InstanceNumber)
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		}
		return *a < *b
	})
	return ids
}

func (s *Store) Metadata(category Category, imageID string) any {
	ds, ok := s.Dataset(imageID)
	if !ok {
		return nil
	}
	switch category {
	case Patient:
		return PatientModuleOf(ds)
	case GeneralStudy:
		return GeneralStudyModuleOf(ds)
	case GeneralSeries:
		return GeneralSeriesModuleOf(ds)
	case ImagePlane:
		return ImagePlaneModuleOf(ds)
	case GeneralImage:
		return GeneralImageModuleOf(ds)
	case Cine:
		return CineModuleOf(ds)
	case VOILUT:
		return VOILUTModuleOf(ds)
	}
	return nil
}
