// internal/services/draft_service.go
package services

import (
	"context"
	"io"
	"mime/multipart"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"

	"github.com/webmart/admin-dashboard/internal/commerce"
	"github.com/webmart/admin-dashboard/internal/models"
)

// maxDraftImages is the platform's cap on images per product.
const maxDraftImages = 3

type DraftMode string

const (
	DraftModeCreating DraftMode = "creating"
	DraftModeEditing  DraftMode = "editing"
)

// DraftFields carries the form values as the raw strings the operator typed.
// Parsing happens at submit, leniently.
type DraftFields struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Price       string `json:"price"`
	Stock       string `json:"stock"`
	Description string `json:"description"`
}

// Draft is one open create-or-edit form. Images holds the staged uploads;
// Previews holds what the form shows, which after OpenEdit starts as the
// product's existing remote image URLs and after a new selection is the
// staged previews, kept aligned with Images.
type Draft struct {
	ID        string         `json:"id"`
	Mode      DraftMode      `json:"mode"`
	ProductID string         `json:"product_id,omitempty"`
	Fields    DraftFields    `json:"fields"`
	Images    []*StagedImage `json:"images"`
	Previews  []string       `json:"previews"`
	Pending   bool           `json:"pending"`
}

type draftEntry struct {
	draft     *Draft
	updatedAt time.Time
}

// DraftService is the create/edit form state machine: open, edit, stage
// images, submit or discard. Drafts are transient and expire if abandoned.
type DraftService struct {
	client   *commerce.Client
	catalog  *CatalogService
	previews *PreviewStore
	ttl      time.Duration

	mu     sync.Mutex
	drafts map[string]*draftEntry
}

func NewDraftService(client *commerce.Client, catalog *CatalogService, previews *PreviewStore, ttl time.Duration) *DraftService {
	s := &DraftService{
		client:   client,
		catalog:  catalog,
		previews: previews,
		ttl:      ttl,
		drafts:   make(map[string]*draftEntry),
	}

	// Expire abandoned drafts so their staged files do not pile up
	go s.cleanupExpired()

	return s
}

// OpenCreate starts an empty draft.
func (s *DraftService) OpenCreate() Draft {
	draft := &Draft{
		ID:       uuid.New().String(),
		Mode:     DraftModeCreating,
		Images:   []*StagedImage{},
		Previews: []string{},
	}

	s.mu.Lock()
	s.drafts[draft.ID] = &draftEntry{draft: draft, updatedAt: time.Now()}
	s.mu.Unlock()

	return *draft
}

// OpenEdit starts a draft seeded from an existing product. Numeric fields are
// rendered back as input strings; the current images appear as previews but
// are not resubmitted unless the operator selects new files.
func (s *DraftService) OpenEdit(product models.Product) Draft {
	draft := &Draft{
		ID:        uuid.New().String(),
		Mode:      DraftModeEditing,
		ProductID: product.ID,
		Fields: DraftFields{
			Name:        product.Name,
			Category:    product.Category,
			Price:       strconv.FormatFloat(product.Price, 'f', -1, 64),
			Stock:       strconv.Itoa(product.Stock),
			Description: product.Description,
		},
		Images:   []*StagedImage{},
		Previews: append([]string{}, product.Images...),
	}

	s.mu.Lock()
	s.drafts[draft.ID] = &draftEntry{draft: draft, updatedAt: time.Now()}
	s.mu.Unlock()

	return *draft
}

// Get returns a snapshot of the draft.
func (s *DraftService) Get(id string) (Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, exists := s.drafts[id]
	if !exists {
		return Draft{}, ErrDraftNotFound
	}
	return *entry.draft, nil
}

// UpdateFields replaces the draft's form values.
func (s *DraftService) UpdateFields(id string, fields DraftFields) (Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, exists := s.drafts[id]
	if !exists {
		return Draft{}, ErrDraftNotFound
	}
	if entry.draft.Pending {
		return Draft{}, ErrMutationPending
	}

	entry.draft.Fields = fields
	entry.updatedAt = time.Now()
	return *entry.draft, nil
}

// AttachImages replaces the draft's image selection with the uploaded files.
// More than three files is rejected outright and the previous selection stays
// untouched. On success the superseded staged previews are released before
// the new ones take their place.
func (s *DraftService) AttachImages(id string, files []*multipart.FileHeader) (Draft, error) {
	if len(files) > maxDraftImages {
		return Draft{}, ErrTooManyImages
	}

	s.mu.Lock()
	entry, exists := s.drafts[id]
	if !exists {
		s.mu.Unlock()
		return Draft{}, ErrDraftNotFound
	}
	if entry.draft.Pending {
		s.mu.Unlock()
		return Draft{}, ErrMutationPending
	}
	s.mu.Unlock()

	// Stage the new selection first so a failure leaves the old one intact
	staged := make([]*StagedImage, 0, len(files))
	for _, header := range files {
		file, err := header.Open()
		if err != nil {
			s.releaseStaged(staged)
			return Draft{}, err
		}
		image, err := s.previews.Stage(file, header)
		file.Close()
		if err != nil {
			s.releaseStaged(staged)
			return Draft{}, err
		}
		staged = append(staged, image)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, exists = s.drafts[id]
	if !exists {
		s.releaseStaged(staged)
		return Draft{}, ErrDraftNotFound
	}

	s.releasePreviews(entry.draft.Previews)

	previews := make([]string, 0, len(staged))
	for _, image := range staged {
		previews = append(previews, image.URL())
	}
	entry.draft.Images = staged
	entry.draft.Previews = previews
	entry.updatedAt = time.Now()

	return *entry.draft, nil
}

// RemoveImage drops one entry from both the file list and the preview list,
// preserving the order of the remainder, and releases its staged file.
func (s *DraftService) RemoveImage(id string, index int) (Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, exists := s.drafts[id]
	if !exists {
		return Draft{}, ErrDraftNotFound
	}
	if entry.draft.Pending {
		return Draft{}, ErrMutationPending
	}
	if index < 0 || index >= len(entry.draft.Previews) {
		return Draft{}, ErrPreviewNotFound
	}

	url := entry.draft.Previews[index]
	entry.draft.Previews = append(entry.draft.Previews[:index], entry.draft.Previews[index+1:]...)

	if stagedID, ok := StagedIDFromURL(url); ok {
		for i, image := range entry.draft.Images {
			if image.ID == stagedID {
				entry.draft.Images = append(entry.draft.Images[:i], entry.draft.Images[i+1:]...)
				break
			}
		}
		s.previews.Release(stagedID)
	}

	entry.updatedAt = time.Now()
	return *entry.draft, nil
}

// Close discards the draft and releases every staged preview. Closing is
// refused while a submission is in flight, matching the disabled cancel
// button.
func (s *DraftService) Close(id string) error {
	s.mu.Lock()
	entry, exists := s.drafts[id]
	if !exists {
		s.mu.Unlock()
		return ErrDraftNotFound
	}
	if entry.draft.Pending {
		s.mu.Unlock()
		return ErrMutationPending
	}
	delete(s.drafts, id)
	previews := entry.draft.Previews
	s.mu.Unlock()

	s.releasePreviews(previews)
	return nil
}

// Submit validates the draft and hands it to the platform as a create or an
// update. Validation fails closed: nothing leaves the service on a bad draft.
// Success discards the draft, releases its previews and invalidates the
// product collection; failure clears the pending flag and keeps the draft so
// the operator can retry.
func (s *DraftService) Submit(ctx context.Context, id string) (any, error) {
	s.mu.Lock()
	entry, exists := s.drafts[id]
	if !exists {
		s.mu.Unlock()
		return nil, ErrDraftNotFound
	}
	if entry.draft.Pending {
		s.mu.Unlock()
		return nil, ErrMutationPending
	}

	fields := entry.draft.Fields
	if strings.TrimSpace(fields.Name) == "" {
		s.mu.Unlock()
		return nil, ErrNameRequired
	}
	if entry.draft.Mode == DraftModeCreating && len(entry.draft.Images) == 0 {
		s.mu.Unlock()
		return nil, ErrImageRequired
	}

	entry.draft.Pending = true
	mode := entry.draft.Mode
	productID := entry.draft.ProductID
	images := append([]*StagedImage{}, entry.draft.Images...)
	previews := append([]string{}, entry.draft.Previews...)
	s.mu.Unlock()

	payload := commerce.ProductPayload{
		Name:        fields.Name,
		Description: fields.Description,
		// Unparseable numeric input submits as zero rather than blocking;
		// the platform has relied on this leniency since the first release.
		Price:    cast.ToFloat64(fields.Price),
		Stock:    cast.ToInt(fields.Stock),
		Category: fields.Category,
	}

	readers := make([]io.ReadCloser, 0, len(images))
	closeAll := func() {
		for _, r := range readers {
			r.Close()
		}
	}

	for _, image := range images {
		staged, reader, err := s.previews.Open(image.ID)
		if err != nil {
			closeAll()
			s.clearPending(id)
			return nil, err
		}
		readers = append(readers, reader)
		payload.Images = append(payload.Images, commerce.ImageFile{
			Filename:    staged.Filename,
			ContentType: staged.ContentType,
			Reader:      reader,
		})
	}

	var result any
	var err error
	if mode == DraftModeEditing {
		result, err = s.client.UpdateProduct(ctx, productID, payload)
	} else {
		result, err = s.client.CreateProduct(ctx, payload)
	}
	closeAll()

	if err != nil {
		s.clearPending(id)
		logrus.WithError(err).WithFields(logrus.Fields{
			"draft_id": id,
			"mode":     mode,
		}).Warn("Product submission failed")
		return nil, err
	}

	s.mu.Lock()
	delete(s.drafts, id)
	s.mu.Unlock()
	s.releasePreviews(previews)

	s.catalog.Invalidate()
	logrus.WithFields(logrus.Fields{
		"draft_id":   id,
		"mode":       mode,
		"product_id": productID,
	}).Info("Product submission succeeded")
	return result, nil
}

func (s *DraftService) clearPending(id string) {
	s.mu.Lock()
	if entry, exists := s.drafts[id]; exists {
		entry.draft.Pending = false
		entry.updatedAt = time.Now()
	}
	s.mu.Unlock()
}

func (s *DraftService) releaseStaged(images []*StagedImage) {
	for _, image := range images {
		s.previews.Release(image.ID)
	}
}

func (s *DraftService) releasePreviews(previews []string) {
	for _, url := range previews {
		if stagedID, ok := StagedIDFromURL(url); ok {
			s.previews.Release(stagedID)
		}
	}
}

func (s *DraftService) cleanupExpired() {
	for {
		time.Sleep(time.Minute)

		var expired [][]string
		s.mu.Lock()
		for id, entry := range s.drafts {
			if !entry.draft.Pending && time.Since(entry.updatedAt) > s.ttl {
				expired = append(expired, entry.draft.Previews)
				delete(s.drafts, id)
			}
		}
		s.mu.Unlock()

		for _, previews := range expired {
			s.releasePreviews(previews)
		}
	}
}
