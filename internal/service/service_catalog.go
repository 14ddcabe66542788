package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/MKhiriev/go-photo-catalog/internal/config"
	"github.com/MKhiriev/go-photo-catalog/internal/logger"
	"github.com/MKhiriev/go-photo-catalog/internal/store"
	"github.com/MKhiriev/go-photo-catalog/internal/utils"
	"github.com/MKhiriev/go-photo-catalog/models"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

const maxFileIDAttempts = 3

type catalogService struct {
	catalog store.CatalogRepository
	files   store.FileStorage

	thumbnailSize int
	clock         utils.Clock
	newFileID     func() int64

	logger *logger.Logger
}

func NewCatalogService(catalog store.CatalogRepository, files store.FileStorage, cfg config.App, logger *logger.Logger) CatalogService {
	return newCatalogService(catalog, files, cfg, utils.RealClock{}, randomFileID, logger)
}

func newCatalogService(catalog store.CatalogRepository, files store.FileStorage, cfg config.App, clock utils.Clock, newFileID func() int64, logger *logger.Logger) *catalogService {
	return &catalogService{
		catalog:       catalog,
		files:         files,
		thumbnailSize: cfg.ThumbnailSize,
		clock:         clock,
		newFileID:     newFileID,
		logger:        logger,
	}
}

// randomFileID returns a positive id. Ids are random rather than sequential
// because two peers allocate them independently.
func randomFileID() int64 {
	return rand.Int64N(math.MaxInt64) + 1
}

func (s *catalogService) AddFile(ctx context.Context, upload models.UploadRequest) (models.File, error) {
	log := logger.FromContext(ctx)
	extension := strings.ToLower(upload.Extension)

	for range maxFileIDAttempts {
		now := s.clock.Now()
		file := models.File{
			ID:           s.newFileID(),
			Extension:    extension,
			CreationDate: now,
			Tags:         []string{},
		}

		// bytes go to disk before the row exists; never overwrite a taken id
		if _, err := s.catalog.GetFileWithID(ctx, file.ID); err == nil {
			log.Warn().Str("func", "*catalogService.AddFile").Int64("file_id", file.ID).Msg("file id collision, retrying")
			continue
		} else if !errors.Is(err, store.ErrNoSuchFileInDatabase) {
			return models.File{}, err
		}

		if err := s.files.SaveFile(ctx, file.ID, extension, upload.Data); err != nil {
			return models.File{}, fmt.Errorf("error saving file bytes: %w", err)
		}
		s.saveThumbnail(ctx, file.ID, upload.Data)

		err := s.catalog.AddFile(ctx, file, models.NewFileAdded(now, file.ID))
		if errors.Is(err, store.ErrFileAlreadyExists) {
			log.Warn().Str("func", "*catalogService.AddFile").Int64("file_id", file.ID).Msg("file id collision, retrying")
			continue
		}
		if err != nil {
			return models.File{}, err
		}

		log.Info().Str("func", "*catalogService.AddFile").Int64("file_id", file.ID).Msg("file added")
		return file, nil
	}

	return models.File{}, store.ErrFileAlreadyExists
}

// saveThumbnail stores a thumbnail when data decodes as an image. Files that
// are not images simply have none.
func (s *catalogService) saveThumbnail(ctx context.Context, fileID int64, data []byte) {
	if s.thumbnailSize <= 0 {
		return
	}

	thumbnail, err := makeThumbnail(data, s.thumbnailSize)
	if err != nil {
		s.logger.Debug().Err(err).Int64("file_id", fileID).Msg("no thumbnail generated")
		return
	}

	if err = s.files.SaveThumbnail(ctx, fileID, thumbnail); err != nil {
		s.logger.Err(err).Str("func", "*catalogService.saveThumbnail").Int64("file_id", fileID).Msg("failed to save thumbnail")
	}
}

func makeThumbnail(data []byte, size int) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	thumbnail := imaging.Fit(img, size, size, imaging.Lanczos)
	if err = imaging.Encode(&buf, thumbnail, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (s *catalogService) GetFile(ctx context.Context, fileID int64) (models.File, error) {
	return s.catalog.GetFileWithID(ctx, fileID)
}

func (s *catalogService) RemoveFile(ctx context.Context, fileID int64) error {
	change := models.NewFileRemoved(s.clock.Now(), fileID)
	return s.catalog.MutateFile(ctx, fileID, change, func(file *models.File) error {
		if file.Removed {
			return ErrFileIsRemoved
		}
		file.Removed = true
		return nil
	})
}

func (s *catalogService) AddTag(ctx context.Context, fileID int64, request models.TagRequest) error {
	tag := strings.TrimSpace(request.Tag)
	change := models.NewTagAdded(s.clock.Now(), fileID, tag)
	return s.catalog.MutateFile(ctx, fileID, change, func(file *models.File) error {
		if file.Removed {
			return ErrFileIsRemoved
		}
		file.AddTag(tag)
		return nil
	})
}

func (s *catalogService) RemoveTag(ctx context.Context, fileID int64, request models.TagRequest) error {
	tag := strings.TrimSpace(request.Tag)
	change := models.NewTagRemoved(s.clock.Now(), fileID, tag)
	return s.catalog.MutateFile(ctx, fileID, change, func(file *models.File) error {
		if file.Removed {
			return ErrFileIsRemoved
		}
		if !file.HasTag(tag) {
			return ErrNoSuchTag
		}
		file.RemoveTag(tag)
		return nil
	})
}

func (s *catalogService) SetCreationDate(ctx context.Context, fileID int64, request models.CreationDateRequest) error {
	date := request.Date.UTC()
	change := models.NewCreationDateChanged(s.clock.Now(), fileID, date)
	return s.catalog.MutateFile(ctx, fileID, change, func(file *models.File) error {
		if file.Removed {
			return ErrFileIsRemoved
		}
		file.CreationDate = date
		return nil
	})
}
