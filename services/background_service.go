package services

import (
	"context"
	"io"

	"github.com/dhu2022-dev/mental-health-checkin/constants"
	"github.com/dhu2022-dev/mental-health-checkin/errors"
	"github.com/dhu2022-dev/mental-health-checkin/models"
	"github.com/dhu2022-dev/mental-health-checkin/services/logger"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	backgroundFolder   = "backgrounds"
	backgroundPublicID = "custom"
	// Fill-crop to a consistent 16:9 so backgrounds display uniformly
	backgroundTransformation = "c_fill,w_1920,h_1080,g_center"
)

// BackgroundServiceOptions contains the dependencies of BackgroundService
type BackgroundServiceOptions struct {
	DB         *gorm.DB
	Cloudinary *cloudinary.Cloudinary
	Logger     logger.Logger
}

// BackgroundService manages the dashboard's custom background image
type BackgroundService struct {
	db     *gorm.DB
	cld    *cloudinary.Cloudinary
	logger logger.Logger
}

// NewBackgroundService creates a BackgroundService
func NewBackgroundService(opts BackgroundServiceOptions) *BackgroundService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &BackgroundService{
		db:     opts.DB,
		cld:    opts.Cloudinary,
		logger: l,
	}
}

// CurrentURL returns the stored background URL, or "" when none is set
func (s *BackgroundService) CurrentURL(ctx context.Context) (string, error) {
	var setting models.AppSetting
	err := s.db.WithContext(ctx).
		Where("key = ?", constants.SettingCustomBackground).
		First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", errors.NewAppError(errors.ErrCodeDBError, "Failed to read settings", err)
	}
	return setting.Value, nil
}

// Upload sends the image to Cloudinary with the fill crop applied on
// ingest (the uploaded asset is already 1920x1080) and upserts the secure
// URL into app settings.
func (s *BackgroundService) Upload(ctx context.Context, file io.Reader) (string, error) {
	resp, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:         backgroundFolder,
		PublicID:       backgroundPublicID,
		Overwrite:      api.Bool(true),
		Transformation: backgroundTransformation,
	})
	if err != nil {
		return "", errors.NewAppError(errors.ErrCodeInvalidFormat, "Upload failed", err)
	}

	setting := models.AppSetting{
		Key:   constants.SettingCustomBackground,
		Value: resp.SecureURL,
	}
	if err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&setting).Error; err != nil {
		return "", errors.NewAppError(errors.ErrCodeDBError, "Failed to save setting", err)
	}

	return resp.SecureURL, nil
}

// Remove destroys the Cloudinary asset and clears the setting
func (s *BackgroundService) Remove(ctx context.Context) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: backgroundFolder + "/" + backgroundPublicID,
	}); err != nil {
		// The asset may already be gone; clearing the setting still matters
		s.logger.Error("cloudinary destroy failed: %v", err)
	}

	if err := s.db.WithContext(ctx).
		Where("key = ?", constants.SettingCustomBackground).
		Delete(&models.AppSetting{}).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Failed to clear setting", err)
	}
	return nil
}
