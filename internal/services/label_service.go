package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "centavo/internal/errors"
	"centavo/internal/models"
)

// labelService manages the four user-scoped label lists.
type labelService struct {
	db *gorm.DB
}

// NewLabelService creates a new LabelServicer.
func NewLabelService(db *gorm.DB) LabelServicer {
	return &labelService{db: db}
}

// SeedDefaults inserts the default label set for every kind. Runs inside the
// caller's transaction so registration and seeding succeed or fail together.
func (s *labelService) SeedDefaults(tx *gorm.DB, userID string) error {
	defaults := models.DefaultLabels()
	for _, kind := range models.Kinds() {
		for _, name := range defaults[kind] {
			label := &models.Label{UserID: userID, Kind: kind, Name: name}
			if err := tx.Create(label).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// CreateLabel adds a label to one of the user's lists.
func (s *labelService) CreateLabel(userID string, kind models.LabelKind, name string) (*models.Label, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "label name is required")
	}
	if !models.ValidKind(string(kind)) {
		return nil, apperrors.ErrInvalidKind
	}

	var count int64
	if err := s.db.Model(&models.Label{}).
		Where("user_id = ? AND kind = ? AND name = ?", userID, kind, name).
		Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateLabel
	}

	label := &models.Label{UserID: userID, Kind: kind, Name: name}
	if err := s.db.Create(label).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return label, nil
}

// GetUserLabels returns one of the user's label lists, name-ordered. Label
// lists are small enough that pagination would be noise.
func (s *labelService) GetUserLabels(userID string, kind models.LabelKind) ([]models.Label, error) {
	if !models.ValidKind(string(kind)) {
		return nil, apperrors.ErrInvalidKind
	}

	var labels []models.Label
	if err := s.db.Where("user_id = ? AND kind = ?", userID, kind).
		Order("name").Find(&labels).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return labels, nil
}

// UpdateLabel renames a label. Records referencing the old name keep it:
// labels are classified by value, not by key.
func (s *labelService) UpdateLabel(userID, labelID string, name string) (*models.Label, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "label name is required")
	}

	label, err := s.getLabel(userID, labelID)
	if err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Model(&models.Label{}).
		Where("user_id = ? AND kind = ? AND name = ? AND id <> ?", userID, label.Kind, name, labelID).
		Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateLabel
	}

	if err := s.db.Model(label).Update("name", name).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return label, nil
}

// DeleteLabel removes a label from its list. Expenses, income, and bills that
// reference the deleted name are left untouched.
func (s *labelService) DeleteLabel(userID, labelID string) error {
	label, err := s.getLabel(userID, labelID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(label).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func (s *labelService) getLabel(userID, labelID string) (*models.Label, error) {
	var label models.Label
	if err := s.db.Where("id = ? AND user_id = ?", labelID, userID).First(&label).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLabelNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &label, nil
}
