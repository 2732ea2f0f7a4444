package models

import (
	"gorm.io/gorm"
)

// SurveyStore wraps all survey persistence. Both admin queries share the same
// parameterized filter so the count always matches the paginated window.
type SurveyStore struct {
	db *gorm.DB
}

func NewSurveyStore(db *gorm.DB) *SurveyStore {
	return &SurveyStore{db: db}
}

// searchScope applies the shared substring filter when a search term is set.
// A single wildcard-wrapped parameter is matched against all three columns.
func searchScope(search string) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if search == "" {
			return tx
		}
		term := "%" + search + "%"
		return tx.Where("brand_name LIKE ? OR brand_service LIKE ? OR description LIKE ?",
			term, term, term)
	}
}

// Create inserts a new survey; the store assigns ID and CreatedAt.
func (s *SurveyStore) Create(survey *Survey) error {
	return s.db.Create(survey).Error
}

// List runs the count and data queries for one page of submissions, newest
// first with id as the tie-break for equal timestamps.
func (s *SurveyStore) List(p ListParams) (*ListResult, error) {
	var total int64
	if err := s.db.Model(&Survey{}).Scopes(searchScope(p.Search)).Count(&total).Error; err != nil {
		return nil, err
	}

	items := []Survey{}
	err := s.db.Scopes(searchScope(p.Search)).
		Order("submitted_at DESC, id DESC").
		Offset(p.Offset()).
		Limit(p.Limit).
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	return &ListResult{
		Items: items,
		Total: total,
		Page:  p.Page,
		Limit: p.Limit,
	}, nil
}

// ListAll returns every submission matching the filter, newest first.
// Used by the export endpoint.
func (s *SurveyStore) ListAll(search string) ([]Survey, error) {
	items := []Survey{}
	err := s.db.Scopes(searchScope(search)).
		Order("submitted_at DESC, id DESC").
		Find(&items).Error
	return items, err
}

// Get fetches a single survey by id. Returns gorm.ErrRecordNotFound when the
// id does not exist.
func (s *SurveyStore) Get(id uint) (*Survey, error) {
	var survey Survey
	if err := s.db.First(&survey, id).Error; err != nil {
		return nil, err
	}
	return &survey, nil
}

// Delete removes a survey permanently and reports how many rows were hit,
// so the handler can distinguish a miss from a success.
func (s *SurveyStore) Delete(id uint) (int64, error) {
	result := s.db.Delete(&Survey{}, id)
	return result.RowsAffected, result.Error
}
