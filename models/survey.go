package models

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"gorm.io/datatypes"
)

// Survey represents one public form submission, denormalized into a single row.
// The four auxiliary answers are kept as an opaque JSON document in Responses.
type Survey struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	BrandName    string         `gorm:"size:255" json:"brand_name"`
	BrandService string         `gorm:"size:255" json:"brand_service"`
	Description  string         `gorm:"type:text" json:"description"`
	Responses    datatypes.JSON `gorm:"type:jsonb" json:"responses"`
	IsSubmitted  bool           `gorm:"default:false" json:"is_submitted"`
	SubmittedAt  time.Time      `json:"submitted_at"`
	CreatedAt    time.Time      `json:"created_at"`
}

// TableName specifies the table name for Survey
func (Survey) TableName() string {
	return "surveys"
}

var ErrEmptySubmission = errors.New("at least one survey field is required")

// SurveyInput is the public submission payload. Every field is optional on its
// own; a submission is rejected only when all six semantic fields are empty.
type SurveyInput struct {
	BrandName          string     `json:"brand_name"`
	BrandService       string     `json:"brand_service"`
	TargetAudience     string     `json:"target_audience"`
	BusinessWhy        string     `json:"business_why"`
	CustomerImpression string     `json:"customer_impression"`
	Contact            string     `json:"contact"`
	SubmittedAt        *time.Time `json:"submitted_at"`
}

// Validate enforces the single admission check.
func (in *SurveyInput) Validate() error {
	fields := []string{
		in.BrandName,
		in.BrandService,
		in.TargetAudience,
		in.BusinessWhy,
		in.CustomerImpression,
		in.Contact,
	}
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return nil
		}
	}
	return ErrEmptySubmission
}

// ToSurvey builds the record to insert. SubmittedAt falls back to now when the
// client did not supply one; Description mirrors BrandService.
func (in *SurveyInput) ToSurvey(now time.Time) (Survey, error) {
	responses, err := json.Marshal(map[string]string{
		"target_audience":     in.TargetAudience,
		"business_why":        in.BusinessWhy,
		"customer_impression": in.CustomerImpression,
		"contact":             in.Contact,
	})
	if err != nil {
		return Survey{}, err
	}

	submittedAt := now
	if in.SubmittedAt != nil {
		submittedAt = *in.SubmittedAt
	}

	return Survey{
		BrandName:    in.BrandName,
		BrandService: in.BrandService,
		Description:  in.BrandService,
		Responses:    datatypes.JSON(responses),
		IsSubmitted:  true,
		SubmittedAt:  submittedAt,
	}, nil
}

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
)

// ListParams carries the admin listing inputs after clamping.
type ListParams struct {
	Page   int
	Limit  int
	Search string
}

// ParseListParams reads page, limit and search from the query string.
// Unparseable numbers fall back to the defaults; page is floored at 1 and
// limit capped at MaxLimit.
func ParseListParams(r *http.Request) ListParams {
	q := r.URL.Query()

	page := DefaultPage
	if v, err := strconv.Atoi(q.Get("page")); err == nil {
		page = v
	}
	if page < 1 {
		page = 1
	}

	limit := DefaultLimit
	if v, err := strconv.Atoi(q.Get("limit")); err == nil {
		limit = v
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return ListParams{
		Page:   page,
		Limit:  limit,
		Search: q.Get("search"),
	}
}

// Offset returns the row offset for the data query.
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ListResult is the admin listing response body.
type ListResult struct {
	Items []Survey `json:"items"`
	Total int64    `json:"total"`
	Page  int      `json:"page"`
	Limit int      `json:"limit"`
}
