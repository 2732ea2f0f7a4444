package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/xuri/excelize/v2"

	"p9e.in/brandsurvey/middleware"
	"p9e.in/brandsurvey/models"
)

var exportColumns = []string{
	"ID", "Brand Name", "Brand Service", "Description",
	"Target Audience", "Business Why", "Customer Impression", "Contact",
	"Submitted At", "Created At",
}

// ExportSurveys handles GET /api/admin/surveys/export
// Streams every submission matching the optional search filter as an .xlsx
// download.
func (h *SurveyHandler) ExportSurveys(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	surveys, err := h.store.ListAll(search)
	if err != nil {
		logStoreError("export surveys", err, "search", search)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Server error")
		return
	}

	file, err := createExportFile(surveys)
	if err != nil {
		slog.Error("failed to build export file", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Server error")
		return
	}

	buffer, err := file.WriteToBuffer()
	if err != nil {
		slog.Error("failed to write export file", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Server error")
		return
	}

	filename := fmt.Sprintf("surveys_%s.xlsx", h.now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", buffer.Len()))

	w.WriteHeader(http.StatusOK)
	w.Write(buffer.Bytes())
}

// createExportFile generates the Excel workbook for a set of submissions.
func createExportFile(surveys []models.Survey) (*excelize.File, error) {
	f := excelize.NewFile()
	sheetName := "Submissions"

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#4472C4"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})

	for colIdx, header := range exportColumns {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, 1)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
		col, _ := excelize.ColumnNumberToName(colIdx + 1)
		f.SetColWidth(sheetName, col, col, 20)
	}

	for rowIdx, survey := range surveys {
		// The auxiliary answers live in the responses document.
		var responses map[string]string
		if err := json.Unmarshal(survey.Responses, &responses); err != nil {
			responses = map[string]string{}
		}

		values := []interface{}{
			survey.ID,
			survey.BrandName,
			survey.BrandService,
			survey.Description,
			responses["target_audience"],
			responses["business_why"],
			responses["customer_impression"],
			responses["contact"],
			survey.SubmittedAt.Format("2006-01-02 15:04:05"),
			survey.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for colIdx, value := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	return f, nil
}
