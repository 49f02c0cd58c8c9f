package service

import (
	"fmt"
	"os"

	"github.com/gambutlab/tallysheet/internal/models"
	"github.com/gambutlab/tallysheet/internal/tallysheet"
)

type TallysheetService struct{}

func NewTallysheetService() *TallysheetService {
	return &TallysheetService{}
}

// Validate runs the numeric rule table over the submitted fields and returns
// every failure. An empty result means the submission can be rendered.
func (s *TallysheetService) Validate(sub *models.Submission) []models.FieldError {
	return tallysheet.ValidateNumericFields(sub.Fields, tallysheet.NumericRules)
}

// Generate builds the tallysheet document and writes it to a freshly named
// temp file. The caller owns the file and removes it once the response has
// been sent; on error no file is left behind.
func (s *TallysheetService) Generate(sub *models.Submission) (string, error) {
	doc := tallysheet.Build(sub)

	tmp, err := os.CreateTemp("", "tallysheet_*.docx")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	if _, err := doc.WriteTo(tmp); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("close temp file: %w", err)
	}
	return tmp.Name(), nil
}

// Sample returns the fixed example submission used by the sample endpoint.
func (s *TallysheetService) Sample() *models.Submission {
	return tallysheet.SampleSubmission()
}
