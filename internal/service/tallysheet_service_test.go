package service

import (
	"os"
	"strings"
	"testing"

	"github.com/gambutlab/tallysheet/internal/models"
)

func TestGenerateWritesTempDocx(t *testing.T) {
	svc := NewTallysheetService()

	path, err := svc.Generate(models.NewSubmission())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	defer os.Remove(path)

	if !strings.HasSuffix(path, ".docx") {
		t.Fatalf("temp file has wrong suffix: %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read temp file: %v", err)
	}
	if len(data) < 4 || string(data[:2]) != "PK" {
		t.Fatal("temp file is not a docx (zip) archive")
	}
}

func TestGenerateUsesFreshTempFiles(t *testing.T) {
	svc := NewTallysheetService()

	p1, err := svc.Generate(models.NewSubmission())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	defer os.Remove(p1)
	p2, err := svc.Generate(models.NewSubmission())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	defer os.Remove(p2)

	if p1 == p2 {
		t.Fatalf("two generations shared temp path %q", p1)
	}
}

func TestSampleSubmissionIsValid(t *testing.T) {
	svc := NewTallysheetService()

	if errs := svc.Validate(svc.Sample()); len(errs) != 0 {
		t.Fatalf("sample submission failed validation: %+v", errs)
	}
}
