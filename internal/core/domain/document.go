package domain

import (
	"fmt"
	"strings"
	"time"
)

// DocumentType classifies an uploaded file.
type DocumentType string

const (
	DocumentPDF         DocumentType = "pdf"
	DocumentText        DocumentType = "document"
	DocumentSpreadsheet DocumentType = "spreadsheet"
	DocumentImage       DocumentType = "image"
)

// DetectDocumentType maps a MIME type onto the portal's document types.
func DetectDocumentType(mimeType string) DocumentType {
	switch {
	case strings.Contains(mimeType, "image"):
		return DocumentImage
	case strings.Contains(mimeType, "pdf"):
		return DocumentPDF
	case strings.Contains(mimeType, "spreadsheet"):
		return DocumentSpreadsheet
	default:
		return DocumentText
	}
}

// FormatSize renders a byte count the way the document list shows it.
func FormatSize(bytes int64) string {
	return fmt.Sprintf("%.1f MB", float64(bytes)/1024/1024)
}

// Document is an entry in the document repository. No file content is kept.
type Document struct {
	DocumentID  string        `json:"documentID"`
	Name        string        `json:"name"`
	Type        DocumentType  `json:"type"`
	Size        string        `json:"size"`
	UploadedBy  string        `json:"uploadedBy"`
	UploadedAt  time.Time     `json:"uploadedAt"`
	AccessLevel Role          `json:"accessLevel"`
	Departments DepartmentSet `json:"departments"`
	Downloads   int           `json:"downloads"`
	Views       int           `json:"views"`
	Shared      bool          `json:"shared"`
}

// GetID implements the store identity contract.
func (d Document) GetID() string { return d.DocumentID }

// Clone returns a copy that does not share the department slice.
func (d Document) Clone() Document {
	d.Departments = append(DepartmentSet(nil), d.Departments...)
	return d
}

// DocumentFilter narrows the document list. Empty fields match everything.
type DocumentFilter struct {
	Type       DocumentType
	Department string
}

// Matches reports whether d passes the filter.
func (f DocumentFilter) Matches(d Document) bool {
	if f.Type != "" && d.Type != f.Type {
		return false
	}
	if f.Department != "" && f.Department != "all" && !d.Departments.Contains(f.Department) {
		return false
	}
	return true
}
