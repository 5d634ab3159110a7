package dto

import (
	"time"

	"github.com/SscSPs/corp_portal/internal/core/domain"
	"github.com/SscSPs/corp_portal/internal/core/policy"
)

// UploadDocumentRequest describes an uploaded file. Only metadata is kept.
type UploadDocumentRequest struct {
	Name        string   `json:"name" binding:"required,max=255"`
	MimeType    string   `json:"mimeType"`
	SizeBytes   int64    `json:"sizeBytes" binding:"gte=0"`
	AccessLevel string   `json:"accessLevel" binding:"omitempty,portalrole"`
	Departments []string `json:"departments" binding:"omitempty,dive,department"`
	Shared      bool     `json:"shared"`
}

// ListDocumentsParams defines query parameters for the document list.
type ListDocumentsParams struct {
	Type       string `form:"type" binding:"omitempty,oneof=pdf document spreadsheet image"`
	Department string `form:"department"`
}

// ToFilter converts the query parameters into a domain filter.
func (p ListDocumentsParams) ToFilter() domain.DocumentFilter {
	return domain.DocumentFilter{Type: domain.DocumentType(p.Type), Department: p.Department}
}

// DocumentResponse defines the data returned for a document.
type DocumentResponse struct {
	DocumentID  string              `json:"documentID"`
	Name        string              `json:"name"`
	Type        domain.DocumentType `json:"type"`
	Size        string              `json:"size"`
	UploadedBy  string              `json:"uploadedBy"`
	UploadedAt  time.Time           `json:"uploadedAt"`
	AccessLevel domain.Role         `json:"accessLevel"`
	Departments []string            `json:"departments"`
	Downloads   int                 `json:"downloads"`
	Views       int                 `json:"views"`
	Shared      bool                `json:"shared"`
}

// ToDocumentResponse converts a domain.Document to DocumentResponse DTO.
func ToDocumentResponse(d domain.Document) DocumentResponse {
	return DocumentResponse{
		DocumentID:  d.DocumentID,
		Name:        d.Name,
		Type:        d.Type,
		Size:        d.Size,
		UploadedBy:  d.UploadedBy,
		UploadedAt:  d.UploadedAt,
		AccessLevel: d.AccessLevel,
		Departments: nonNil([]string(d.Departments)),
		Downloads:   d.Downloads,
		Views:       d.Views,
		Shared:      d.Shared,
	}
}

// ListDocumentsResponse is the document center payload.
type ListDocumentsResponse struct {
	Documents   []DocumentResponse `json:"documents"`
	SharedCount int                `json:"sharedCount"`
	CanUpload   bool               `json:"canUpload"`
	CanDelete   bool               `json:"canDelete"`
}

// ToListDocumentsResponse converts the visible documents for the acting user.
func ToListDocumentsResponse(docs []domain.Document, actor domain.User) ListDocumentsResponse {
	res := ListDocumentsResponse{
		Documents: make([]DocumentResponse, len(docs)),
		CanUpload: policy.CanUpload(actor),
		CanDelete: policy.CanDeleteDocument(actor),
	}
	for i, d := range docs {
		res.Documents[i] = ToDocumentResponse(d)
		if d.Shared {
			res.SharedCount++
		}
	}
	return res
}
