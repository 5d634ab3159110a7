package services

import (
	"context"

	"github.com/SscSPs/corp_portal/internal/core/domain"
	"github.com/SscSPs/corp_portal/internal/dto"
)

// DocumentReaderSvc defines read operations on the document center.
type DocumentReaderSvc interface {
	// ListDocuments returns the visible documents matching filter, newest first.
	ListDocuments(ctx context.Context, actor domain.User, filter domain.DocumentFilter) []domain.Document

	// GetDocument retrieves one visible document and counts the view.
	GetDocument(ctx context.Context, actor domain.User, documentID string) (*domain.Document, error)
}

// DocumentWriterSvc defines write operations on the document center.
type DocumentWriterSvc interface {
	// UploadDocument stores the metadata of an uploaded file.
	UploadDocument(ctx context.Context, actor domain.User, req dto.UploadDocumentRequest) (*domain.Document, error)

	// RecordDownload counts a download of a visible document.
	RecordDownload(ctx context.Context, actor domain.User, documentID string) (*domain.Document, error)

	// DeleteDocument removes a document. VP and above.
	DeleteDocument(ctx context.Context, actor domain.User, documentID string) error
}

// DocumentSvcFacade combines all document-related service interfaces.
type DocumentSvcFacade interface {
	DocumentReaderSvc
	DocumentWriterSvc
}
