package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/corp_portal/internal/apperrors"
	"github.com/SscSPs/corp_portal/internal/core/domain"
	"github.com/SscSPs/corp_portal/internal/core/policy"
	portsrepo "github.com/SscSPs/corp_portal/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/corp_portal/internal/core/ports/services"
	"github.com/SscSPs/corp_portal/internal/dto"
	"github.com/google/uuid"
)

// documentService implements the DocumentSvcFacade interface
type documentService struct {
	BaseService
	documentRepo portsrepo.DocumentRepository
}

// NewDocumentService creates a new document service with the provided options
func NewDocumentService(repo portsrepo.DocumentRepository, options ...ServiceOption) portssvc.DocumentSvcFacade {
	return &documentService{
		BaseService:  newBaseService(options...),
		documentRepo: repo,
	}
}

var _ portssvc.DocumentSvcFacade = (*documentService)(nil)

func (s *documentService) ListDocuments(ctx context.Context, actor domain.User, filter domain.DocumentFilter) []domain.Document {
	all := s.documentRepo.List(ctx)
	visible := make([]domain.Document, 0, len(all))
	for _, d := range all {
		if policy.CanViewDocument(actor, d) && filter.Matches(d) {
			visible = append(visible, d)
		}
	}
	return visible
}

// findVisible returns the document or ErrNotFound when actor may not see it.
func (s *documentService) findVisible(ctx context.Context, actor domain.User, documentID string) (*domain.Document, error) {
	d, err := s.documentRepo.FindByID(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get document %s: %w", documentID, err)
	}
	if !policy.CanViewDocument(actor, *d) {
		s.LogDebug(ctx, "Document hidden from user",
			slog.String("document_id", documentID),
			slog.String("access_level", string(d.AccessLevel)),
			slog.String("role", string(actor.Role)))
		return nil, fmt.Errorf("document %s: %w", documentID, apperrors.ErrNotFound)
	}
	return d, nil
}

func (s *documentService) GetDocument(ctx context.Context, actor domain.User, documentID string) (*domain.Document, error) {
	if _, err := s.findVisible(ctx, actor, documentID); err != nil {
		return nil, err
	}
	updated, ok := s.documentRepo.UpdateByID(ctx, documentID, func(d *domain.Document) {
		d.Views++
	})
	if !ok {
		return nil, fmt.Errorf("document %s: %w", documentID, apperrors.ErrNotFound)
	}
	return &updated, nil
}

func (s *documentService) UploadDocument(ctx context.Context, actor domain.User, req dto.UploadDocumentRequest) (*domain.Document, error) {
	if err := s.Authorize(ctx, actor, "document.upload", policy.CanCreate(actor, domain.ContentDocument)); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: document name is required", apperrors.ErrValidation)
	}
	if req.SizeBytes < 0 {
		return nil, fmt.Errorf("%w: size must not be negative", apperrors.ErrValidation)
	}

	accessLevel := domain.RoleEmployee
	if req.AccessLevel != "" {
		role, ok := domain.ParseRole(req.AccessLevel)
		if !ok {
			return nil, fmt.Errorf("%w: unknown access level %q", apperrors.ErrValidation, req.AccessLevel)
		}
		accessLevel = role
	}

	doc := domain.Document{
		DocumentID:  uuid.NewString(),
		Name:        name,
		Type:        domain.DetectDocumentType(req.MimeType),
		Size:        domain.FormatSize(req.SizeBytes),
		UploadedBy:  actor.Name,
		UploadedAt:  s.Now(),
		AccessLevel: accessLevel,
		Departments: domain.NewDepartmentSet(req.Departments...),
		Shared:      req.Shared,
	}

	if err := s.documentRepo.Insert(ctx, doc); err != nil {
		s.LogError(ctx, err, "Failed to save document", slog.String("document_id", doc.DocumentID))
		return nil, fmt.Errorf("failed to upload document: %w", err)
	}

	s.LogInfo(ctx, "Document uploaded successfully",
		slog.String("document_id", doc.DocumentID),
		slog.String("type", string(doc.Type)),
		slog.String("access_level", string(accessLevel)))
	return &doc, nil
}

func (s *documentService) RecordDownload(ctx context.Context, actor domain.User, documentID string) (*domain.Document, error) {
	if _, err := s.findVisible(ctx, actor, documentID); err != nil {
		return nil, err
	}
	updated, ok := s.documentRepo.UpdateByID(ctx, documentID, func(d *domain.Document) {
		d.Downloads++
	})
	if !ok {
		return nil, fmt.Errorf("document %s: %w", documentID, apperrors.ErrNotFound)
	}
	s.LogDebug(ctx, "Document downloaded", slog.String("document_id", documentID))
	return &updated, nil
}

func (s *documentService) DeleteDocument(ctx context.Context, actor domain.User, documentID string) error {
	if _, err := s.findVisible(ctx, actor, documentID); err != nil {
		return err
	}
	if err := s.Authorize(ctx, actor, "document.delete", policy.CanDeleteDocument(actor),
		slog.String("document_id", documentID)); err != nil {
		return err
	}

	s.documentRepo.RemoveByID(ctx, documentID)
	s.LogInfo(ctx, "Document deleted successfully", slog.String("document_id", documentID))
	return nil
}
