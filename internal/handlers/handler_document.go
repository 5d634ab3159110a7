package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/corp_portal/internal/core/ports/services"
	"github.com/SscSPs/corp_portal/internal/dto"
	"github.com/SscSPs/corp_portal/internal/middleware"
	"github.com/gin-gonic/gin"
)

// documentHandler handles HTTP requests for the document center.
type documentHandler struct {
	documentService portssvc.DocumentSvcFacade
}

func newDocumentHandler(ds portssvc.DocumentSvcFacade) *documentHandler {
	return &documentHandler{documentService: ds}
}

// registerDocumentRoutes registers routes related to documents.
func registerDocumentRoutes(rg *gin.RouterGroup, documentService portssvc.DocumentSvcFacade) {
	h := newDocumentHandler(documentService)

	documents := rg.Group("/documents")
	{
		documents.GET("", h.listDocuments)
		documents.POST("", h.uploadDocument)
		documents.GET("/:id", h.getDocument)
		documents.DELETE("/:id", h.deleteDocument)
		documents.POST("/:id/download", h.downloadDocument)
	}
}

// listDocuments godoc
// @Summary List documents
// @Description Lists the documents the acting user can see, newest upload first
// @Tags documents
// @Produce  json
// @Param   type query string false "Document type (pdf, document, spreadsheet, image)"
// @Param   department query string false "Department filter"
// @Success 200 {object} dto.ListDocumentsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unknown acting user"
// @Security ActingUser
// @Router /documents [get]
func (h *documentHandler) listDocuments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	user, ok := actingUser(c, logger)
	if !ok {
		return
	}

	var params dto.ListDocumentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters for ListDocuments", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	docs := h.documentService.ListDocuments(c.Request.Context(), user, params.ToFilter())
	c.JSON(http.StatusOK, dto.ToListDocumentsResponse(docs, user))
}

// getDocument godoc
// @Summary Get a document by ID
// @Description Retrieves one document and counts a view
// @Tags documents
// @Produce  json
// @Param   id path string true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 401 {object} map[string]string "Unknown acting user"
// @Failure 404 {object} map[string]string "Document not found"
// @Security ActingUser
// @Router /documents/{id} [get]
func (h *documentHandler) getDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	user, ok := actingUser(c, logger)
	if !ok {
		return
	}

	documentID := c.Param("id")
	doc, err := h.documentService.GetDocument(c.Request.Context(), user, documentID)
	if err != nil {
		respondError(c, logger.With(slog.String("document_id", documentID)), err, "Failed to retrieve document")
		return
	}
	c.JSON(http.StatusOK, dto.ToDocumentResponse(*doc))
}

// uploadDocument godoc
// @Summary Upload a document
// @Description Registers document metadata uploaded by the acting user
// @Tags documents
// @Accept  json
// @Produce  json
// @Param   document body dto.UploadDocumentRequest true "Document metadata"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unknown acting user"
// @Failure 403 {object} map[string]string "Role not allowed to upload"
// @Failure 500 {object} map[string]string "Failed to upload document"
// @Security ActingUser
// @Router /documents [post]
func (h *documentHandler) uploadDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	user, ok := actingUser(c, logger)
	if !ok {
		return
	}

	var req dto.UploadDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UploadDocument", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	doc, err := h.documentService.UploadDocument(c.Request.Context(), user, req)
	if err != nil {
		respondError(c, logger, err, "Failed to upload document")
		return
	}
	c.JSON(http.StatusCreated, dto.ToDocumentResponse(*doc))
}

// downloadDocument godoc
// @Summary Record a document download
// @Description Counts one download of a visible document
// @Tags documents
// @Produce  json
// @Param   id path string true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 401 {object} map[string]string "Unknown acting user"
// @Failure 404 {object} map[string]string "Document not found"
// @Security ActingUser
// @Router /documents/{id}/download [post]
func (h *documentHandler) downloadDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	user, ok := actingUser(c, logger)
	if !ok {
		return
	}

	documentID := c.Param("id")
	doc, err := h.documentService.RecordDownload(c.Request.Context(), user, documentID)
	if err != nil {
		respondError(c, logger.With(slog.String("document_id", documentID)), err, "Failed to record download")
		return
	}
	c.JSON(http.StatusOK, dto.ToDocumentResponse(*doc))
}

// deleteDocument godoc
// @Summary Delete a document
// @Description Removes a document (VP and above)
// @Tags documents
// @Produce  json
// @Param   id path string true "Document ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unknown acting user"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Document not found"
// @Security ActingUser
// @Router /documents/{id} [delete]
func (h *documentHandler) deleteDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	user, ok := actingUser(c, logger)
	if !ok {
		return
	}

	documentID := c.Param("id")
	if err := h.documentService.DeleteDocument(c.Request.Context(), user, documentID); err != nil {
		respondError(c, logger.With(slog.String("document_id", documentID)), err, "Failed to delete document")
		return
	}
	c.Status(http.StatusNoContent)
}
