package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"happybrother-backend/internal/domains/post"
	"happybrother-backend/internal/shared/response"
	"happybrother-backend/pkg/logger"
)

type PostHandler struct {
	service post.Service
}

func NewPostHandler(svc post.Service) *PostHandler {
	return &PostHandler{
		service: svc,
	}
}

// respondError maps domain errors onto the response envelope.
// Validation failures carry per-field details; everything else is
// logged and mapped to its status code with the UI state untouched.
func respondError(c *gin.Context, err error) {
	var verr validation.Errors
	if errors.As(err, &verr) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_FAILED", "post validation failed", verr)
		return
	}

	status := post.ToHTTPStatus(err)
	if status >= 500 {
		logger.Error("post operation failed", err)
	}
	response.ErrorResponse(c, status, post.ToErrorCode(err), err.Error())
}

// ════════════════════════════════════════════════════════════════
// PUBLIC: GET /v1/posts
// ════════════════════════════════════════════════════════════════

func (h *PostHandler) ListPublished(c *gin.Context) {
	posts, err := h.service.ListPublished(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, post.ToResponseList(posts))
}

// ════════════════════════════════════════════════════════════════
// PUBLIC: GET /v1/posts/featured
// ════════════════════════════════════════════════════════════════

func (h *PostHandler) ListFeatured(c *gin.Context) {
	posts, err := h.service.ListFeatured(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, post.ToResponseList(posts))
}

// ════════════════════════════════════════════════════════════════
// PUBLIC + ADMIN: GET /v1/posts/:id, GET /v1/admin/posts/:id
// ════════════════════════════════════════════════════════════════

func (h *PostHandler) GetByID(c *gin.Context) {
	p, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, p.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// ADMIN: GET /v1/admin/posts
// ════════════════════════════════════════════════════════════════

func (h *PostHandler) ListAll(c *gin.Context) {
	posts, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, post.ToResponseList(posts))
}

// ════════════════════════════════════════════════════════════════
// ADMIN: PUT /v1/admin/posts/:id/draft ("new" creates)
// ════════════════════════════════════════════════════════════════

func (h *PostHandler) SaveDraft(c *gin.Context) {
	var req post.SavePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	saved, err := h.service.SaveDraft(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, saveStatusCode(c.Param("id")), saved.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// ADMIN: PUT /v1/admin/posts/:id/publish ("new" creates)
// ════════════════════════════════════════════════════════════════

func (h *PostHandler) Publish(c *gin.Context) {
	var req post.SavePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	saved, err := h.service.Publish(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, saveStatusCode(c.Param("id")), saved.ToResponse())
}

// saveStatusCode distinguishes create from edit on the shared save
// endpoints: a "new" id means a record was created.
func saveStatusCode(editorID string) int {
	if editorID == "" || editorID == post.EditorNewID {
		return http.StatusCreated
	}
	return http.StatusOK
}

// ════════════════════════════════════════════════════════════════
// ADMIN: DELETE /v1/admin/posts/:id
// ════════════════════════════════════════════════════════════════

func (h *PostHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// ════════════════════════════════════════════════════════════════
// ADMIN: GET /v1/admin/stats
// ════════════════════════════════════════════════════════════════

func (h *PostHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, stats)
}
