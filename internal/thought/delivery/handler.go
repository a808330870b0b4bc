package delivery

import (
	"net/http"

	authdelivery "happy-thoughts-backend/internal/auth/delivery"
	authdomain "happy-thoughts-backend/internal/auth/domain"
	"happy-thoughts-backend/internal/common"
	"happy-thoughts-backend/internal/thought/dto"
	"happy-thoughts-backend/internal/thought/usecase"

	"github.com/gin-gonic/gin"
)

// ThoughtHandler handles thought-related HTTP requests
type ThoughtHandler struct {
	thoughtUsecase usecase.ThoughtUsecase
}

// NewThoughtHandler creates a new ThoughtHandler
func NewThoughtHandler(thoughtUsecase usecase.ThoughtUsecase) *ThoughtHandler {
	return &ThoughtHandler{
		thoughtUsecase: thoughtUsecase,
	}
}

// List returns the 20 most recent thoughts, newest first
// GET /thoughts
func (h *ThoughtHandler) List(c *gin.Context) {
	thoughts, err := h.thoughtUsecase.List()
	if err != nil {
		common.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, thoughts)
}

// Get returns a single thought
// GET /thoughts/:id
func (h *ThoughtHandler) Get(c *gin.Context) {
	thought, err := h.thoughtUsecase.Get(c.Param("id"))
	if err != nil {
		common.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, thought)
}

// Create stores a new thought
// POST /thoughts
func (h *ThoughtHandler) Create(c *gin.Context) {
	var req dto.CreateThoughtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	thought, err := h.thoughtUsecase.Create(&req, currentUser(c))
	if err != nil {
		common.WriteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, thought)
}

// Update replaces the message of an owned thought
// PATCH /thoughts/:id
func (h *ThoughtHandler) Update(c *gin.Context) {
	var req dto.UpdateThoughtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	thought, err := h.thoughtUsecase.Update(c.Param("id"), &req, currentUser(c))
	if err != nil {
		common.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, thought)
}

// Delete removes an owned thought and returns its prior state
// DELETE /thoughts/:id
func (h *ThoughtHandler) Delete(c *gin.Context) {
	thought, err := h.thoughtUsecase.Delete(c.Param("id"), currentUser(c))
	if err != nil {
		common.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, thought)
}

// Like increments the hearts counter; open to everyone
// POST /thoughts/:id/like
func (h *ThoughtHandler) Like(c *gin.Context) {
	thought, err := h.thoughtUsecase.Like(c.Param("id"))
	if err != nil {
		common.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, thought)
}

// currentUser returns the user resolved by the auth middleware, or nil when
// the route ran without it.
func currentUser(c *gin.Context) *authdomain.User {
	value, exists := c.Get(authdelivery.ContextUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*authdomain.User)
	if !ok {
		return nil
	}
	return user
}
