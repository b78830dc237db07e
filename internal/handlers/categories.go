package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"taskdeck/internal/store"
)

type CategoryHandler struct {
	categories store.CategoryStore
	tasks      store.TaskStore
}

func NewCategoryHandler(categories store.CategoryStore, tasks store.TaskStore) *CategoryHandler {
	return &CategoryHandler{categories: categories, tasks: tasks}
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categories.GetAll(c.Request.Context())
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	category, err := h.categories.GetByID(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var input struct {
		Name  string `json:"name" binding:"required"`
		Color string `json:"color"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input.Name = strings.TrimSpace(input.Name)
	if len(input.Name) < 2 {
		respondValidation(c, "name", "name must be at least 2 characters")
		return
	}

	category, err := h.categories.Create(c.Request.Context(), store.CategoryDraft{
		Name:  input.Name,
		Color: input.Color,
	})
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input struct {
		Name  *string `json:"name"`
		Color *string `json:"color"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Name != nil {
		trimmed := strings.TrimSpace(*input.Name)
		if len(trimmed) < 2 {
			respondValidation(c, "name", "name must be at least 2 characters")
			return
		}
		input.Name = &trimmed
	}

	category, err := h.categories.Update(c.Request.Context(), id, store.CategoryUpdate{
		Name:  input.Name,
		Color: input.Color,
	})
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// DeleteCategory refuses to delete a category that tasks still reference.
// The store does not enforce this rule, the caller does.
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	tasks, err := h.tasks.GetAll(c.Request.Context())
	if err != nil {
		respondStoreError(c, err)
		return
	}
	inUse := 0
	for _, task := range tasks {
		if task.CategoryID != nil && *task.CategoryID == id {
			inUse++
		}
	}
	if inUse > 0 {
		c.JSON(http.StatusConflict, gin.H{
			"error":     "category is referenced by existing tasks",
			"taskCount": inUse,
		})
		return
	}

	if err := h.categories.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}
