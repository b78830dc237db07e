package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"taskdeck/internal/models"
	"taskdeck/internal/services"
	"taskdeck/internal/store"
	"taskdeck/internal/view"
)

type TaskHandler struct {
	tasks store.TaskStore
	now   func() time.Time
}

func NewTaskHandler(tasks store.TaskStore) *TaskHandler {
	return &TaskHandler{tasks: tasks, now: time.Now}
}

// SetNow overrides the clock used for due-date validation and view
// derivation. Test hook.
func (h *TaskHandler) SetNow(now func() time.Time) {
	h.now = now
}

// ListTasks runs the view pipeline over the full collection:
// GET /api/tasks?search=&scope=&priority=&status=&due=&sortBy=&order=
func (h *TaskHandler) ListTasks(c *gin.Context) {
	scope, ok := parseScope(c)
	if !ok {
		return
	}
	filters, ok := parseFilters(c)
	if !ok {
		return
	}
	sortKey, sortOrder, ok := parseSort(c)
	if !ok {
		return
	}

	tasks, err := h.tasks.GetAll(c.Request.Context())
	if err != nil {
		respondStoreError(c, err)
		return
	}

	result := view.BuildView(tasks, c.Query("search"), scope, filters, sortKey, sortOrder, h.now())
	c.JSON(http.StatusOK, gin.H{
		"tasks": result,
		"total": len(result),
	})
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	task, err := h.tasks.GetByID(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var input struct {
		Title       string          `json:"title" binding:"required"`
		Description string          `json:"description"`
		CategoryID  *int64          `json:"categoryId"`
		Priority    models.Priority `json:"priority"`
		DueDate     *time.Time      `json:"dueDate"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		respondValidation(c, "title", "title is required")
		return
	}
	if input.Priority != "" && !input.Priority.Valid() {
		respondValidation(c, "priority", "priority must be low, medium or high")
		return
	}
	if view.Classify(input.DueDate, h.now()) == view.BucketOverdue {
		respondValidation(c, "dueDate", "due date cannot be in the past")
		return
	}

	task, err := h.tasks.Create(c.Request.Context(), store.TaskDraft{
		Title:       input.Title,
		Description: input.Description,
		CategoryID:  input.CategoryID,
		Priority:    input.Priority,
		DueDate:     input.DueDate,
	})
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	// dueDate and categoryId bind as raw JSON so an explicit null (clear
	// the field) is distinguishable from the field being absent (keep it).
	var input struct {
		Title       *string          `json:"title"`
		Description *string          `json:"description"`
		CategoryID  json.RawMessage  `json:"categoryId"`
		Priority    *models.Priority `json:"priority"`
		DueDate     json.RawMessage  `json:"dueDate"`
		Completed   *bool            `json:"completed"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Title != nil {
		trimmed := strings.TrimSpace(*input.Title)
		if trimmed == "" {
			respondValidation(c, "title", "title is required")
			return
		}
		input.Title = &trimmed
	}
	if input.Priority != nil && !input.Priority.Valid() {
		respondValidation(c, "priority", "priority must be low, medium or high")
		return
	}

	upd := store.TaskUpdate{
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		Completed:   input.Completed,
	}
	if len(input.CategoryID) > 0 {
		if isJSONNull(input.CategoryID) {
			upd.ClearCategory = true
		} else {
			var catID int64
			if err := json.Unmarshal(input.CategoryID, &catID); err != nil {
				respondValidation(c, "categoryId", "categoryId must be an integer or null")
				return
			}
			upd.CategoryID = &catID
		}
	}
	if len(input.DueDate) > 0 {
		if isJSONNull(input.DueDate) {
			upd.ClearDueDate = true
		} else {
			var due time.Time
			if err := json.Unmarshal(input.DueDate, &due); err != nil {
				respondValidation(c, "dueDate", "dueDate must be a timestamp or null")
				return
			}
			upd.DueDate = &due
		}
	}

	task, err := h.tasks.Update(c.Request.Context(), id, upd)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.tasks.Delete(c.Request.Context(), id); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusNoContent, nil)
}

func (h *TaskHandler) BulkComplete(c *gin.Context) {
	var input struct {
		IDs       []int64 `json:"ids" binding:"required"`
		Completed bool    `json:"completed"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.tasks.BulkComplete(c.Request.Context(), input.IDs, input.Completed)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": updated})
}

func (h *TaskHandler) BulkDelete(c *gin.Context) {
	var input struct {
		IDs []int64 `json:"ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	count, err := h.tasks.BulkDelete(c.Request.Context(), input.IDs)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": count})
}

func (h *TaskHandler) BulkUpdateCategory(c *gin.Context) {
	var input struct {
		IDs []int64 `json:"ids" binding:"required"`
		// null clears the category.
		CategoryID *int64 `json:"categoryId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.tasks.BulkUpdateCategory(c.Request.Context(), input.IDs, input.CategoryID)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": updated})
}

func (h *TaskHandler) GetStats(c *gin.Context) {
	tasks, err := h.tasks.GetAll(c.Request.Context())
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, services.ComputeStats(tasks, h.now()))
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondValidation(c, "id", "id must be an integer")
		return 0, false
	}
	return id, true
}

// parseScope maps the scope query param onto the tagged variant: "all"
// (or absent), "today", "completed", or a literal category id.
func parseScope(c *gin.Context) (view.Scope, bool) {
	switch raw := c.DefaultQuery("scope", "all"); raw {
	case "all":
		return view.All(), true
	case "today":
		return view.DueToday(), true
	case "completed":
		return view.Completed(), true
	default:
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondValidation(c, "scope", "scope must be all, today, completed or a category id")
			return view.Scope{}, false
		}
		return view.ByCategory(id), true
	}
}

func parseFilters(c *gin.Context) (view.FilterState, bool) {
	var filters view.FilterState

	for _, raw := range splitParam(c.Query("priority")) {
		p := models.Priority(raw)
		if !p.Valid() {
			respondValidation(c, "priority", "unknown priority "+raw)
			return filters, false
		}
		filters.Priority = append(filters.Priority, p)
	}

	for _, raw := range splitParam(c.Query("status")) {
		s := view.Status(raw)
		if s != view.StatusPending && s != view.StatusCompleted {
			respondValidation(c, "status", "unknown status "+raw)
			return filters, false
		}
		filters.Status = append(filters.Status, s)
	}

	for _, raw := range splitParam(c.Query("due")) {
		b := view.Bucket(raw)
		switch b {
		case view.BucketOverdue, view.BucketToday, view.BucketTomorrow, view.BucketThisWeek, view.BucketLater:
			filters.Date = append(filters.Date, b)
		default:
			respondValidation(c, "due", "unknown due bucket "+raw)
			return filters, false
		}
	}

	return filters, true
}

func parseSort(c *gin.Context) (view.SortKey, view.SortOrder, bool) {
	key := view.SortKey(c.DefaultQuery("sortBy", string(view.SortCreatedAt)))
	switch key {
	case view.SortCreatedAt, view.SortTitle, view.SortPriority, view.SortDueDate:
	default:
		respondValidation(c, "sortBy", "unknown sort key")
		return "", "", false
	}

	order := view.SortOrder(c.DefaultQuery("order", string(view.OrderDesc)))
	if order != view.OrderAsc && order != view.OrderDesc {
		respondValidation(c, "order", "order must be asc or desc")
		return "", "", false
	}
	return key, order, true
}

func isJSONNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
