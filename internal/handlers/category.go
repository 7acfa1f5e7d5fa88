package handlers

import (
	"net/http"

	"github.com/HammerMeetNail/eventplanner/internal/logging"
	"github.com/HammerMeetNail/eventplanner/internal/models"
	"github.com/HammerMeetNail/eventplanner/internal/services"
)

type CategoryHandler struct {
	categoryService services.CategoryServiceInterface
}

func NewCategoryHandler(categoryService services.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

type CategoriesResponse struct {
	Categories []models.Category `json:"categories"`
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryService.List(r.Context())
	if err != nil {
		logging.FromContext(r.Context()).Error("Error listing categories", map[string]interface{}{
			"error": err.Error(),
		})
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, CategoriesResponse{Categories: categories})
}
