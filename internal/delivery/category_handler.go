package delivery

import (
	"net/http"
	"strconv"

	"category_admin/internal/domain"
	"category_admin/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CategoryHandler struct {
	useCase usecase.CategoryUseCase
	log     *logrus.Logger
}

func NewCategoryHandler(uc usecase.CategoryUseCase, logger *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *CategoryHandler) RegisterRoutes(router gin.IRouter) {
	categories := router.Group("/categories")
	{
		categories.GET("", h.ListCategories)
		categories.POST("", h.CreateCategory)
		categories.POST("/refresh", h.RefreshCategories)
		categories.POST("/validate", h.ValidateCategory)
		categories.GET("/:id", h.GetCategoryByID)
		categories.PUT("/:id", h.UpdateCategory)
		categories.DELETE("/:id", h.DeleteCategory)
	}
}

// logFailure logs rejected input at Warn and everything else at Error.
func (h *CategoryHandler) logFailure(err error, format string, args ...interface{}) {
	if usecase.IsValidationError(err) {
		h.log.Warnf(format, args...)
		return
	}
	h.log.Errorf(format, args...)
}

func parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// ListCategories serves the session collection without a remote round trip.
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories := h.useCase.ListCategories()
	if len(categories) == 0 {
		SuccessResponse(c, http.StatusOK, "No categories found", []domain.Category{})
		return
	}
	SuccessResponse(c, http.StatusOK, "Categories retrieved successfully", categories)
}

func (h *CategoryHandler) RefreshCategories(c *gin.Context) {
	categories, err := h.useCase.LoadCategories(c.Request.Context())
	if err != nil {
		h.log.Errorf("Failed to refresh categories: %v", err)
		FailWithError(c, "Failed to refresh categories", err)
		return
	}

	h.log.Infof("Refreshed %d categories", len(categories))
	SuccessResponse(c, http.StatusOK, "Categories refreshed successfully", categories)
}

// ValidateCategory checks a draft without submitting it. exclude_id names the
// record being edited.
func (h *CategoryHandler) ValidateCategory(c *gin.Context) {
	var input domain.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	excludeID := 0
	if raw := c.Query("exclude_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id < 0 {
			ErrorResponse(c, http.StatusBadRequest, "Invalid exclude_id format")
			return
		}
		excludeID = id
	}

	if err := h.useCase.ValidateCategory(input, excludeID); err != nil {
		FailWithError(c, "Category is invalid", err)
		return
	}
	SuccessResponse(c, http.StatusOK, "Category is valid", nil)
}

func (h *CategoryHandler) GetCategoryByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.log.Warnf("Invalid category ID parameter: %s", c.Param("id"))
		ErrorResponse(c, http.StatusBadRequest, "Invalid category ID format")
		return
	}

	category, err := h.useCase.GetCategory(c.Request.Context(), id)
	if err != nil {
		h.log.Warnf("Failed to get category by ID %d: %v", id, err)
		FailWithError(c, "Failed to retrieve category", err)
		return
	}

	SuccessResponse(c, http.StatusOK, "Category retrieved successfully", category)
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var input domain.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.log.Errorf("Failed to bind JSON for create category: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	created, err := h.useCase.CreateCategory(c.Request.Context(), input)
	if err != nil {
		h.logFailure(err, "Failed to create category '%s': %v", input.Name, err)
		FailWithError(c, "Failed to create category", err)
		return
	}

	h.log.Infof("Category created successfully: ID %d, Name %s", created.ID, created.Name)
	SuccessResponse(c, http.StatusCreated, "Category created successfully", created)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.log.Warnf("Invalid category ID parameter for update: %s", c.Param("id"))
		ErrorResponse(c, http.StatusBadRequest, "Invalid category ID format")
		return
	}

	var input domain.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.log.Errorf("Failed to bind JSON for update category ID %d: %v", id, err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	updated, err := h.useCase.UpdateCategory(c.Request.Context(), id, input)
	if err != nil {
		h.logFailure(err, "Failed to update category ID %d: %v", id, err)
		FailWithError(c, "Failed to update category", err)
		return
	}

	h.log.Infof("Category updated successfully: ID %d", updated.ID)
	SuccessResponse(c, http.StatusOK, "Category updated successfully", updated)
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.log.Warnf("Invalid category ID parameter for delete: %s", c.Param("id"))
		ErrorResponse(c, http.StatusBadRequest, "Invalid category ID format")
		return
	}

	if err := h.useCase.DeleteCategory(c.Request.Context(), id); err != nil {
		h.log.Warnf("Failed to delete category ID %d: %v", id, err)
		FailWithError(c, "Failed to delete category", err)
		return
	}

	h.log.Infof("Category deleted successfully: ID %d", id)
	SuccessResponse(c, http.StatusOK, "Category deleted successfully", nil)
}
