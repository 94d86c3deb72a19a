package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/grn_tracker/internal/apperrors"
	portssvc "github.com/SscSPs/grn_tracker/internal/core/ports/services"
	"github.com/SscSPs/grn_tracker/internal/dto"
	"github.com/SscSPs/grn_tracker/internal/middleware"
)

// maxImportFileSize bounds uploaded category workbooks.
const maxImportFileSize = 5 << 20

type assetCategoryHandler struct {
	categoryService    portssvc.AssetCategorySvc
	subcategoryService portssvc.AssetSubcategorySvc
}

// createAssetCategory godoc
// @Summary Create an asset category
// @Tags asset-categories
// @Accept json
// @Produce json
// @Param category body dto.CreateAssetCategoryRequest true "Category details"
// @Success 201 {object} dto.Response{data=domain.AssetCategory}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Category name already exists"
// @Security BearerAuth
// @Router /asset-categories [post]
func (h *assetCategoryHandler) createAssetCategory(c *gin.Context) {
	var req dto.CreateAssetCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	category, err := h.categoryService.CreateAssetCategory(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Asset category")
		return
	}
	respondCreated(c, category, "Asset category created successfully")
}

// listAssetCategories godoc
// @Summary List asset categories
// @Tags asset-categories
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param search query string false "Matches name or description"
// @Param status query string false "active or inactive"
// @Success 200 {object} dto.ListResponse{data=[]domain.AssetCategory}
// @Security BearerAuth
// @Router /asset-categories [get]
func (h *assetCategoryHandler) listAssetCategories(c *gin.Context) {
	var query dto.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, err)
		return
	}
	categories, meta, err := h.categoryService.ListAssetCategories(c.Request.Context(), query)
	if err != nil {
		respondError(c, err, "Asset category")
		return
	}
	respondList(c, categories, meta)
}

// getAssetCategory godoc
// @Summary Get an asset category
// @Tags asset-categories
// @Produce json
// @Param categoryID path string true "Category ID"
// @Success 200 {object} dto.Response{data=domain.AssetCategory}
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /asset-categories/{categoryID} [get]
func (h *assetCategoryHandler) getAssetCategory(c *gin.Context) {
	category, err := h.categoryService.GetAssetCategoryByID(c.Request.Context(), c.Param("categoryID"))
	if err != nil {
		respondError(c, err, "Asset category")
		return
	}
	respondOK(c, category, "")
}

// updateAssetCategory godoc
// @Summary Update an asset category
// @Tags asset-categories
// @Accept json
// @Produce json
// @Param categoryID path string true "Category ID"
// @Param category body dto.UpdateAssetCategoryRequest true "Fields to update"
// @Success 200 {object} dto.Response{data=domain.AssetCategory}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /asset-categories/{categoryID} [put]
func (h *assetCategoryHandler) updateAssetCategory(c *gin.Context) {
	var req dto.UpdateAssetCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	category, err := h.categoryService.UpdateAssetCategory(c.Request.Context(), c.Param("categoryID"), req, userID)
	if err != nil {
		respondError(c, err, "Asset category")
		return
	}
	respondOK(c, category, "Asset category updated successfully")
}

// deleteAssetCategory godoc
// @Summary Delete an asset category
// @Description Fails with 409 while subcategories still reference the category
// @Tags asset-categories
// @Produce json
// @Param categoryID path string true "Category ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /asset-categories/{categoryID} [delete]
func (h *assetCategoryHandler) deleteAssetCategory(c *gin.Context) {
	if err := h.categoryService.DeleteAssetCategory(c.Request.Context(), c.Param("categoryID")); err != nil {
		respondError(c, err, "Asset category")
		return
	}
	respondOK(c, nil, "Asset category deleted successfully")
}

// exportAssetCategories godoc
// @Summary Export asset categories
// @Tags asset-categories
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /asset-categories/export/excel [get]
func (h *assetCategoryHandler) exportAssetCategories(c *gin.Context) {
	content, fileName, err := h.categoryService.ExportAssetCategories(c.Request.Context())
	if err != nil {
		respondError(c, err, "Asset category")
		return
	}
	sendWorkbook(c, content, fileName)
}

// importAssetCategories godoc
// @Summary Import asset categories
// @Description Creates one category per row of the first sheet. Either every row is imported or none is.
// @Tags asset-categories
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Workbook (.xlsx)"
// @Success 201 {object} dto.Response{data=dto.ImportResult}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /asset-categories/import/excel [post]
func (h *assetCategoryHandler) importAssetCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondMessage(c, http.StatusBadRequest, "A workbook must be uploaded in the 'file' field")
		return
	}
	if !strings.EqualFold(filepath.Ext(fileHeader.Filename), ".xlsx") {
		respondMessage(c, http.StatusBadRequest, "Only .xlsx files are supported")
		return
	}
	if fileHeader.Size > maxImportFileSize {
		respondMessage(c, http.StatusBadRequest, fmt.Sprintf("File exceeds the %d MB limit", maxImportFileSize>>20))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, fmt.Errorf("%w: open upload: %v", apperrors.ErrValidation, err), "Asset category")
		return
	}
	defer file.Close()

	imported, err := h.categoryService.ImportAssetCategories(c.Request.Context(), file, userID)
	if err != nil {
		respondError(c, err, "Asset category")
		return
	}

	logger.Info("Asset categories imported", slog.Int("count", imported), slog.String("file_name", fileHeader.Filename))
	respondCreated(c, dto.ImportResult{Imported: imported}, fmt.Sprintf("%d asset categories imported", imported))
}

func registerAssetCategoryRoutes(rg *gin.RouterGroup, categorySvc portssvc.AssetCategorySvc, subcategorySvc portssvc.AssetSubcategorySvc) {
	h := &assetCategoryHandler{categoryService: categorySvc, subcategoryService: subcategorySvc}

	categories := rg.Group("/asset-categories")
	{
		categories.GET("", h.listAssetCategories)
		categories.POST("", h.createAssetCategory)
		categories.GET("/export/excel", h.exportAssetCategories)
		categories.POST("/import/excel", h.importAssetCategories)
		categories.GET("/:categoryID", h.getAssetCategory)
		categories.PUT("/:categoryID", h.updateAssetCategory)
		categories.DELETE("/:categoryID", h.deleteAssetCategory)
	}

	subcategories := rg.Group("/asset-subcategories")
	{
		subcategories.GET("", h.listAssetSubcategories)
		subcategories.POST("", h.createAssetSubcategory)
		subcategories.GET("/:subcategoryID", h.getAssetSubcategory)
		subcategories.PUT("/:subcategoryID", h.updateAssetSubcategory)
		subcategories.DELETE("/:subcategoryID", h.deleteAssetSubcategory)
	}
}
