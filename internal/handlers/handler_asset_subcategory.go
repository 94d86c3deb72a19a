package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/SscSPs/grn_tracker/internal/dto"
)

// createAssetSubcategory godoc
// @Summary Create an asset subcategory
// @Tags asset-subcategories
// @Accept json
// @Produce json
// @Param subcategory body dto.CreateAssetSubcategoryRequest true "Subcategory details"
// @Success 201 {object} dto.Response{data=domain.AssetSubcategory}
// @Failure 400 {object} dto.ErrorResponse "Unknown category or invalid fields"
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /asset-subcategories [post]
func (h *assetCategoryHandler) createAssetSubcategory(c *gin.Context) {
	var req dto.CreateAssetSubcategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	sub, err := h.subcategoryService.CreateAssetSubcategory(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Asset subcategory")
		return
	}
	respondCreated(c, sub, "Asset subcategory created successfully")
}

// listAssetSubcategories godoc
// @Summary List asset subcategories
// @Tags asset-subcategories
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param search query string false "Matches name or description"
// @Param status query string false "active or inactive"
// @Param categoryID query string false "Category ID"
// @Success 200 {object} dto.ListResponse{data=[]domain.AssetSubcategory}
// @Security BearerAuth
// @Router /asset-subcategories [get]
func (h *assetCategoryHandler) listAssetSubcategories(c *gin.Context) {
	var query dto.ListSubcategoriesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, err)
		return
	}
	subs, meta, err := h.subcategoryService.ListAssetSubcategories(c.Request.Context(), query)
	if err != nil {
		respondError(c, err, "Asset subcategory")
		return
	}
	respondList(c, subs, meta)
}

// getAssetSubcategory godoc
// @Summary Get an asset subcategory
// @Tags asset-subcategories
// @Produce json
// @Param subcategoryID path string true "Subcategory ID"
// @Success 200 {object} dto.Response{data=domain.AssetSubcategory}
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /asset-subcategories/{subcategoryID} [get]
func (h *assetCategoryHandler) getAssetSubcategory(c *gin.Context) {
	sub, err := h.subcategoryService.GetAssetSubcategoryByID(c.Request.Context(), c.Param("subcategoryID"))
	if err != nil {
		respondError(c, err, "Asset subcategory")
		return
	}
	respondOK(c, sub, "")
}

// updateAssetSubcategory godoc
// @Summary Update an asset subcategory
// @Tags asset-subcategories
// @Accept json
// @Produce json
// @Param subcategoryID path string true "Subcategory ID"
// @Param subcategory body dto.UpdateAssetSubcategoryRequest true "Fields to update"
// @Success 200 {object} dto.Response{data=domain.AssetSubcategory}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /asset-subcategories/{subcategoryID} [put]
func (h *assetCategoryHandler) updateAssetSubcategory(c *gin.Context) {
	var req dto.UpdateAssetSubcategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	sub, err := h.subcategoryService.UpdateAssetSubcategory(c.Request.Context(), c.Param("subcategoryID"), req, userID)
	if err != nil {
		respondError(c, err, "Asset subcategory")
		return
	}
	respondOK(c, sub, "Asset subcategory updated successfully")
}

// deleteAssetSubcategory godoc
// @Summary Delete an asset subcategory
// @Tags asset-subcategories
// @Produce json
// @Param subcategoryID path string true "Subcategory ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /asset-subcategories/{subcategoryID} [delete]
func (h *assetCategoryHandler) deleteAssetSubcategory(c *gin.Context) {
	if err := h.subcategoryService.DeleteAssetSubcategory(c.Request.Context(), c.Param("subcategoryID")); err != nil {
		respondError(c, err, "Asset subcategory")
		return
	}
	respondOK(c, nil, "Asset subcategory deleted successfully")
}
