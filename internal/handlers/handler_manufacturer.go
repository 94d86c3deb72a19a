package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/grn_tracker/internal/core/ports/services"
	"github.com/SscSPs/grn_tracker/internal/dto"
)

type manufacturerHandler struct {
	manufacturerService portssvc.ManufacturerSvc
}

// createManufacturer godoc
// @Summary Create a manufacturer
// @Tags manufacturers
// @Accept json
// @Produce json
// @Param manufacturer body dto.CreateManufacturerRequest true "Manufacturer details"
// @Success 201 {object} dto.Response{data=domain.Manufacturer}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /manufacturers [post]
func (h *manufacturerHandler) createManufacturer(c *gin.Context) {
	var req dto.CreateManufacturerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	m, err := h.manufacturerService.CreateManufacturer(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Manufacturer")
		return
	}
	respondCreated(c, m, "Manufacturer created successfully")
}

// listManufacturers godoc
// @Summary List manufacturers
// @Tags manufacturers
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param search query string false "Matches name or description"
// @Param status query string false "active or inactive"
// @Success 200 {object} dto.ListResponse{data=[]domain.Manufacturer}
// @Security BearerAuth
// @Router /manufacturers [get]
func (h *manufacturerHandler) listManufacturers(c *gin.Context) {
	var query dto.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, err)
		return
	}
	list, meta, err := h.manufacturerService.ListManufacturers(c.Request.Context(), query)
	if err != nil {
		respondError(c, err, "Manufacturer")
		return
	}
	respondList(c, list, meta)
}

// getManufacturer godoc
// @Summary Get a manufacturer
// @Tags manufacturers
// @Produce json
// @Param manufacturerID path string true "Manufacturer ID"
// @Success 200 {object} dto.Response{data=domain.Manufacturer}
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /manufacturers/{manufacturerID} [get]
func (h *manufacturerHandler) getManufacturer(c *gin.Context) {
	m, err := h.manufacturerService.GetManufacturerByID(c.Request.Context(), c.Param("manufacturerID"))
	if err != nil {
		respondError(c, err, "Manufacturer")
		return
	}
	respondOK(c, m, "")
}

// updateManufacturer godoc
// @Summary Update a manufacturer
// @Tags manufacturers
// @Accept json
// @Produce json
// @Param manufacturerID path string true "Manufacturer ID"
// @Param manufacturer body dto.UpdateManufacturerRequest true "Fields to update"
// @Success 200 {object} dto.Response{data=domain.Manufacturer}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /manufacturers/{manufacturerID} [put]
func (h *manufacturerHandler) updateManufacturer(c *gin.Context) {
	var req dto.UpdateManufacturerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	m, err := h.manufacturerService.UpdateManufacturer(c.Request.Context(), c.Param("manufacturerID"), req, userID)
	if err != nil {
		respondError(c, err, "Manufacturer")
		return
	}
	respondOK(c, m, "Manufacturer updated successfully")
}

// deleteManufacturer godoc
// @Summary Delete a manufacturer
// @Tags manufacturers
// @Produce json
// @Param manufacturerID path string true "Manufacturer ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /manufacturers/{manufacturerID} [delete]
func (h *manufacturerHandler) deleteManufacturer(c *gin.Context) {
	if err := h.manufacturerService.DeleteManufacturer(c.Request.Context(), c.Param("manufacturerID")); err != nil {
		respondError(c, err, "Manufacturer")
		return
	}
	respondOK(c, nil, "Manufacturer deleted successfully")
}

func registerManufacturerRoutes(rg *gin.RouterGroup, svc portssvc.ManufacturerSvc) {
	h := &manufacturerHandler{manufacturerService: svc}

	manufacturers := rg.Group("/manufacturers")
	{
		manufacturers.GET("", h.listManufacturers)
		manufacturers.POST("", h.createManufacturer)
		manufacturers.GET("/:manufacturerID", h.getManufacturer)
		manufacturers.PUT("/:manufacturerID", h.updateManufacturer)
		manufacturers.DELETE("/:manufacturerID", h.deleteManufacturer)
	}
}
