package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/grn_tracker/internal/core/ports/services"
	"github.com/SscSPs/grn_tracker/internal/dto"
	"github.com/SscSPs/grn_tracker/internal/middleware"
)

// vendorHandler handles HTTP requests related to vendors.
type vendorHandler struct {
	vendorService portssvc.VendorSvc
}

func newVendorHandler(vendorService portssvc.VendorSvc) *vendorHandler {
	return &vendorHandler{vendorService: vendorService}
}

// createVendor godoc
// @Summary Create a vendor
// @Tags vendors
// @Accept json
// @Produce json
// @Param vendor body dto.CreateVendorRequest true "Vendor details"
// @Success 201 {object} dto.Response{data=domain.Vendor}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /vendors [post]
func (h *vendorHandler) createVendor(c *gin.Context) {
	var req dto.CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	vendor, err := h.vendorService.CreateVendor(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Vendor")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Vendor created", slog.String("vendor_id", vendor.VendorID))
	respondCreated(c, vendor, "Vendor created successfully")
}

// listVendors godoc
// @Summary List vendors
// @Tags vendors
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param search query string false "Matches name, contact person or email"
// @Param status query string false "active or inactive"
// @Success 200 {object} dto.ListResponse{data=[]domain.Vendor}
// @Security BearerAuth
// @Router /vendors [get]
func (h *vendorHandler) listVendors(c *gin.Context) {
	var query dto.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, err)
		return
	}
	vendors, meta, err := h.vendorService.ListVendors(c.Request.Context(), query)
	if err != nil {
		respondError(c, err, "Vendor")
		return
	}
	respondList(c, vendors, meta)
}

// getVendor godoc
// @Summary Get a vendor
// @Tags vendors
// @Produce json
// @Param vendorID path string true "Vendor ID"
// @Success 200 {object} dto.Response{data=domain.Vendor}
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /vendors/{vendorID} [get]
func (h *vendorHandler) getVendor(c *gin.Context) {
	vendor, err := h.vendorService.GetVendorByID(c.Request.Context(), c.Param("vendorID"))
	if err != nil {
		respondError(c, err, "Vendor")
		return
	}
	respondOK(c, vendor, "")
}

// updateVendor godoc
// @Summary Update a vendor
// @Tags vendors
// @Accept json
// @Produce json
// @Param vendorID path string true "Vendor ID"
// @Param vendor body dto.UpdateVendorRequest true "Fields to update"
// @Success 200 {object} dto.Response{data=domain.Vendor}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /vendors/{vendorID} [put]
func (h *vendorHandler) updateVendor(c *gin.Context) {
	var req dto.UpdateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	vendor, err := h.vendorService.UpdateVendor(c.Request.Context(), c.Param("vendorID"), req, userID)
	if err != nil {
		respondError(c, err, "Vendor")
		return
	}
	respondOK(c, vendor, "Vendor updated successfully")
}

// deleteVendor godoc
// @Summary Delete a vendor
// @Description Fails with 409 while GRNs still reference the vendor
// @Tags vendors
// @Produce json
// @Param vendorID path string true "Vendor ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /vendors/{vendorID} [delete]
func (h *vendorHandler) deleteVendor(c *gin.Context) {
	if err := h.vendorService.DeleteVendor(c.Request.Context(), c.Param("vendorID")); err != nil {
		respondError(c, err, "Vendor")
		return
	}
	respondOK(c, nil, "Vendor deleted successfully")
}

func registerVendorRoutes(rg *gin.RouterGroup, vendorSvc portssvc.VendorSvc) {
	h := newVendorHandler(vendorSvc)

	vendors := rg.Group("/vendors")
	{
		vendors.GET("", h.listVendors)
		vendors.POST("", h.createVendor)
		vendors.GET("/:vendorID", h.getVendor)
		vendors.PUT("/:vendorID", h.updateVendor)
		vendors.DELETE("/:vendorID", h.deleteVendor)
	}
}
