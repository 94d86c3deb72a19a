package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/grn_tracker/internal/core/ports/services"
	"github.com/SscSPs/grn_tracker/internal/dto"
)

type branchHandler struct {
	branchService portssvc.BranchSvc
}

// createBranch godoc
// @Summary Create a branch
// @Tags branches
// @Accept json
// @Produce json
// @Param branch body dto.CreateBranchRequest true "Branch details"
// @Success 201 {object} dto.Response{data=domain.Branch}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Branch code already exists"
// @Security BearerAuth
// @Router /branches [post]
func (h *branchHandler) createBranch(c *gin.Context) {
	var req dto.CreateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	branch, err := h.branchService.CreateBranch(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Branch")
		return
	}
	respondCreated(c, branch, "Branch created successfully")
}

// listBranches godoc
// @Summary List branches
// @Tags branches
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param search query string false "Matches name, location or code"
// @Param status query string false "active or inactive"
// @Success 200 {object} dto.ListResponse{data=[]domain.Branch}
// @Security BearerAuth
// @Router /branches [get]
func (h *branchHandler) listBranches(c *gin.Context) {
	var query dto.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, err)
		return
	}
	branches, meta, err := h.branchService.ListBranches(c.Request.Context(), query)
	if err != nil {
		respondError(c, err, "Branch")
		return
	}
	respondList(c, branches, meta)
}

// getBranch godoc
// @Summary Get a branch
// @Tags branches
// @Produce json
// @Param branchID path string true "Branch ID"
// @Success 200 {object} dto.Response{data=domain.Branch}
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /branches/{branchID} [get]
func (h *branchHandler) getBranch(c *gin.Context) {
	branch, err := h.branchService.GetBranchByID(c.Request.Context(), c.Param("branchID"))
	if err != nil {
		respondError(c, err, "Branch")
		return
	}
	respondOK(c, branch, "")
}

// updateBranch godoc
// @Summary Update a branch
// @Tags branches
// @Accept json
// @Produce json
// @Param branchID path string true "Branch ID"
// @Param branch body dto.UpdateBranchRequest true "Fields to update"
// @Success 200 {object} dto.Response{data=domain.Branch}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /branches/{branchID} [put]
func (h *branchHandler) updateBranch(c *gin.Context) {
	var req dto.UpdateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	branch, err := h.branchService.UpdateBranch(c.Request.Context(), c.Param("branchID"), req, userID)
	if err != nil {
		respondError(c, err, "Branch")
		return
	}
	respondOK(c, branch, "Branch updated successfully")
}

// deleteBranch godoc
// @Summary Delete a branch
// @Tags branches
// @Produce json
// @Param branchID path string true "Branch ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /branches/{branchID} [delete]
func (h *branchHandler) deleteBranch(c *gin.Context) {
	if err := h.branchService.DeleteBranch(c.Request.Context(), c.Param("branchID")); err != nil {
		respondError(c, err, "Branch")
		return
	}
	respondOK(c, nil, "Branch deleted successfully")
}

func registerBranchRoutes(rg *gin.RouterGroup, branchSvc portssvc.BranchSvc) {
	h := &branchHandler{branchService: branchSvc}

	branches := rg.Group("/branches")
	{
		branches.GET("", h.listBranches)
		branches.POST("", h.createBranch)
		branches.GET("/:branchID", h.getBranch)
		branches.PUT("/:branchID", h.updateBranch)
		branches.DELETE("/:branchID", h.deleteBranch)
	}
}
