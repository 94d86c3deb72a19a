package dto

// Master data records are returned as their domain types; only requests need DTOs.

type CreateAssetCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
	Status      string `json:"status" binding:"omitempty,oneof=active inactive"`
}

type UpdateAssetCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	Status      *string `json:"status" binding:"omitempty,oneof=active inactive"`
}

type CreateAssetSubcategoryRequest struct {
	CategoryID  string `json:"categoryID" binding:"required"`
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
	Status      string `json:"status" binding:"omitempty,oneof=active inactive"`
}

type UpdateAssetSubcategoryRequest struct {
	CategoryID  *string `json:"categoryID" binding:"omitempty,min=1"`
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	Status      *string `json:"status" binding:"omitempty,oneof=active inactive"`
}

// ListSubcategoriesQuery adds the category filter to the shared list query.
type ListSubcategoriesQuery struct {
	ListQuery
	CategoryID string `form:"categoryID"`
}

type CreateBranchRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Location string `json:"location" binding:"required,max=200"`
	Code     string `json:"code" binding:"required,max=20"`
	Status   string `json:"status" binding:"omitempty,oneof=active inactive"`
}

type UpdateBranchRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=100"`
	Location *string `json:"location" binding:"omitempty,min=1,max=200"`
	Code     *string `json:"code" binding:"omitempty,min=1,max=20"`
	Status   *string `json:"status" binding:"omitempty,oneof=active inactive"`
}

type CreateVendorRequest struct {
	Name          string `json:"name" binding:"required,max=100"`
	ContactPerson string `json:"contactPerson" binding:"required,max=100"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone" binding:"required,max=20"`
	Address       string `json:"address" binding:"required,max=500"`
	GSTNumber     string `json:"gstNumber" binding:"max=20"`
	Status        string `json:"status" binding:"omitempty,oneof=active inactive"`
}

type UpdateVendorRequest struct {
	Name          *string `json:"name" binding:"omitempty,min=1,max=100"`
	ContactPerson *string `json:"contactPerson" binding:"omitempty,min=1,max=100"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Phone         *string `json:"phone" binding:"omitempty,min=1,max=20"`
	Address       *string `json:"address" binding:"omitempty,min=1,max=500"`
	GSTNumber     *string `json:"gstNumber" binding:"omitempty,max=20"`
	Status        *string `json:"status" binding:"omitempty,oneof=active inactive"`
}

type CreateManufacturerRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
	Status      string `json:"status" binding:"omitempty,oneof=active inactive"`
}

type UpdateManufacturerRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	Status      *string `json:"status" binding:"omitempty,oneof=active inactive"`
}

// ImportResult reports how many categories an Excel import created.
type ImportResult struct {
	Imported int `json:"imported"`
}
