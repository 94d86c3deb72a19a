package domain

// MasterStatus is the active flag carried by master data records.
type MasterStatus string

const (
	StatusActive   MasterStatus = "active"
	StatusInactive MasterStatus = "inactive"
)

// IsValid reports whether s is active or inactive.
func (s MasterStatus) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

type AssetCategory struct {
	CategoryID  string       `json:"categoryID" db:"category_id"`
	Name        string       `json:"name" db:"name"`
	Description string       `json:"description" db:"description"`
	Status      MasterStatus `json:"status" db:"status"`
	AuditFields
}

type AssetSubcategory struct {
	SubcategoryID string       `json:"subcategoryID" db:"subcategory_id"`
	CategoryID    string       `json:"categoryID" db:"category_id"`
	Name          string       `json:"name" db:"name"`
	Description   string       `json:"description" db:"description"`
	Status        MasterStatus `json:"status" db:"status"`
	AuditFields

	CategoryName string `json:"categoryName,omitempty" db:"category_name"`
}

type Branch struct {
	BranchID string       `json:"branchID" db:"branch_id"`
	Name     string       `json:"name" db:"name"`
	Location string       `json:"location" db:"location"`
	Code     string       `json:"code" db:"code"`
	Status   MasterStatus `json:"status" db:"status"`
	AuditFields
}

type Vendor struct {
	VendorID      string       `json:"vendorID" db:"vendor_id"`
	Name          string       `json:"name" db:"name"`
	ContactPerson string       `json:"contactPerson" db:"contact_person"`
	Email         string       `json:"email" db:"email"`
	Phone         string       `json:"phone" db:"phone"`
	Address       string       `json:"address" db:"address"`
	GSTNumber     string       `json:"gstNumber" db:"gst_number"`
	Status        MasterStatus `json:"status" db:"status"`
	AuditFields
}

type Manufacturer struct {
	ManufacturerID string       `json:"manufacturerID" db:"manufacturer_id"`
	Name           string       `json:"name" db:"name"`
	Description    string       `json:"description" db:"description"`
	Status         MasterStatus `json:"status" db:"status"`
	AuditFields
}

// SubcategoryListParams adds the category filter to subcategory listings.
type SubcategoryListParams struct {
	ListParams
	CategoryID string
}
