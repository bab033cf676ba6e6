package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tahaxtrex/Scolay/pkg/db/models"
)

// DetailedItem is a supply list entry joined with its product.
type DetailedItem struct {
	ID       uuid.UUID      `json:"id"`
	Quantity int            `json:"quantity"`
	Product  models.Product `json:"product"`
}

// CategoryGroup buckets detailed items under one product category.
// Products without a category land in the "Uncategorized" bucket.
type CategoryGroup struct {
	Category string         `json:"category"`
	Items    []DetailedItem `json:"items"`
}

// SupplyListDetail is the composite view a guardian sees for a grade's
// published list.
type SupplyListDetail struct {
	ID           uuid.UUID       `json:"id"`
	GradeLevelID uuid.UUID       `json:"grade_level_id"`
	GradeName    string          `json:"grade_name,omitempty"`
	SchoolName   string          `json:"school_name,omitempty"`
	AcademicYear string          `json:"academic_year"`
	Groups       []CategoryGroup `json:"groups"`
}

// CreateSchoolInput carries the fields accepted when creating a school.
type CreateSchoolInput struct {
	Name        string
	Address     *string
	Description *string
	LogoURL     *string
}

// UpdateSchoolInput carries the mutable school fields.
type UpdateSchoolInput struct {
	Name        *string
	Address     *string
	Description *string
	LogoURL     *string
}

// CreateGradeLevelInput carries the fields for a new grade level.
type CreateGradeLevelInput struct {
	SchoolID uuid.UUID
	Name     string
}

// CreateSupplyListInput carries the fields for a new supply list.
type CreateSupplyListInput struct {
	GradeLevelID uuid.UUID
	AcademicYear string
}

// CreateSupplyListItemInput attaches a product to a supply list.
type CreateSupplyListItemInput struct {
	SupplyListID uuid.UUID
	ProductID    uuid.UUID
	Quantity     int
}

// UpdateSupplierInput carries the mutable supplier fields.
type UpdateSupplierInput struct {
	Name         *string
	Description  *string
	LogoURL      *string
	ContactEmail *string
	ContactPhone *string
}

// CreateProductInput carries the fields for a new product.
type CreateProductInput struct {
	Name        string
	Description *string
	Price       decimal.Decimal
	ImageURL    *string
	Category    *string
	SupplierID  *uuid.UUID
}
