package catalog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tahaxtrex/Scolay/pkg/db/models"
)

// Repository defines persistence operations for the catalog tables.
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	ListSchools(ctx context.Context) ([]models.School, error)
	FindSchool(ctx context.Context, id uuid.UUID) (*models.School, error)
	CreateSchool(ctx context.Context, school *models.School) (*models.School, error)
	UpdateSchool(ctx context.Context, id uuid.UUID, updates map[string]any) error

	ListGradeLevels(ctx context.Context, schoolID uuid.UUID) ([]models.GradeLevel, error)
	FindGradeLevel(ctx context.Context, id uuid.UUID) (*models.GradeLevel, error)
	CreateGradeLevel(ctx context.Context, grade *models.GradeLevel) (*models.GradeLevel, error)

	ListSupplyLists(ctx context.Context, gradeLevelID uuid.UUID) ([]models.SupplyList, error)
	FindSupplyListWithItems(ctx context.Context, id uuid.UUID) (*models.SupplyList, error)
	CreateSupplyList(ctx context.Context, list *models.SupplyList) (*models.SupplyList, error)
	CreateSupplyListItem(ctx context.Context, item *models.SupplyListItem) (*models.SupplyListItem, error)

	ListSuppliers(ctx context.Context) ([]models.Supplier, error)
	FindSupplier(ctx context.Context, id uuid.UUID) (*models.Supplier, error)
	UpdateSupplier(ctx context.Context, id uuid.UUID, updates map[string]any) error

	ListProductsBySupplier(ctx context.Context, supplierID uuid.UUID) ([]models.Product, error)
	FindProduct(ctx context.Context, id uuid.UUID) (*models.Product, error)
	FindProducts(ctx context.Context, ids []uuid.UUID) ([]models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error)
}
