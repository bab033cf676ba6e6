package catalog

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tahaxtrex/Scolay/pkg/db/models"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a catalog repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) ListSchools(ctx context.Context) ([]models.School, error) {
	var schools []models.School
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&schools).Error
	if err != nil {
		return nil, err
	}
	return schools, nil
}

func (r *repository) FindSchool(ctx context.Context, id uuid.UUID) (*models.School, error) {
	var school models.School
	err := r.db.WithContext(ctx).
		Preload("Grades").
		Where("id = ?", id).
		First(&school).Error
	if err != nil {
		return nil, err
	}
	return &school, nil
}

func (r *repository) CreateSchool(ctx context.Context, school *models.School) (*models.School, error) {
	if err := r.db.WithContext(ctx).Create(school).Error; err != nil {
		return nil, err
	}
	return school, nil
}

func (r *repository) UpdateSchool(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&models.School{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *repository) ListGradeLevels(ctx context.Context, schoolID uuid.UUID) ([]models.GradeLevel, error) {
	var grades []models.GradeLevel
	err := r.db.WithContext(ctx).
		Where("school_id = ?", schoolID).
		Order("name ASC").
		Find(&grades).Error
	if err != nil {
		return nil, err
	}
	return grades, nil
}

func (r *repository) FindGradeLevel(ctx context.Context, id uuid.UUID) (*models.GradeLevel, error) {
	var grade models.GradeLevel
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&grade).Error
	if err != nil {
		return nil, err
	}
	return &grade, nil
}

func (r *repository) CreateGradeLevel(ctx context.Context, grade *models.GradeLevel) (*models.GradeLevel, error) {
	if err := r.db.WithContext(ctx).Create(grade).Error; err != nil {
		return nil, err
	}
	return grade, nil
}

func (r *repository) ListSupplyLists(ctx context.Context, gradeLevelID uuid.UUID) ([]models.SupplyList, error) {
	var lists []models.SupplyList
	err := r.db.WithContext(ctx).
		Where("grade_level_id = ?", gradeLevelID).
		Order("academic_year DESC").
		Find(&lists).Error
	if err != nil {
		return nil, err
	}
	return lists, nil
}

func (r *repository) FindSupplyListWithItems(ctx context.Context, id uuid.UUID) (*models.SupplyList, error) {
	var list models.SupplyList
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			// pinned ordering so category grouping is stable across reads
			return db.Order("created_at ASC")
		}).
		Where("id = ?", id).
		First(&list).Error
	if err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *repository) CreateSupplyList(ctx context.Context, list *models.SupplyList) (*models.SupplyList, error) {
	if err := r.db.WithContext(ctx).Create(list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *repository) CreateSupplyListItem(ctx context.Context, item *models.SupplyListItem) (*models.SupplyListItem, error) {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (r *repository) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {
	var suppliers []models.Supplier
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&suppliers).Error
	if err != nil {
		return nil, err
	}
	return suppliers, nil
}

func (r *repository) FindSupplier(ctx context.Context, id uuid.UUID) (*models.Supplier, error) {
	var supplier models.Supplier
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&supplier).Error
	if err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *repository) UpdateSupplier(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&models.Supplier{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *repository) ListProductsBySupplier(ctx context.Context, supplierID uuid.UUID) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).
		Where("supplier_id = ?", supplierID).
		Order("name ASC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *repository) FindProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *repository) FindProducts(ctx context.Context, ids []uuid.UUID) ([]models.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var products []models.Product
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *repository) CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}
