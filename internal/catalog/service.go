package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tahaxtrex/Scolay/pkg/db/models"
	pkgerrors "github.com/tahaxtrex/Scolay/pkg/errors"
)

const uncategorizedBucket = "Uncategorized"

// Service exposes catalog browsing plus the portal mutations used by
// school and supplier admins.
type Service interface {
	ListSchools(ctx context.Context) ([]models.School, error)
	GetSchool(ctx context.Context, id uuid.UUID) (*models.School, error)
	CreateSchool(ctx context.Context, input CreateSchoolInput) (*models.School, error)
	UpdateSchool(ctx context.Context, id uuid.UUID, input UpdateSchoolInput) (*models.School, error)

	ListGradeLevels(ctx context.Context, schoolID uuid.UUID) ([]models.GradeLevel, error)
	CreateGradeLevel(ctx context.Context, input CreateGradeLevelInput) (*models.GradeLevel, error)

	ListSupplyLists(ctx context.Context, gradeLevelID uuid.UUID) ([]models.SupplyList, error)
	GetSupplyListDetail(ctx context.Context, id uuid.UUID) (*SupplyListDetail, error)
	CreateSupplyList(ctx context.Context, input CreateSupplyListInput) (*models.SupplyList, error)
	CreateSupplyListItem(ctx context.Context, input CreateSupplyListItemInput) (*models.SupplyListItem, error)

	ListSuppliers(ctx context.Context) ([]models.Supplier, error)
	GetSupplier(ctx context.Context, id uuid.UUID) (*models.Supplier, error)
	UpdateSupplier(ctx context.Context, id uuid.UUID, input UpdateSupplierInput) (*models.Supplier, error)

	ListProductsBySupplier(ctx context.Context, supplierID uuid.UUID) ([]models.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error)
	CreateProduct(ctx context.Context, input CreateProductInput) (*models.Product, error)
}

type service struct {
	repo Repository
}

// NewService wires the catalog service with its repository.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListSchools(ctx context.Context) ([]models.School, error) {
	schools, err := s.repo.ListSchools(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing schools")
	}
	return schools, nil
}

func (s *service) GetSchool(ctx context.Context, id uuid.UUID) (*models.School, error) {
	school, err := s.repo.FindSchool(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "school not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "finding school")
	}
	return school, nil
}

func (s *service) CreateSchool(ctx context.Context, input CreateSchoolInput) (*models.School, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "school name is required")
	}
	school := &models.School{
		Name:        name,
		Address:     input.Address,
		Description: input.Description,
		LogoURL:     input.LogoURL,
	}
	created, err := s.repo.CreateSchool(ctx, school)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating school")
	}
	return created, nil
}

func (s *service) UpdateSchool(ctx context.Context, id uuid.UUID, input UpdateSchoolInput) (*models.School, error) {
	updates := map[string]any{}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "school name cannot be blank")
		}
		updates["name"] = name
	}
	if input.Address != nil {
		updates["address"] = *input.Address
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.LogoURL != nil {
		updates["logo_url"] = *input.LogoURL
	}
	if len(updates) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "no updatable fields provided")
	}

	if _, err := s.GetSchool(ctx, id); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateSchool(ctx, id, updates); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating school")
	}
	return s.GetSchool(ctx, id)
}

func (s *service) ListGradeLevels(ctx context.Context, schoolID uuid.UUID) ([]models.GradeLevel, error) {
	grades, err := s.repo.ListGradeLevels(ctx, schoolID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing grade levels")
	}
	return grades, nil
}

func (s *service) CreateGradeLevel(ctx context.Context, input CreateGradeLevelInput) (*models.GradeLevel, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "grade level name is required")
	}
	if input.SchoolID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "school id is required")
	}
	if _, err := s.GetSchool(ctx, input.SchoolID); err != nil {
		return nil, err
	}

	grade := &models.GradeLevel{SchoolID: input.SchoolID, Name: name}
	created, err := s.repo.CreateGradeLevel(ctx, grade)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating grade level")
	}
	return created, nil
}

func (s *service) ListSupplyLists(ctx context.Context, gradeLevelID uuid.UUID) ([]models.SupplyList, error) {
	lists, err := s.repo.ListSupplyLists(ctx, gradeLevelID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing supply lists")
	}
	return lists, nil
}

// GetSupplyListDetail returns the list joined with its products,
// bucketed by product category in first-seen order.
func (s *service) GetSupplyListDetail(ctx context.Context, id uuid.UUID) (*SupplyListDetail, error) {
	list, err := s.repo.FindSupplyListWithItems(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "supply list not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "finding supply list")
	}

	detail := &SupplyListDetail{
		ID:           list.ID,
		GradeLevelID: list.GradeLevelID,
		AcademicYear: list.AcademicYear,
	}

	// grade and school names are display context; a broken reference
	// blanks them instead of failing the whole page
	if grade, gradeErr := s.repo.FindGradeLevel(ctx, list.GradeLevelID); gradeErr == nil {
		detail.GradeName = grade.Name
		if school, schoolErr := s.repo.FindSchool(ctx, grade.SchoolID); schoolErr == nil {
			detail.SchoolName = school.Name
		}
	}

	productIDs := make([]uuid.UUID, 0, len(list.Items))
	for _, item := range list.Items {
		productIDs = append(productIDs, item.ProductID)
	}
	products, err := s.repo.FindProducts(ctx, productIDs)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading list products")
	}
	productsByID := make(map[uuid.UUID]models.Product, len(products))
	for _, product := range products {
		productsByID[product.ID] = product
	}

	groupIndex := map[string]int{}
	for _, item := range list.Items {
		product, ok := productsByID[item.ProductID]
		if !ok {
			// dangling product reference, skip rather than fail the page
			continue
		}
		category := uncategorizedBucket
		if product.Category != nil && strings.TrimSpace(*product.Category) != "" {
			category = *product.Category
		}

		detailed := DetailedItem{
			ID:       item.ID,
			Quantity: item.Quantity,
			Product:  product,
		}

		idx, ok := groupIndex[category]
		if !ok {
			idx = len(detail.Groups)
			groupIndex[category] = idx
			detail.Groups = append(detail.Groups, CategoryGroup{Category: category})
		}
		detail.Groups[idx].Items = append(detail.Groups[idx].Items, detailed)
	}

	return detail, nil
}

func (s *service) CreateSupplyList(ctx context.Context, input CreateSupplyListInput) (*models.SupplyList, error) {
	if input.GradeLevelID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "grade level id is required")
	}
	year := strings.TrimSpace(input.AcademicYear)
	if year == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "academic year is required")
	}

	list := &models.SupplyList{GradeLevelID: input.GradeLevelID, AcademicYear: year}
	created, err := s.repo.CreateSupplyList(ctx, list)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating supply list")
	}
	return created, nil
}

func (s *service) CreateSupplyListItem(ctx context.Context, input CreateSupplyListItemInput) (*models.SupplyListItem, error) {
	if input.SupplyListID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "supply list id is required")
	}
	if input.ProductID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if _, err := s.GetProduct(ctx, input.ProductID); err != nil {
		return nil, err
	}

	quantity := input.Quantity
	if quantity < 1 {
		quantity = 1
	}

	item := &models.SupplyListItem{
		SupplyListID: input.SupplyListID,
		ProductID:    input.ProductID,
		Quantity:     quantity,
	}
	created, err := s.repo.CreateSupplyListItem(ctx, item)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating supply list item")
	}
	return created, nil
}

func (s *service) ListSuppliers(ctx context.Context) ([]models.Supplier, error) {
	suppliers, err := s.repo.ListSuppliers(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing suppliers")
	}
	return suppliers, nil
}

func (s *service) GetSupplier(ctx context.Context, id uuid.UUID) (*models.Supplier, error) {
	return s.findSupplier(ctx, id)
}

func (s *service) UpdateSupplier(ctx context.Context, id uuid.UUID, input UpdateSupplierInput) (*models.Supplier, error) {
	updates := map[string]any{}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "supplier name cannot be blank")
		}
		updates["name"] = name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.LogoURL != nil {
		updates["logo_url"] = *input.LogoURL
	}
	if input.ContactEmail != nil {
		updates["contact_email"] = *input.ContactEmail
	}
	if input.ContactPhone != nil {
		updates["contact_phone"] = *input.ContactPhone
	}
	if len(updates) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "no updatable fields provided")
	}

	if _, err := s.findSupplier(ctx, id); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateSupplier(ctx, id, updates); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating supplier")
	}
	return s.findSupplier(ctx, id)
}

func (s *service) findSupplier(ctx context.Context, id uuid.UUID) (*models.Supplier, error) {
	supplier, err := s.repo.FindSupplier(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "supplier not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "finding supplier")
	}
	return supplier, nil
}

func (s *service) ListProductsBySupplier(ctx context.Context, supplierID uuid.UUID) ([]models.Product, error) {
	products, err := s.repo.ListProductsBySupplier(ctx, supplierID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing products")
	}
	return products, nil
}

func (s *service) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.repo.FindProduct(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "finding product")
	}
	return product, nil
}

func (s *service) CreateProduct(ctx context.Context, input CreateProductInput) (*models.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product name is required")
	}
	if input.Price.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product price cannot be negative")
	}

	product := &models.Product{
		Name:        name,
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		Category:    input.Category,
		SupplierID:  input.SupplierID,
	}
	created, err := s.repo.CreateProduct(ctx, product)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating product")
	}
	return created, nil
}
