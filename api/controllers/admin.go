package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tahaxtrex/Scolay/api/responses"
	"github.com/tahaxtrex/Scolay/api/validators"
	"github.com/tahaxtrex/Scolay/internal/catalog"
	pkgerrors "github.com/tahaxtrex/Scolay/pkg/errors"
	"github.com/tahaxtrex/Scolay/pkg/logger"
)

type createSchoolRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Address     *string `json:"address,omitempty" validate:"omitempty,max=500"`
	Description *string `json:"description,omitempty"`
	LogoURL     *string `json:"logo_url,omitempty" validate:"omitempty,url"`
}

type updateSchoolRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,max=200"`
	Address     *string `json:"address,omitempty" validate:"omitempty,max=500"`
	Description *string `json:"description,omitempty"`
	LogoURL     *string `json:"logo_url,omitempty" validate:"omitempty,url"`
}

type createGradeLevelRequest struct {
	SchoolID uuid.UUID `json:"school_id" validate:"required"`
	Name     string    `json:"name" validate:"required,max=100"`
}

type createSupplyListRequest struct {
	GradeLevelID uuid.UUID `json:"grade_level_id" validate:"required"`
	AcademicYear string    `json:"academic_year" validate:"required,max=20"`
}

type createSupplyListItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity,omitempty"`
}

type updateSupplierRequest struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,max=200"`
	Description  *string `json:"description,omitempty"`
	LogoURL      *string `json:"logo_url,omitempty" validate:"omitempty,url"`
	ContactEmail *string `json:"contact_email,omitempty" validate:"omitempty,email"`
	ContactPhone *string `json:"contact_phone,omitempty" validate:"omitempty,max=40"`
}

type createProductRequest struct {
	Name        string     `json:"name" validate:"required,max=200"`
	Description *string    `json:"description,omitempty"`
	Price       string     `json:"price" validate:"required"`
	ImageURL    *string    `json:"image_url,omitempty" validate:"omitempty,url"`
	Category    *string    `json:"category,omitempty" validate:"omitempty,max=100"`
	SupplierID  *uuid.UUID `json:"supplier_id,omitempty"`
}

func CreateSchool(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createSchoolRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		school, err := svc.CreateSchool(r.Context(), catalog.CreateSchoolInput{
			Name:        req.Name,
			Address:     req.Address,
			Description: req.Description,
			LogoURL:     req.LogoURL,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, school)
	}
}

func UpdateSchool(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		schoolID, err := validators.ParsePathUUID(chi.URLParam(r, "schoolId"), "schoolId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req updateSchoolRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		school, err := svc.UpdateSchool(r.Context(), schoolID, catalog.UpdateSchoolInput{
			Name:        req.Name,
			Address:     req.Address,
			Description: req.Description,
			LogoURL:     req.LogoURL,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, school)
	}
}

func CreateGradeLevel(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createGradeLevelRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		grade, err := svc.CreateGradeLevel(r.Context(), catalog.CreateGradeLevelInput{
			SchoolID: req.SchoolID,
			Name:     req.Name,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, grade)
	}
}

func CreateSupplyList(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createSupplyListRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list, err := svc.CreateSupplyList(r.Context(), catalog.CreateSupplyListInput{
			GradeLevelID: req.GradeLevelID,
			AcademicYear: req.AcademicYear,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, list)
	}
}

func CreateSupplyListItem(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listID, err := validators.ParsePathUUID(chi.URLParam(r, "listId"), "listId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req createSupplyListItemRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.CreateSupplyListItem(r.Context(), catalog.CreateSupplyListItemInput{
			SupplyListID: listID,
			ProductID:    req.ProductID,
			Quantity:     req.Quantity,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, item)
	}
}

func UpdateSupplier(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		supplierID, err := validators.ParsePathUUID(chi.URLParam(r, "supplierId"), "supplierId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var req updateSupplierRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		supplier, err := svc.UpdateSupplier(r.Context(), supplierID, catalog.UpdateSupplierInput{
			Name:         req.Name,
			Description:  req.Description,
			LogoURL:      req.LogoURL,
			ContactEmail: req.ContactEmail,
			ContactPhone: req.ContactPhone,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, supplier)
	}
}

func CreateProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createProductRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		price, err := decimal.NewFromString(req.Price)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "price must be a decimal number"))
			return
		}

		product, err := svc.CreateProduct(r.Context(), catalog.CreateProductInput{
			Name:        req.Name,
			Description: req.Description,
			Price:       price,
			ImageURL:    req.ImageURL,
			Category:    req.Category,
			SupplierID:  req.SupplierID,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, product)
	}
}
