package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tahaxtrex/Scolay/api/responses"
	"github.com/tahaxtrex/Scolay/api/validators"
	"github.com/tahaxtrex/Scolay/internal/catalog"
	"github.com/tahaxtrex/Scolay/pkg/logger"
)

func ListSchools(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		schools, err := svc.ListSchools(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, schools)
	}
}

func GetSchool(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		schoolID, err := validators.ParsePathUUID(chi.URLParam(r, "schoolId"), "schoolId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		school, err := svc.GetSchool(r.Context(), schoolID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, school)
	}
}

func ListGradeLevels(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		schoolID, err := validators.ParsePathUUID(chi.URLParam(r, "schoolId"), "schoolId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		grades, err := svc.ListGradeLevels(r.Context(), schoolID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, grades)
	}
}

func ListSupplyLists(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gradeLevelID, err := validators.ParsePathUUID(chi.URLParam(r, "gradeLevelId"), "gradeLevelId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		lists, err := svc.ListSupplyLists(r.Context(), gradeLevelID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, lists)
	}
}

// SupplyListDetail returns the composite list view with items grouped by
// product category.
func SupplyListDetail(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listID, err := validators.ParsePathUUID(chi.URLParam(r, "listId"), "listId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		detail, err := svc.GetSupplyListDetail(r.Context(), listID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, detail)
	}
}
