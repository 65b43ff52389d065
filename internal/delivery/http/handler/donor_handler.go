package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"blood-donor-registry/internal/delivery/dto"
	"blood-donor-registry/internal/usecase"
	"blood-donor-registry/pkg/response"
	"blood-donor-registry/pkg/validator"

	"github.com/gorilla/mux"
)

type DonorHandler struct {
	registrationUsecase usecase.DonorRegistrationUsecase
	directoryUsecase    usecase.DonorDirectoryUsecase
	profileUsecase      usecase.DonorProfileUsecase
	validator           *validator.CustomValidator
}

func NewDonorHandler(
	registrationUsecase usecase.DonorRegistrationUsecase,
	directoryUsecase usecase.DonorDirectoryUsecase,
	profileUsecase usecase.DonorProfileUsecase,
	validator *validator.CustomValidator,
) *DonorHandler {
	return &DonorHandler{
		registrationUsecase: registrationUsecase,
		directoryUsecase:    directoryUsecase,
		profileUsecase:      profileUsecase,
		validator:           validator,
	}
}

func (h *DonorHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterDonorRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	donor, err := h.registrationUsecase.Register(r.Context(), &req)
	if err != nil {
		writeDonorError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, dto.DonorMessageResponse{
		Message: "Donor registered successfully",
		Donor:   donor,
	})
}

func (h *DonorHandler) List(w http.ResponseWriter, r *http.Request) {
	query := dto.DonorListQuery{
		BloodGroup: r.URL.Query().Get("blood_group"),
		Sort:       r.URL.Query().Get("sort"),
	}
	if err := h.validator.Validate(&query); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	donors, err := h.directoryUsecase.List(r.Context(), &query)
	if err != nil {
		writeDonorError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, donors)
}

func (h *DonorHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.directoryUsecase.Stats(r.Context())
	if err != nil {
		writeDonorError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, stats)
}

func (h *DonorHandler) GetByEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		response.BadRequest(w, "Email is required")
		return
	}

	donor, err := h.profileUsecase.GetByEmail(r.Context(), email)
	if err != nil {
		writeDonorError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, donor)
}

func (h *DonorHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateDonorRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	donor, err := h.profileUsecase.UpdateByEmail(r.Context(), &req)
	if err != nil {
		writeDonorError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, dto.DonorMessageResponse{
		Message: "Donor information updated successfully",
		Donor:   donor,
	})
}

func (h *DonorHandler) DeleteByEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		response.BadRequest(w, "Email is required")
		return
	}

	if err := h.profileUsecase.DeleteByEmail(r.Context(), email); err != nil {
		writeDonorError(w, err)
		return
	}

	response.Message(w, http.StatusOK, "Donor deleted successfully")
}

func (h *DonorHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := donorIDFromPath(w, r)
	if !ok {
		return
	}

	donor, err := h.profileUsecase.GetByID(r.Context(), id)
	if err != nil {
		writeDonorError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, donor)
}

func (h *DonorHandler) UpdateAvailability(w http.ResponseWriter, r *http.Request) {
	id, ok := donorIDFromPath(w, r)
	if !ok {
		return
	}

	var req dto.UpdateAvailabilityRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	donor, err := h.profileUsecase.UpdateAvailability(r.Context(), id, &req)
	if err != nil {
		writeDonorError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, dto.DonorMessageResponse{
		Message: "Availability updated successfully",
		Donor:   donor,
	})
}

func (h *DonorHandler) DeleteByID(w http.ResponseWriter, r *http.Request) {
	id, ok := donorIDFromPath(w, r)
	if !ok {
		return
	}

	donor, err := h.profileUsecase.DeleteByID(r.Context(), id)
	if err != nil {
		writeDonorError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, dto.DonorMessageResponse{
		Message: "Donor deleted successfully",
		Donor:   donor,
	})
}

// decodeAndValidate writes the 400 response itself and reports false when
// the body is unusable.
func (h *DonorHandler) decodeAndValidate(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			response.JSON(w, http.StatusBadRequest, response.ErrorResponse{
				Error:   response.CategoryValidation,
				Message: "Invalid data types",
				Details: map[string]string{typeErr.Field: typeErr.Field + " must be of type " + typeErr.Type.String()},
			})
			return false
		}
		response.BadRequest(w, "Invalid request body")
		return false
	}

	if err := h.validator.Validate(req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return false
	}
	return true
}

func donorIDFromPath(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(w, "Invalid donor ID")
		return 0, false
	}
	return id, true
}

func writeDonorError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrMobileAlreadyExists), errors.Is(err, usecase.ErrEmailAlreadyExists):
		response.Conflict(w, usecase.ConflictField(err), err.Error())
	case errors.Is(err, usecase.ErrDonorNotFound):
		response.NotFound(w, "Donor not found")
	case errors.Is(err, usecase.ErrInvalidBloodGroup),
		errors.Is(err, usecase.ErrInvalidAvailability),
		errors.Is(err, usecase.ErrInvalidDonorID):
		response.BadRequest(w, err.Error())
	case errors.Is(err, usecase.ErrForbidden):
		response.Forbidden(w, "Identity does not match the donor profile")
	default:
		response.StoreError(w)
	}
}
