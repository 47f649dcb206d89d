package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/mail"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"

	"github.com/softsales/api/internal/entity"
)

const (
	maxEmailLen = 50
	peselLen    = 11
	phoneLen    = 9
	maxKRSLen   = 14
)

type CreateIndividualClientRequest struct {
	Email     string `json:"email"`
	Address   string `json:"address"`
	Phone     string `json:"phoneNumber"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	PESEL     string `json:"pesel"`
}

type CreateBusinessClientRequest struct {
	Email   string `json:"email"`
	Address string `json:"address"`
	Phone   string `json:"phoneNumber"`
	Name    string `json:"companyName"`
	KRS     string `json:"krs"`
}

type UpdateIndividualClientRequest struct {
	Email     string `json:"email"`
	Address   string `json:"address"`
	Phone     string `json:"phoneNumber"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type UpdateBusinessClientRequest struct {
	Email   string `json:"email"`
	Address string `json:"address"`
	Phone   string `json:"phoneNumber"`
	Name    string `json:"companyName"`
}

type ClientResponse struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	Phone     string    `json:"phoneNumber"`
	Returning bool      `json:"returning"`
	FirstName string    `json:"firstName,omitempty"`
	LastName  string    `json:"lastName,omitempty"`
	PESEL     string    `json:"pesel,omitempty"`
	Name      string    `json:"companyName,omitempty"`
	KRS       string    `json:"krs,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func clientResponse(c entity.Client) ClientResponse {
	resp := ClientResponse{
		ID:        c.ID,
		Kind:      c.Kind.String(),
		Email:     c.Email,
		Address:   c.Address,
		Phone:     c.Phone,
		Returning: c.Returning,
		CreatedAt: c.CreatedAt,
	}

	if c.Individual != nil {
		resp.FirstName = c.Individual.FirstName
		resp.LastName = c.Individual.LastName
		resp.PESEL = c.Individual.PESEL
	}

	if c.Business != nil {
		resp.Name = c.Business.Name
		resp.KRS = c.Business.KRS
	}

	return resp
}

// CreateIndividualClient registers an individual client
// @Summary Create individual client
// @Tags clients
// @Accept json
// @Produce json
// @Param CreateIndividualClientRequest body CreateIndividualClientRequest true "Client data"
// @Success 201 {object} ClientResponse
// @Failure 400 {object} ErrorResponse "Invalid client data"
// @Failure 500 {object} ErrorResponse "Failed to create client"
// @Router /clients/individual [post]
// @Security BearerAuth
func (h *Handler) CreateIndividualClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateIndividualClientRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	err = validateIndividual(req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, err.Error())
		return
	}

	c, err := h.s.CreateIndividualClient(ctx, entity.NewIndividual{
		Email:     req.Email,
		Address:   req.Address,
		Phone:     req.Phone,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		PESEL:     req.PESEL,
	})
	if err != nil {
		if errors.Is(err, entity.ErrInvalidArgument) {
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid client data")
			return
		}

		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to create client")

		return
	}

	SendJSON(ctx, w, http.StatusCreated, clientResponse(c))
}

// CreateBusinessClient registers a business client
// @Summary Create business client
// @Tags clients
// @Accept json
// @Produce json
// @Param CreateBusinessClientRequest body CreateBusinessClientRequest true "Client data"
// @Success 201 {object} ClientResponse
// @Failure 400 {object} ErrorResponse "Invalid client data"
// @Failure 500 {object} ErrorResponse "Failed to create client"
// @Router /clients/business [post]
// @Security BearerAuth
func (h *Handler) CreateBusinessClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateBusinessClientRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	err = validateBusiness(req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, err.Error())
		return
	}

	c, err := h.s.CreateBusinessClient(ctx, entity.NewBusiness{
		Email:   req.Email,
		Address: req.Address,
		Phone:   req.Phone,
		Name:    req.Name,
		KRS:     req.KRS,
	})
	if err != nil {
		if errors.Is(err, entity.ErrInvalidArgument) {
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid client data")
			return
		}

		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to create client")

		return
	}

	SendJSON(ctx, w, http.StatusCreated, clientResponse(c))
}

// UpdateIndividualClient partially updates an individual client
// @Summary Update individual client
// @Description Updates the provided fields; PESEL is immutable
// @Tags clients
// @Accept json
// @Param client_id path string true "Client ID"
// @Param UpdateIndividualClientRequest body UpdateIndividualClientRequest true "Fields to update"
// @Success 204
// @Failure 400 {object} ErrorResponse "Invalid client data"
// @Failure 404 {object} ErrorResponse "Client not found"
// @Failure 500 {object} ErrorResponse "Failed to update client"
// @Router /clients/individual/{client_id} [put]
// @Security BearerAuth
func (h *Handler) UpdateIndividualClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "client_id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid client id")
		return
	}

	var req UpdateIndividualClientRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	err = validateContact(req.Email, req.Phone, true)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, err.Error())
		return
	}

	err = h.s.UpdateIndividualClient(ctx, id, entity.IndividualUpdate{
		Email:     req.Email,
		Address:   req.Address,
		Phone:     req.Phone,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Client not found")
			return
		}

		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to update client")

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UpdateBusinessClient partially updates a business client
// @Summary Update business client
// @Description Updates the provided fields; KRS is immutable
// @Tags clients
// @Accept json
// @Param client_id path string true "Client ID"
// @Param UpdateBusinessClientRequest body UpdateBusinessClientRequest true "Fields to update"
// @Success 204
// @Failure 400 {object} ErrorResponse "Invalid client data"
// @Failure 404 {object} ErrorResponse "Client not found"
// @Failure 500 {object} ErrorResponse "Failed to update client"
// @Router /clients/business/{client_id} [put]
// @Security BearerAuth
func (h *Handler) UpdateBusinessClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "client_id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid client id")
		return
	}

	var req UpdateBusinessClientRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	err = validateContact(req.Email, req.Phone, true)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, err.Error())
		return
	}

	err = h.s.UpdateBusinessClient(ctx, id, entity.BusinessUpdate{
		Email:   req.Email,
		Address: req.Address,
		Phone:   req.Phone,
		Name:    req.Name,
	})
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Client not found")
			return
		}

		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to update client")

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteClient soft-deletes an individual client
// @Summary Delete client
// @Description Soft-deletes an individual client; business clients are reported as not found
// @Tags clients
// @Param client_id path string true "Client ID"
// @Success 204
// @Failure 404 {object} ErrorResponse "Client not found"
// @Failure 500 {object} ErrorResponse "Failed to delete client"
// @Router /clients/{client_id} [delete]
// @Security BearerAuth
func (h *Handler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "client_id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid client id")
		return
	}

	err = h.s.DeleteClient(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Client not found")
			return
		}

		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to delete client")

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func validateIndividual(req CreateIndividualClientRequest) error {
	if req.FirstName == "" || req.LastName == "" {
		return errors.New("first name and last name are required")
	}

	if !allDigits(req.PESEL) || len(req.PESEL) != peselLen {
		return fmt.Errorf("pesel must be exactly %d digits", peselLen)
	}

	return validateContact(req.Email, req.Phone, false)
}

func validateBusiness(req CreateBusinessClientRequest) error {
	if req.Name == "" {
		return errors.New("company name is required")
	}

	if req.KRS == "" || len(req.KRS) > maxKRSLen || !allDigits(req.KRS) {
		return fmt.Errorf("krs must be up to %d digits", maxKRSLen)
	}

	return validateContact(req.Email, req.Phone, false)
}

func validateContact(email, phone string, optional bool) error {
	if email == "" && phone == "" && optional {
		return nil
	}

	if email != "" || !optional {
		if len(email) > maxEmailLen {
			return fmt.Errorf("email must be at most %d characters", maxEmailLen)
		}

		_, err := mail.ParseAddress(email)
		if err != nil {
			return errors.New("invalid email address")
		}
	}

	if phone != "" || !optional {
		if !allDigits(phone) || len(phone) != phoneLen {
			return fmt.Errorf("phone number must be exactly %d digits", phoneLen)
		}
	}

	return nil
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
