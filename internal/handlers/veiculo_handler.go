package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"locatech/internal/models"
	"locatech/internal/services"
)

type VeiculoHandler struct {
	Service *services.VeiculoService
}

func (h *VeiculoHandler) CreateVeiculo(w http.ResponseWriter, r *http.Request) {
	var veiculo models.Veiculo
	if err := json.NewDecoder(r.Body).Decode(&veiculo); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	id, err := h.Service.Create(r.Context(), veiculo)
	if err != nil {
		if isDuplicateEntryError(err) {
			http.Error(w, "Placa already registered", http.StatusConflict)
			return
		}
		http.Error(w, "Failed to create", http.StatusInternalServerError)
		return
	}
	veiculo.ID = id
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(veiculo)
}

func (h *VeiculoHandler) GetVeiculos(w http.ResponseWriter, r *http.Request) {
	page := getIntParam(r, "page", 1)
	size := getIntParam(r, "size", 10)
	veiculos, err := h.Service.List(r.Context(), page, size)
	if err != nil {
		http.Error(w, "Failed to fetch", http.StatusInternalServerError)
		return
	}
	if veiculos == nil {
		veiculos = []models.Veiculo{}
	}
	json.NewEncoder(w).Encode(veiculos)
}

func (h *VeiculoHandler) GetVeiculoByID(w http.ResponseWriter, r *http.Request) {
	id := getIntParam(r, "id", 0)
	veiculo, err := h.Service.GetByID(r.Context(), id)
	if err != nil {
		http.Error(w, "Failed to fetch", http.StatusInternalServerError)
		return
	}
	if veiculo == nil {
		http.Error(w, "Veiculo not found", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(veiculo)
}

func (h *VeiculoHandler) UpdateVeiculo(w http.ResponseWriter, r *http.Request) {
	id := getIntParam(r, "id", 0)
	var veiculo models.Veiculo
	if err := json.NewDecoder(r.Body).Decode(&veiculo); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	if err := h.Service.Update(r.Context(), veiculo, id); err != nil {
		switch {
		case errors.Is(err, models.ErrVeiculoNotFound):
			http.Error(w, "Veiculo not found", http.StatusNotFound)
		case isDuplicateEntryError(err):
			http.Error(w, "Placa already registered", http.StatusConflict)
		default:
			http.Error(w, "Failed to update", http.StatusInternalServerError)
		}
		return
	}
	veiculo.ID = id
	json.NewEncoder(w).Encode(veiculo)
}

func (h *VeiculoHandler) DeleteVeiculo(w http.ResponseWriter, r *http.Request) {
	id := getIntParam(r, "id", 0)
	if err := h.Service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrVeiculoNotFound) {
			http.Error(w, "Veiculo not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to delete", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
