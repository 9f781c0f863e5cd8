package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"locatech/internal/models"
	"locatech/internal/services"
)

type PessoaHandler struct {
	Service *services.PessoaService
}

func (h *PessoaHandler) CreatePessoa(w http.ResponseWriter, r *http.Request) {
	var pessoa models.Pessoa
	if err := json.NewDecoder(r.Body).Decode(&pessoa); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	id, err := h.Service.Create(r.Context(), pessoa)
	if err != nil {
		if isDuplicateEntryError(err) {
			http.Error(w, "CPF already registered", http.StatusConflict)
			return
		}
		http.Error(w, "Failed to create", http.StatusInternalServerError)
		return
	}
	pessoa.ID = id
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(pessoa)
}

func (h *PessoaHandler) GetPessoas(w http.ResponseWriter, r *http.Request) {
	page := getIntParam(r, "page", 1)
	size := getIntParam(r, "size", 10)
	pessoas, err := h.Service.List(r.Context(), page, size)
	if err != nil {
		http.Error(w, "Failed to fetch", http.StatusInternalServerError)
		return
	}
	if pessoas == nil {
		pessoas = []models.Pessoa{}
	}
	json.NewEncoder(w).Encode(pessoas)
}

func (h *PessoaHandler) GetPessoaByID(w http.ResponseWriter, r *http.Request) {
	id := getIntParam(r, "id", 0)
	pessoa, err := h.Service.GetByID(r.Context(), id)
	if err != nil {
		http.Error(w, "Failed to fetch", http.StatusInternalServerError)
		return
	}
	if pessoa == nil {
		http.Error(w, "Pessoa not found", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(pessoa)
}

func (h *PessoaHandler) UpdatePessoa(w http.ResponseWriter, r *http.Request) {
	id := getIntParam(r, "id", 0)
	var pessoa models.Pessoa
	if err := json.NewDecoder(r.Body).Decode(&pessoa); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	if err := h.Service.Update(r.Context(), pessoa, id); err != nil {
		switch {
		case errors.Is(err, models.ErrPessoaNotFound):
			http.Error(w, "Pessoa not found", http.StatusNotFound)
		case isDuplicateEntryError(err):
			http.Error(w, "CPF already registered", http.StatusConflict)
		default:
			http.Error(w, "Failed to update", http.StatusInternalServerError)
		}
		return
	}
	pessoa.ID = id
	json.NewEncoder(w).Encode(pessoa)
}

func (h *PessoaHandler) DeletePessoa(w http.ResponseWriter, r *http.Request) {
	id := getIntParam(r, "id", 0)
	if err := h.Service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrPessoaNotFound) {
			http.Error(w, "Pessoa not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to delete", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
