package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"locatech/internal/models"
	"locatech/internal/services"
)

// AluguelHandler needs the veiculo service besides its own: the rental
// total is priced here, from the veiculo's daily rate, before the
// aluguel service stores it verbatim.
type AluguelHandler struct {
	Service  *services.AluguelService
	Veiculos *services.VeiculoService
}

func (h *AluguelHandler) CreateAluguel(w http.ResponseWriter, r *http.Request) {
	var req AluguelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	aluguel, err := req.toAluguel()
	if err != nil {
		http.Error(w, "Invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	veiculo, err := h.Veiculos.GetByID(r.Context(), req.VeiculoID)
	if err != nil {
		http.Error(w, "Failed to fetch veiculo", http.StatusInternalServerError)
		return
	}
	if veiculo == nil {
		http.Error(w, "Veiculo not found", http.StatusNotFound)
		return
	}
	aluguel.ValorTotal = veiculo.ValorDiaria * float64(rentalDays(aluguel.DataInicio, aluguel.DataFim))

	id, err := h.Service.Create(r.Context(), aluguel)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidPeriod):
			http.Error(w, "data_fim must not precede data_inicio", http.StatusBadRequest)
		case isForeignKeyConstraintError(err):
			http.Error(w, "pessoa_id or veiculo_id does not exist", http.StatusUnprocessableEntity)
		default:
			http.Error(w, "Failed to create", http.StatusInternalServerError)
		}
		return
	}
	aluguel.ID = id
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(aluguel)
}

func (h *AluguelHandler) GetAlugueis(w http.ResponseWriter, r *http.Request) {
	page := getIntParam(r, "page", 1)
	size := getIntParam(r, "size", 10)
	alugueis, err := h.Service.List(r.Context(), page, size)
	if err != nil {
		http.Error(w, "Failed to fetch", http.StatusInternalServerError)
		return
	}
	if alugueis == nil {
		alugueis = []models.Aluguel{}
	}
	json.NewEncoder(w).Encode(alugueis)
}

func (h *AluguelHandler) GetAluguelByID(w http.ResponseWriter, r *http.Request) {
	id := getIntParam(r, "id", 0)
	aluguel, err := h.Service.GetByID(r.Context(), id)
	if err != nil {
		http.Error(w, "Failed to fetch", http.StatusInternalServerError)
		return
	}
	if aluguel == nil {
		http.Error(w, "Aluguel not found", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(aluguel)
}

func (h *AluguelHandler) UpdateAluguel(w http.ResponseWriter, r *http.Request) {
	id := getIntParam(r, "id", 0)
	var req AluguelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}
	aluguel, err := req.toAluguel()
	if err != nil {
		http.Error(w, "Invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	veiculo, err := h.Veiculos.GetByID(r.Context(), req.VeiculoID)
	if err != nil {
		http.Error(w, "Failed to fetch veiculo", http.StatusInternalServerError)
		return
	}
	if veiculo == nil {
		http.Error(w, "Veiculo not found", http.StatusNotFound)
		return
	}
	aluguel.ValorTotal = veiculo.ValorDiaria * float64(rentalDays(aluguel.DataInicio, aluguel.DataFim))

	if err := h.Service.Update(r.Context(), aluguel, id); err != nil {
		switch {
		case errors.Is(err, models.ErrAluguelNotFound):
			http.Error(w, "Aluguel not found", http.StatusNotFound)
		case errors.Is(err, models.ErrInvalidPeriod):
			http.Error(w, "data_fim must not precede data_inicio", http.StatusBadRequest)
		case isForeignKeyConstraintError(err):
			http.Error(w, "pessoa_id or veiculo_id does not exist", http.StatusUnprocessableEntity)
		default:
			http.Error(w, "Failed to update", http.StatusInternalServerError)
		}
		return
	}
	aluguel.ID = id
	json.NewEncoder(w).Encode(aluguel)
}

func (h *AluguelHandler) DeleteAluguel(w http.ResponseWriter, r *http.Request) {
	id := getIntParam(r, "id", 0)
	if err := h.Service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, models.ErrAluguelNotFound) {
			http.Error(w, "Aluguel not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to delete", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
