package handlers

import (
	"fmt"
	"time"

	"locatech/internal/models"
)

const dateLayout = "2006-01-02"

// AluguelRequest is the write payload for rentals. The total is not
// part of the payload: it is derived by the handler from the veiculo's
// daily rate before the service is called.
type AluguelRequest struct {
	PessoaID   int    `json:"pessoa_id"`
	VeiculoID  int    `json:"veiculo_id"`
	DataInicio string `json:"data_inicio"`
	DataFim    string `json:"data_fim"`
}

func (req AluguelRequest) toAluguel() (models.Aluguel, error) {
	inicio, err := time.Parse(dateLayout, req.DataInicio)
	if err != nil {
		return models.Aluguel{}, fmt.Errorf("data_inicio: %w", err)
	}
	fim, err := time.Parse(dateLayout, req.DataFim)
	if err != nil {
		return models.Aluguel{}, fmt.Errorf("data_fim: %w", err)
	}
	return models.Aluguel{
		PessoaID:   req.PessoaID,
		VeiculoID:  req.VeiculoID,
		DataInicio: inicio,
		DataFim:    fim,
	}, nil
}

// rentalDays counts whole days between the two dates.
func rentalDays(inicio, fim time.Time) int {
	return int(fim.Sub(inicio).Hours() / 24)
}
