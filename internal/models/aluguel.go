package models

import (
	"time"
)

// Aluguel links a pessoa to a veiculo for a date range. The last four
// fields are display-only values copied from the joined pessoa and
// veiculo rows; they are populated on reads and never persisted with
// the aluguel row itself.
type Aluguel struct {
	ID         int       `json:"id"`
	PessoaID   int       `json:"pessoa_id"`
	VeiculoID  int       `json:"veiculo_id"`
	DataInicio time.Time `json:"data_inicio"`
	DataFim    time.Time `json:"data_fim"`
	ValorTotal float64   `json:"valor_total"`

	PessoaNome    string `json:"pessoa_nome,omitempty"`
	PessoaCPF     string `json:"pessoa_cpf,omitempty"`
	VeiculoModelo string `json:"veiculo_modelo,omitempty"`
	VeiculoPlaca  string `json:"veiculo_placa,omitempty"`
}
