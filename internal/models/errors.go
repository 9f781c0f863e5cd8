package models

import (
	"errors"
)

var (
	ErrPessoaNotFound  = errors.New("models: pessoa not found")
	ErrVeiculoNotFound = errors.New("models: veiculo not found")
	ErrAluguelNotFound = errors.New("models: aluguel not found")
	ErrSaveFailed      = errors.New("models: save failed")
	ErrInvalidPeriod   = errors.New("models: data_fim before data_inicio")
)
