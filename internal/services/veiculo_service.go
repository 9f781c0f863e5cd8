package services

import (
	"locatech/internal/models"
)

type VeiculoService struct {
	CRUDService[models.Veiculo]
}

func NewVeiculoService(repo CRUDRepository[models.Veiculo]) *VeiculoService {
	return &VeiculoService{CRUDService[models.Veiculo]{
		Repo:     repo,
		Entity:   "veiculo",
		NotFound: models.ErrVeiculoNotFound,
	}}
}
