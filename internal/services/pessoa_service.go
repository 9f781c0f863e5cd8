package services

import (
	"locatech/internal/models"
)

type PessoaService struct {
	CRUDService[models.Pessoa]
}

func NewPessoaService(repo CRUDRepository[models.Pessoa]) *PessoaService {
	return &PessoaService{CRUDService[models.Pessoa]{
		Repo:     repo,
		Entity:   "pessoa",
		NotFound: models.ErrPessoaNotFound,
	}}
}
