package services

import (
	"context"

	"locatech/internal/models"
)

// AluguelService layers the rental period check over the shared CRUD
// contract. ValorTotal is stored exactly as supplied by the caller;
// this layer never derives it from the veiculo's daily rate.
type AluguelService struct {
	CRUDService[models.Aluguel]
}

func NewAluguelService(repo CRUDRepository[models.Aluguel]) *AluguelService {
	return &AluguelService{CRUDService[models.Aluguel]{
		Repo:     repo,
		Entity:   "aluguel",
		NotFound: models.ErrAluguelNotFound,
	}}
}

func (s *AluguelService) Create(ctx context.Context, aluguel models.Aluguel) (int, error) {
	if aluguel.DataFim.Before(aluguel.DataInicio) {
		return 0, models.ErrInvalidPeriod
	}
	return s.CRUDService.Create(ctx, aluguel)
}

func (s *AluguelService) Update(ctx context.Context, aluguel models.Aluguel, id int) error {
	if aluguel.DataFim.Before(aluguel.DataInicio) {
		return models.ErrInvalidPeriod
	}
	return s.CRUDService.Update(ctx, aluguel, id)
}
