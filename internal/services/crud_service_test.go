package services

import (
	"context"
	"errors"
	"testing"

	"locatech/internal/models"
)

// fakeRepo drives the generic service with canned behavior per method.
type fakeRepo[T any] struct {
	findByID func(id int) (*T, error)
	findAll  func(size, offset int) ([]T, error)
	save     func(entity T) (int, int64, error)
	update   func(entity T, id int) (int64, error)
	remove   func(id int) (int64, error)
}

func (f *fakeRepo[T]) FindByID(_ context.Context, id int) (*T, error) {
	return f.findByID(id)
}

func (f *fakeRepo[T]) FindAll(_ context.Context, size, offset int) ([]T, error) {
	return f.findAll(size, offset)
}

func (f *fakeRepo[T]) Save(_ context.Context, entity T) (int, int64, error) {
	return f.save(entity)
}

func (f *fakeRepo[T]) Update(_ context.Context, entity T, id int) (int64, error) {
	return f.update(entity, id)
}

func (f *fakeRepo[T]) Delete(_ context.Context, id int) (int64, error) {
	return f.remove(id)
}

func TestListOffsetArithmetic(t *testing.T) {
	cases := []struct {
		name       string
		page, size int
		wantSize   int
		wantOffset int
	}{
		{"first page", 1, 5, 5, 0},
		{"second page", 2, 5, 5, 5},
		{"tenth page", 10, 20, 20, 180},
		{"zero page clamps to first", 0, 5, 5, 0},
		{"negative page clamps to first", -3, 5, 5, 0},
		{"zero size clamps to default", 1, 0, 10, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var gotSize, gotOffset int
			repo := &fakeRepo[models.Pessoa]{
				findAll: func(size, offset int) ([]models.Pessoa, error) {
					gotSize, gotOffset = size, offset
					return nil, nil
				},
			}
			svc := &CRUDService[models.Pessoa]{Repo: repo, Entity: "pessoa", NotFound: models.ErrPessoaNotFound}
			if _, err := svc.List(context.Background(), tc.page, tc.size); err != nil {
				t.Fatalf("List: %v", err)
			}
			if gotSize != tc.wantSize || gotOffset != tc.wantOffset {
				t.Fatalf("expected (size=%d, offset=%d), got (size=%d, offset=%d)",
					tc.wantSize, tc.wantOffset, gotSize, gotOffset)
			}
		})
	}
}

func TestGetByIDPassthrough(t *testing.T) {
	want := models.Pessoa{ID: 7, Nome: "Ana", CPF: "111"}
	repo := &fakeRepo[models.Pessoa]{
		findByID: func(id int) (*models.Pessoa, error) {
			if id != 7 {
				return nil, nil
			}
			p := want
			return &p, nil
		},
	}
	svc := &CRUDService[models.Pessoa]{Repo: repo, Entity: "pessoa", NotFound: models.ErrPessoaNotFound}

	got, err := svc.GetByID(context.Background(), 7)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil || *got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}

	absent, err := svc.GetByID(context.Background(), 8)
	if err != nil {
		t.Fatalf("GetByID absent id: %v", err)
	}
	if absent != nil {
		t.Fatalf("expected nil for absent id, got %+v", absent)
	}
}

func TestCreate(t *testing.T) {
	t.Run("returns assigned id", func(t *testing.T) {
		repo := &fakeRepo[models.Pessoa]{
			save: func(models.Pessoa) (int, int64, error) { return 42, 1, nil },
		}
		svc := &CRUDService[models.Pessoa]{Repo: repo, Entity: "pessoa", NotFound: models.ErrPessoaNotFound}
		id, err := svc.Create(context.Background(), models.Pessoa{Nome: "Ana"})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if id != 42 {
			t.Fatalf("expected id 42, got %d", id)
		}
	})

	t.Run("zero affected rows is a save failure", func(t *testing.T) {
		repo := &fakeRepo[models.Pessoa]{
			save: func(models.Pessoa) (int, int64, error) { return 0, 0, nil },
		}
		svc := &CRUDService[models.Pessoa]{Repo: repo, Entity: "pessoa", NotFound: models.ErrPessoaNotFound}
		if _, err := svc.Create(context.Background(), models.Pessoa{}); !errors.Is(err, models.ErrSaveFailed) {
			t.Fatalf("expected ErrSaveFailed, got %v", err)
		}
	})

	t.Run("store errors propagate unchanged", func(t *testing.T) {
		boom := errors.New("connection reset")
		repo := &fakeRepo[models.Pessoa]{
			save: func(models.Pessoa) (int, int64, error) { return 0, 0, boom },
		}
		svc := &CRUDService[models.Pessoa]{Repo: repo, Entity: "pessoa", NotFound: models.ErrPessoaNotFound}
		if _, err := svc.Create(context.Background(), models.Pessoa{}); !errors.Is(err, boom) {
			t.Fatalf("expected store error, got %v", err)
		}
	})
}

func TestUpdateNotFound(t *testing.T) {
	repo := &fakeRepo[models.Veiculo]{
		update: func(_ models.Veiculo, id int) (int64, error) {
			if id == 9999 {
				return 0, nil
			}
			return 1, nil
		},
	}
	svc := &CRUDService[models.Veiculo]{Repo: repo, Entity: "veiculo", NotFound: models.ErrVeiculoNotFound}

	if err := svc.Update(context.Background(), models.Veiculo{Marca: "Fiat"}, 9999); !errors.Is(err, models.ErrVeiculoNotFound) {
		t.Fatalf("expected ErrVeiculoNotFound, got %v", err)
	}
	if err := svc.Update(context.Background(), models.Veiculo{Marca: "Fiat"}, 1); err != nil {
		t.Fatalf("expected silent success, got %v", err)
	}
}

func TestDeleteNotFound(t *testing.T) {
	repo := &fakeRepo[models.Veiculo]{
		remove: func(id int) (int64, error) {
			if id == 1 {
				return 1, nil
			}
			return 0, nil
		},
	}
	svc := &CRUDService[models.Veiculo]{Repo: repo, Entity: "veiculo", NotFound: models.ErrVeiculoNotFound}

	if err := svc.Delete(context.Background(), 1); err != nil {
		t.Fatalf("Delete existing: %v", err)
	}
	if err := svc.Delete(context.Background(), 2); !errors.Is(err, models.ErrVeiculoNotFound) {
		t.Fatalf("expected ErrVeiculoNotFound, got %v", err)
	}
}
