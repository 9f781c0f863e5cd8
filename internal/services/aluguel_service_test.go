package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"locatech/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAluguelPeriodValidation(t *testing.T) {
	cases := []struct {
		name    string
		inicio  time.Time
		fim     time.Time
		wantErr error
	}{
		{"fim after inicio", date(2024, 1, 1), date(2024, 1, 5), nil},
		{"same day", date(2024, 1, 1), date(2024, 1, 1), nil},
		{"fim before inicio", date(2024, 1, 5), date(2024, 1, 1), models.ErrInvalidPeriod},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			saved := false
			repo := &fakeRepo[models.Aluguel]{
				save: func(models.Aluguel) (int, int64, error) {
					saved = true
					return 1, 1, nil
				},
				update: func(models.Aluguel, int) (int64, error) {
					return 1, nil
				},
			}
			svc := NewAluguelService(repo)
			aluguel := models.Aluguel{PessoaID: 1, VeiculoID: 1, DataInicio: tc.inicio, DataFim: tc.fim, ValorTotal: 400}

			_, err := svc.Create(context.Background(), aluguel)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Create: expected %v, got %v", tc.wantErr, err)
			}
			if tc.wantErr != nil && saved {
				t.Fatalf("invalid period must not reach the store")
			}

			err = svc.Update(context.Background(), aluguel, 1)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("Update: expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestAluguelTotalStoredVerbatim(t *testing.T) {
	var stored models.Aluguel
	repo := &fakeRepo[models.Aluguel]{
		save: func(a models.Aluguel) (int, int64, error) {
			stored = a
			return 1, 1, nil
		},
	}
	svc := NewAluguelService(repo)

	// The service never reprices: whatever total the caller supplies is
	// what reaches the store.
	aluguel := models.Aluguel{PessoaID: 1, VeiculoID: 2, DataInicio: date(2024, 1, 1), DataFim: date(2024, 1, 5), ValorTotal: 123.45}
	if _, err := svc.Create(context.Background(), aluguel); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if stored.ValorTotal != 123.45 {
		t.Fatalf("expected valor_total 123.45, got %v", stored.ValorTotal)
	}
}
