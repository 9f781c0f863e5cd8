package repositories

import (
	"database/sql"

	"locatech/internal/models"
)

type VeiculoRepository struct {
	CRUDRepository[models.Veiculo]
}

func NewVeiculoRepository(db *sql.DB) *VeiculoRepository {
	return &VeiculoRepository{CRUDRepository[models.Veiculo]{
		DB: db,
		Queries: EntityQueries[models.Veiculo]{
			SelectByID: `SELECT id, marca, modelo, placa, ano, cor, valor_diaria FROM veiculos WHERE id = ?`,
			SelectPage: `SELECT id, marca, modelo, placa, ano, cor, valor_diaria FROM veiculos ORDER BY id LIMIT ? OFFSET ?`,
			Insert:     `INSERT INTO veiculos (marca, modelo, placa, ano, cor, valor_diaria) VALUES (?, ?, ?, ?, ?, ?)`,
			Update:     `UPDATE veiculos SET marca = ?, modelo = ?, placa = ?, ano = ?, cor = ?, valor_diaria = ? WHERE id = ?`,
			Delete:     `DELETE FROM veiculos WHERE id = ?`,
			Scan: func(row RowScanner) (models.Veiculo, error) {
				var v models.Veiculo
				err := row.Scan(&v.ID, &v.Marca, &v.Modelo, &v.Placa, &v.Ano, &v.Cor, &v.ValorDiaria)
				return v, err
			},
			Args: func(v models.Veiculo) []any {
				return []any{v.Marca, v.Modelo, v.Placa, v.Ano, v.Cor, v.ValorDiaria}
			},
		},
	}}
}
