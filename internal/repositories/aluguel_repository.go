package repositories

import (
	"database/sql"

	"locatech/internal/models"
)

// AluguelRepository reads through an inner join against pessoas and
// veiculos to denormalize display fields into the result. A row whose
// pessoa_id or veiculo_id no longer resolves drops out of every read.
type AluguelRepository struct {
	CRUDRepository[models.Aluguel]
}

func NewAluguelRepository(db *sql.DB) *AluguelRepository {
	return &AluguelRepository{CRUDRepository[models.Aluguel]{
		DB: db,
		Queries: EntityQueries[models.Aluguel]{
			SelectByID: `SELECT a.id, a.pessoa_id, a.veiculo_id, a.data_inicio, a.data_fim, a.valor_total,
				p.nome AS pessoa_nome, p.cpf AS pessoa_cpf,
				v.modelo AS veiculo_modelo, v.placa AS veiculo_placa
				FROM alugueis a
				INNER JOIN pessoas p ON a.pessoa_id = p.id
				INNER JOIN veiculos v ON a.veiculo_id = v.id
				WHERE a.id = ?`,
			SelectPage: `SELECT a.id, a.pessoa_id, a.veiculo_id, a.data_inicio, a.data_fim, a.valor_total,
				p.nome AS pessoa_nome, p.cpf AS pessoa_cpf,
				v.modelo AS veiculo_modelo, v.placa AS veiculo_placa
				FROM alugueis a
				INNER JOIN pessoas p ON a.pessoa_id = p.id
				INNER JOIN veiculos v ON a.veiculo_id = v.id
				ORDER BY a.id LIMIT ? OFFSET ?`,
			Insert: `INSERT INTO alugueis (pessoa_id, veiculo_id, data_inicio, data_fim, valor_total) VALUES (?, ?, ?, ?, ?)`,
			Update: `UPDATE alugueis SET pessoa_id = ?, veiculo_id = ?, data_inicio = ?, data_fim = ?, valor_total = ? WHERE id = ?`,
			Delete: `DELETE FROM alugueis WHERE id = ?`,
			Scan: func(row RowScanner) (models.Aluguel, error) {
				var a models.Aluguel
				err := row.Scan(&a.ID, &a.PessoaID, &a.VeiculoID, &a.DataInicio, &a.DataFim, &a.ValorTotal,
					&a.PessoaNome, &a.PessoaCPF, &a.VeiculoModelo, &a.VeiculoPlaca)
				return a, err
			},
			Args: func(a models.Aluguel) []any {
				return []any{a.PessoaID, a.VeiculoID, a.DataInicio, a.DataFim, a.ValorTotal}
			},
		},
	}}
}
