package repositories

import (
	"database/sql"

	"locatech/internal/models"
)

type PessoaRepository struct {
	CRUDRepository[models.Pessoa]
}

func NewPessoaRepository(db *sql.DB) *PessoaRepository {
	return &PessoaRepository{CRUDRepository[models.Pessoa]{
		DB: db,
		Queries: EntityQueries[models.Pessoa]{
			SelectByID: `SELECT id, nome, cpf, telefone, email FROM pessoas WHERE id = ?`,
			SelectPage: `SELECT id, nome, cpf, telefone, email FROM pessoas ORDER BY id LIMIT ? OFFSET ?`,
			Insert:     `INSERT INTO pessoas (nome, cpf, telefone, email) VALUES (?, ?, ?, ?)`,
			Update:     `UPDATE pessoas SET nome = ?, cpf = ?, telefone = ?, email = ? WHERE id = ?`,
			Delete:     `DELETE FROM pessoas WHERE id = ?`,
			Scan: func(row RowScanner) (models.Pessoa, error) {
				var p models.Pessoa
				err := row.Scan(&p.ID, &p.Nome, &p.CPF, &p.Telefone, &p.Email)
				return p, err
			},
			Args: func(p models.Pessoa) []any {
				return []any{p.Nome, p.CPF, p.Telefone, p.Email}
			},
		},
	}}
}
