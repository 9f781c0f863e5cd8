package models

// Pessoa is a renter registered in the system.
type Pessoa struct {
	ID       int    `json:"id"`
	Nome     string `json:"nome"`
	CPF      string `json:"cpf"`
	Telefone string `json:"telefone"`
	Email    string `json:"email"`
}
