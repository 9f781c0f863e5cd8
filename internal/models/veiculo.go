package models

// Veiculo is a rentable vehicle. ValorDiaria is the daily rate charged
// while the vehicle is rented out.
type Veiculo struct {
	ID          int     `json:"id"`
	Marca       string  `json:"marca"`
	Modelo      string  `json:"modelo"`
	Placa       string  `json:"placa"`
	Ano         int     `json:"ano"`
	Cor         string  `json:"cor"`
	ValorDiaria float64 `json:"valor_diaria"`
}
