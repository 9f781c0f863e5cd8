package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, assignRequestID, makeResponseJSON)

	mux := pat.New()

	// Pessoas
	mux.Post("/pessoas", http.HandlerFunc(app.pessoaHandler.CreatePessoa))
	mux.Get("/pessoas", http.HandlerFunc(app.pessoaHandler.GetPessoas))
	mux.Get("/pessoas/:id", http.HandlerFunc(app.pessoaHandler.GetPessoaByID))
	mux.Put("/pessoas/:id", http.HandlerFunc(app.pessoaHandler.UpdatePessoa))
	mux.Del("/pessoas/:id", http.HandlerFunc(app.pessoaHandler.DeletePessoa))

	// Veiculos
	mux.Post("/veiculos", http.HandlerFunc(app.veiculoHandler.CreateVeiculo))
	mux.Get("/veiculos", http.HandlerFunc(app.veiculoHandler.GetVeiculos))
	mux.Get("/veiculos/:id", http.HandlerFunc(app.veiculoHandler.GetVeiculoByID))
	mux.Put("/veiculos/:id", http.HandlerFunc(app.veiculoHandler.UpdateVeiculo))
	mux.Del("/veiculos/:id", http.HandlerFunc(app.veiculoHandler.DeleteVeiculo))

	// Alugueis
	mux.Post("/alugueis", http.HandlerFunc(app.aluguelHandler.CreateAluguel))
	mux.Get("/alugueis", http.HandlerFunc(app.aluguelHandler.GetAlugueis))
	mux.Get("/alugueis/:id", http.HandlerFunc(app.aluguelHandler.GetAluguelByID))
	mux.Put("/alugueis/:id", http.HandlerFunc(app.aluguelHandler.UpdateAluguel))
	mux.Del("/alugueis/:id", http.HandlerFunc(app.aluguelHandler.DeleteAluguel))

	return standardMiddleware.Then(mux)
}
