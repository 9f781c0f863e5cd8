package main

import (
	"database/sql"
	"log"
	"net/http"

	_ "github.com/go-sql-driver/mysql"

	"locatech/internal/handlers"
	"locatech/internal/repositories"
	"locatech/internal/services"
)

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger
	db       *sql.DB

	pessoaHandler  *handlers.PessoaHandler
	veiculoHandler *handlers.VeiculoHandler
	aluguelHandler *handlers.AluguelHandler
}

func initializeApp(db *sql.DB, errorLog, infoLog *log.Logger) *application {
	// Repositories
	pessoaRepo := repositories.NewPessoaRepository(db)
	veiculoRepo := repositories.NewVeiculoRepository(db)
	aluguelRepo := repositories.NewAluguelRepository(db)

	// Services
	pessoaService := services.NewPessoaService(pessoaRepo)
	veiculoService := services.NewVeiculoService(veiculoRepo)
	aluguelService := services.NewAluguelService(aluguelRepo)

	// Handlers
	pessoaHandler := &handlers.PessoaHandler{Service: pessoaService}
	veiculoHandler := &handlers.VeiculoHandler{Service: veiculoService}
	aluguelHandler := &handlers.AluguelHandler{Service: aluguelService, Veiculos: veiculoService}

	return &application{
		errorLog:       errorLog,
		infoLog:        infoLog,
		db:             db,
		pessoaHandler:  pessoaHandler,
		veiculoHandler: veiculoHandler,
		aluguelHandler: aluguelHandler,
	}
}

func openDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Printf("Failed to open DB: %v", err)
		return nil, err
	}
	if err = db.Ping(); err != nil {
		log.Printf("Failed to ping DB: %v", err)
		return nil, err
	}
	db.SetMaxIdleConns(35)
	log.Println("Successfully connected to database")
	return db, nil
}

func addSecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cross-Origin-Opener-Policy", "same-origin")
		w.Header().Set("Cross-Origin-Embedder-Policy", "require-corp")
		w.Header().Set("Cross-Origin-Resource-Policy", "same-origin")
		next.ServeHTTP(w, r)
	})
}
