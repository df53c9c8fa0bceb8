package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/hugohenrick/tuckshop/internal/infrastructure/database"
)

func main() {
	down := flag.Bool("down", false, "desfaz todas as migrações")
	flag.Parse()

	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	config := database.NewPostgresConfigFromEnv()

	if *down {
		if err := database.RollbackMigrations(config); err != nil {
			log.Fatalf("Erro ao desfazer migrações: %v", err)
		}
		log.Println("Migrações desfeitas com sucesso!")
		return
	}

	if err := database.RunMigrations(config); err != nil {
		log.Fatalf("Erro ao executar migrações: %v", err)
	}
	log.Println("Migrações executadas com sucesso!")
}
