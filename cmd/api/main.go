package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/hugohenrick/tuckshop/internal/config"
	"github.com/hugohenrick/tuckshop/pkg/logger"
	"github.com/hugohenrick/tuckshop/pkg/pkcs12"
)

func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Erro na configuração: %v", err)
	}

	appLogger := logger.NewLogger(logger.ParseLevel(cfg.LogLevel))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Criar aplicação
	app, err := NewApp(ctx, cfg, appLogger)
	if err != nil {
		log.Fatalf("Erro ao iniciar aplicação: %v", err)
	}
	defer app.Close()

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           app.GetRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if cfg.TLSP12Path != "" {
		tlsConfig, err := pkcs12.LoadTLSConfig(cfg.TLSP12Path, cfg.TLSP12Password)
		if err != nil {
			log.Fatalf("Erro ao carregar certificado TLS: %v", err)
		}
		server.TLSConfig = tlsConfig
	}

	// Iniciar o servidor
	go func() {
		appLogger.Info("Servidor iniciado", "addr", server.Addr, "tls", server.TLSConfig != nil)
		var err error
		if server.TLSConfig != nil {
			err = server.ListenAndServeTLS("", "")
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Erro no servidor HTTP", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	appLogger.Info("Encerrando servidor")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Erro ao encerrar servidor", "error", err)
	}
}
