package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/welfarehub/benefits-api/internal/config"
	"github.com/welfarehub/benefits-api/internal/gov24"
	"github.com/welfarehub/benefits-api/internal/observability"
	"github.com/welfarehub/benefits-api/internal/services"
	"github.com/welfarehub/benefits-api/internal/store"
)

var (
	pageSize   = flag.Int("page-size", 0, "Itens por página do serviceList (default: SYNC_PAGE_SIZE)")
	timeout    = flag.Duration("timeout", 2*time.Hour, "Tempo máximo da sincronização completa")
	jsonOutput = flag.Bool("json", false, "Saída do resumo em formato JSON")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Uso: %s [opções]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Sincroniza o catálogo de benefícios a partir da API gov24.\n\n")
		fmt.Fprintf(os.Stderr, "Opções:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := config.LoadConfig()
	if cfg.OpenAPIServiceKey == "" {
		log.Fatal("OPENAPI_SERVICE_KEY é obrigatória para sincronização")
	}

	logger, err := observability.NewLogger(cfg.IsDevelopment())
	if err != nil {
		log.Fatalf("Erro ao criar logger: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	db, err := store.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Fatal("mongo connection failed", zap.Error(err))
	}
	if err := store.EnsureIndexes(ctx, db); err != nil {
		logger.Fatal("index creation failed", zap.Error(err))
	}

	client := gov24.NewClient(
		cfg.OpenAPIBaseURL,
		cfg.OpenAPIServiceKey,
		cfg.APITimeout,
		gov24.RetryPolicy{MaxAttempts: cfg.APIMaxRetries, BaseDelay: cfg.APIRetryDelay},
		logger,
	)

	size := cfg.SyncPageSize
	if *pageSize > 0 {
		size = *pageSize
	}

	syncService := services.NewSyncService(client, store.NewBenefitStore(db), size, cfg.SyncPageDelay, logger)

	result, err := syncService.Run(ctx)
	if err != nil {
		logger.Fatal("sync failed", zap.Error(err))
	}

	if *jsonOutput {
		out, _ := json.Marshal(result)
		fmt.Println(string(out))
		return
	}
	fmt.Printf("Sincronização concluída: %d registros (%d criados, %d atualizados, %d erros)\n",
		result.Total, result.Created, result.Updated, result.Errors)
}
