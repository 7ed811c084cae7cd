package main

import (
	"context"
	"log"
	"time"

	"go.uber.org/zap"

	_ "github.com/welfarehub/benefits-api/docs"
	"github.com/welfarehub/benefits-api/internal/api/handlers"
	"github.com/welfarehub/benefits-api/internal/api/routes"
	"github.com/welfarehub/benefits-api/internal/config"
	"github.com/welfarehub/benefits-api/internal/gov24"
	"github.com/welfarehub/benefits-api/internal/observability"
	"github.com/welfarehub/benefits-api/internal/services"
	"github.com/welfarehub/benefits-api/internal/store"
)

// @title           Benefits API
// @version         1.0
// @description     API de busca de benefícios públicos coreanos sincronizados da API 보조금24 (gov24)

// @contact.name   WelfareHub
// @contact.url    https://github.com/welfarehub/benefits-api

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

func main() {
	cfg := config.LoadConfig()

	logger, err := observability.NewLogger(cfg.IsDevelopment())
	if err != nil {
		log.Fatalf("Erro ao criar logger: %v", err)
	}
	defer logger.Sync()

	observability.InitTracer(cfg)
	defer observability.ShutdownTracer()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := store.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Fatal("mongo connection failed", zap.Error(err))
	}
	if err := store.EnsureIndexes(ctx, db); err != nil {
		logger.Fatal("index creation failed", zap.Error(err))
	}

	benefitStore := store.NewBenefitStore(db)
	searchLogStore := store.NewSearchLogStore(db)

	gov24Client := gov24.NewClient(
		cfg.OpenAPIBaseURL,
		cfg.OpenAPIServiceKey,
		cfg.APITimeout,
		gov24.RetryPolicy{MaxAttempts: cfg.APIMaxRetries, BaseDelay: cfg.APIRetryDelay},
		logger,
	)

	searchService := services.NewSearchService(benefitStore, searchLogStore, logger)
	detailService := services.NewDetailService(benefitStore, gov24Client, services.NewViewTracker(), logger)
	popularService := services.NewPopularService(benefitStore, cfg.PopularCacheTTL, cfg.PopularCacheSize, logger)
	metaService := services.NewMetaService(benefitStore)

	r := routes.SetupRouter(cfg, routes.Handlers{
		Benefit: handlers.NewBenefitHandler(searchService, detailService, logger),
		Meta:    handlers.NewMetaHandler(metaService, logger),
		Popular: handlers.NewPopularHandler(popularService, logger),
		Health:  handlers.NewHealthHandler(db.Client()),
	})

	logger.Info("servidor iniciado", zap.String("port", cfg.ServerPort))
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		logger.Fatal("erro ao iniciar servidor", zap.Error(err))
	}
}
