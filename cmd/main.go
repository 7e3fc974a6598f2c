package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	// Nossos pacotes de infraestrutura e utilitários
	"binstock/config"
	"binstock/internal/memstore"
	"binstock/internal/pkg/cache"
	"binstock/internal/pkg/database"
	"binstock/internal/pkg/logger"
	"binstock/internal/pkg/middleware"

	// Camadas para Injeção de Dependências
	"binstock/internal/api/health"
	"binstock/internal/api/location"
	"binstock/internal/api/product"
	"binstock/internal/api/receipt"
	"binstock/internal/api/router"
	"binstock/internal/repository/locationrepo"
	"binstock/internal/repository/productrepo"
	"binstock/internal/repository/stockrepo"
	"binstock/internal/service/locationservice"
	"binstock/internal/service/productservice"
	"binstock/internal/service/receiptservice"
)

// @title        binstock API
// @version      1.0
// @description  Warehouse and storage-bin inventory tracker.
// @BasePath     /
func main() {
	log.Println("⚡ Inicializando serviço binstock...")
	// 0. CARREGAR VARIÁVEIS DE AMBIENTE (.env)
	// Sem .env seguimos só com o ambiente do sistema (ex: Docker).
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Aviso: Arquivo .env não encontrado ou erro de leitura. Carregando configs apenas do ambiente do sistema.")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("configuração inválida: %v", err)
	}
	appLog := logger.New(logger.Config{Env: cfg.Environment, Level: cfg.LogLevel})
	appLog.Info("Configurações carregadas.", map[string]interface{}{"store_driver": cfg.StoreDriver, "env": cfg.Environment})

	// 1. Repositórios (Location Store, Product Store e aplicação de recebimentos)
	var (
		locationRepo locationservice.LocationRepository
		productRepo  productservice.ProductRepository
		stockRepo    receiptservice.StockRepository
		limiter      func(http.Handler) http.Handler
	)

	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		locations := memstore.NewLocationStore()
		products := memstore.NewProductStore()
		locationRepo, productRepo, stockRepo = locations, products, products
		appLog.Warn("Usando stores em memória; os dados se perdem ao reiniciar.", nil)

	default:
		// A. Banco de Dados (PostgreSQL)
		db, err := database.NewPostgresDB(cfg.DatabaseURL)
		if err != nil {
			appLog.Fatal("Falha ao conectar ao banco de dados.", err)
		}
		defer db.Close()
		appLog.Info("Conexão PostgreSQL estabelecida.", nil)

		// B. Cache (Redis), opcional: sem ele o serviço segue sem cache e sem rate limit.
		var cacheClient cache.Client
		if cfg.CacheEnabled {
			redisClient, err := cache.NewRedisClient(cfg.RedisAddr)
			if err != nil {
				appLog.Warn("Redis indisponível; seguindo sem cache.", map[string]interface{}{"addr": cfg.RedisAddr, "error": err.Error()})
			} else {
				defer redisClient.Close()
				cacheClient = redisClient
				limiter = middleware.RateLimiter(redisClient, cfg.RateLimitMaxRequests, cfg.RateLimitPeriod, appLog)
				appLog.Info("Conexão Redis estabelecida.", nil)
			}
		}

		locationRepo = locationrepo.NewLocationRepository(db, cacheClient, cfg.DBTimeout, cfg.CacheTTL, appLog)
		productRepo = productrepo.NewProductRepository(db, cfg.DBTimeout, appLog)
		stockRepo = stockrepo.NewStockRepository(db, cfg.DBTimeout, appLog)
	}

	// 2. Serviços (Lógica de Negócio)
	locationSvc := locationservice.NewService(locationRepo, appLog)
	productSvc := productservice.NewService(productRepo, locationRepo, appLog)
	receiptSvc := receiptservice.NewService(locationRepo, productRepo, stockRepo, appLog)

	// 3. Handlers (Camada de Apresentação) e Roteador
	handlers := router.Handlers{
		Health:   health.NewHandler(appLog),
		Location: location.NewHandler(locationSvc, appLog),
		Receipt:  receipt.NewHandler(receiptSvc, appLog),
		Product:  product.NewHandler(productSvc, appLog),
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router.NewRouter(handlers, appLog, limiter),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 4. Execução e Graceful Shutdown
	go func() {
		appLog.Info("Servidor binstock ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal("Servidor falhou.", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	appLog.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLog.Error("Desligamento do servidor forçado.", err)
	}

	appLog.Info("Servidor encerrado com sucesso.", nil)
}
