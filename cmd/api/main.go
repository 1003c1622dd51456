package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/dsandoval/suds/internal/client"
	clientStore "github.com/dsandoval/suds/internal/client/store"
	"github.com/dsandoval/suds/internal/config"
	"github.com/dsandoval/suds/internal/database"
	sudsHttp "github.com/dsandoval/suds/internal/http"
	clientHandler "github.com/dsandoval/suds/internal/http/client"
	productHandler "github.com/dsandoval/suds/internal/http/product"
	reportHandler "github.com/dsandoval/suds/internal/http/report"
	saleHandler "github.com/dsandoval/suds/internal/http/sale"
	"github.com/dsandoval/suds/internal/product"
	productStore "github.com/dsandoval/suds/internal/product/store"
	"github.com/dsandoval/suds/internal/receipt"
	"github.com/dsandoval/suds/internal/report"
	"github.com/dsandoval/suds/internal/sale"
	saleStore "github.com/dsandoval/suds/internal/sale/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(context.Background(), db); err != nil {
		slog.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}

	var (
		productService = product.NewService(productStore.New(db))
		clientService  = client.NewService(clientStore.New(db))
		saleService    = sale.NewService(saleStore.New(db), sale.NewLogPublisher(slog.Default()))
		reportService  = report.NewService(saleService)
		receipts       = receipt.NewGenerator(cfg.App.ShopName)
	)

	var (
		productH = productHandler.NewHandler(productService)
		clientH  = clientHandler.NewHandler(clientService)
		saleH    = saleHandler.NewHandler(saleService, receipts)
		reportH  = reportHandler.NewHandler(reportService)
	)

	router := sudsHttp.New(productH, clientH, saleH, reportH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
