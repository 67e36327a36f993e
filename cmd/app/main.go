package main

import (
	"context"
	"os"

	"golang.org/x/time/rate"

	"github.com/tu-usuario/almacen-movil/internal/application/auth"
	"github.com/tu-usuario/almacen-movil/internal/application/inventory"
	"github.com/tu-usuario/almacen-movil/internal/application/scanner"
	appstats "github.com/tu-usuario/almacen-movil/internal/application/stats"
	infrapdf "github.com/tu-usuario/almacen-movil/internal/infrastructure/pdf"
	"github.com/tu-usuario/almacen-movil/internal/infrastructure/rest"
	"github.com/tu-usuario/almacen-movil/pkg/config"
	"github.com/tu-usuario/almacen-movil/pkg/logger"
)

// scanCooldown periodo mínimo entre escaneos procesados (el lector dispara
// lecturas repetidas en ráfaga).
const scanCooldown = rate.Limit(0.5) // 1 escaneo cada 2 s

const reportPath = "statistics.pdf"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Backend.BaseURL).
		Msg("iniciando aplicación")

	ctx := context.Background()

	client := rest.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout(), log)
	productRepo := rest.NewProductRepository(client)
	warehousemanRepo := rest.NewWarehousemanRepository(client)
	statisticsRepo := rest.NewStatisticsRepository(client)

	pdfGenerator := infrapdf.NewMarotoStatisticsGenerator()
	statsUC := appstats.NewUseCase(productRepo, statisticsRepo, pdfGenerator, log)
	inventoryUC := inventory.NewUseCase(productRepo, statsUC, log)
	scannerUC := scanner.NewUseCase(inventoryUC, scanCooldown, log)
	authUC := auth.NewUseCase(warehousemanRepo, log)

	inventoryUC.OnMutationComplete(func() {
		log.Debug().Msg("mutación completada; la UI debe refrescar su catálogo")
	})

	session, err := authUC.Login(ctx, cfg.Auth.SecretKey)
	if err != nil {
		log.Fatal().Err(err).Msg("login del almacenero")
	}
	defer authUC.Logout()

	products, err := inventoryUC.List(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("obtener catálogo")
	}
	log.Info().
		Str("warehouseman", session.Warehouseman.Name).
		Int("products", len(products)).
		Msg("catálogo cargado")

	if len(products) > 0 {
		scan, err := scannerUC.Scan(ctx, products[0].Barcode)
		if err != nil {
			log.Fatal().Err(err).Msg("escanear código de barras")
		}
		log.Info().
			Str("barcode", scan.Barcode).
			Str("outcome", string(scan.Outcome)).
			Msg("escaneo de verificación")
	}

	statistics, err := statsUC.RefreshTotals(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("recalcular estadísticas")
	}
	log.Info().
		Int("total_products", statistics.TotalProducts).
		Int("out_of_stock", statistics.OutOfStock).
		Str("total_stock_value", statistics.TotalStockValue.String()).
		Msg("estadísticas al día")

	report, err := statsUC.ExportPDF(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("exportar informe PDF")
	}
	if err := os.WriteFile(reportPath, report, 0o644); err != nil {
		log.Fatal().Err(err).Str("path", reportPath).Msg("guardar informe PDF")
	}
	log.Info().Str("path", reportPath).Int("bytes", len(report)).Msg("informe PDF generado")
}
