// Package scanner implementa el flujo de escaneo de códigos de barras:
// anti-rebote del lector, validación del código y consulta al catálogo.
package scanner

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/tu-usuario/almacen-movil/internal/application/inventory"
	"github.com/tu-usuario/almacen-movil/internal/domain/barcode"
	"github.com/tu-usuario/almacen-movil/internal/domain/entity"
	"github.com/tu-usuario/almacen-movil/pkg/logger"
)

// Outcome desenlace de un escaneo.
type Outcome string

const (
	// OutcomeFound el código corresponde a un producto existente.
	OutcomeFound Outcome = "found"
	// OutcomeNotFound código válido sin producto: la UI ofrece darlo de alta.
	OutcomeNotFound Outcome = "not_found"
	// OutcomeInvalid el código no es un código de barras plausible.
	OutcomeInvalid Outcome = "invalid"
	// OutcomeThrottled escaneo descartado por el periodo de enfriamiento.
	OutcomeThrottled Outcome = "throttled"
)

// Result resultado de un escaneo. Product solo viene con OutcomeFound.
type Result struct {
	Outcome Outcome
	Barcode string
	Product *entity.Product
}

// UseCase caso de uso del escáner. El lector físico dispara lecturas
// repetidas del mismo código en ráfaga; el limitador deja pasar una por
// ventana de enfriamiento y descarta el resto sin tocar la red.
type UseCase struct {
	inventory *inventory.UseCase
	limiter   *rate.Limiter
	log       *logger.Logger
}

// NewUseCase construye el caso de uso. cooldown es el periodo mínimo entre
// escaneos procesados (el cliente original usa 2 s).
func NewUseCase(inv *inventory.UseCase, cooldown rate.Limit, log *logger.Logger) *UseCase {
	return &UseCase{
		inventory: inv,
		limiter:   rate.NewLimiter(cooldown, 1),
		log:       log,
	}
}

// Scan procesa una lectura del escáner (o un código tecleado a mano).
// Solo devuelve error ante fallos de red; los desenlaces de negocio
// (inválido, no encontrado, descartado) van en Result.
func (uc *UseCase) Scan(ctx context.Context, code string) (*Result, error) {
	if !uc.limiter.Allow() {
		uc.log.Debug().Str("barcode", code).Msg("escaneo descartado por enfriamiento")
		return &Result{Outcome: OutcomeThrottled, Barcode: code}, nil
	}

	code = barcode.Normalize(code)
	if !barcode.IsValid(code) {
		uc.log.Warn().Str("barcode", code).Msg("código de barras inválido")
		return &Result{Outcome: OutcomeInvalid, Barcode: code}, nil
	}

	lookup, err := uc.inventory.CheckBarcode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("scanner: consultar código %s: %w", code, err)
	}
	if !lookup.Found {
		return &Result{Outcome: OutcomeNotFound, Barcode: code}, nil
	}
	return &Result{Outcome: OutcomeFound, Barcode: code, Product: lookup.Product}, nil
}
