package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-movil/internal/application/auth"
	"github.com/tu-usuario/almacen-movil/internal/backendtest"
	"github.com/tu-usuario/almacen-movil/internal/domain"
	"github.com/tu-usuario/almacen-movil/internal/domain/entity"
	"github.com/tu-usuario/almacen-movil/internal/infrastructure/rest"
	"github.com/tu-usuario/almacen-movil/pkg/logger"
)

func newAuthUseCase(t *testing.T) *auth.UseCase {
	t.Helper()
	server, err := backendtest.New()
	require.NoError(t, err)
	t.Cleanup(server.Close)

	server.SeedWarehousemans(
		entity.Warehouseman{ID: 1, Name: "Hamza", SecretKey: "AH90907J", WarehouseID: 1999},
		entity.Warehouseman{ID: 2, Name: "Amina", SecretKey: "XK12345P", WarehouseID: 2991},
	)

	client := rest.NewClient(server.URL(), 5*time.Second, logger.Nop())
	return auth.NewUseCase(rest.NewWarehousemanRepository(client), logger.Nop())
}

func TestLogin_ClaveCorrecta(t *testing.T) {
	uc := newAuthUseCase(t)

	session, err := uc.Login(context.Background(), "XK12345P")

	require.NoError(t, err)
	assert.Equal(t, "Amina", session.Warehouseman.Name)
	assert.Equal(t, 2991, session.Warehouseman.WarehouseID)
	assert.False(t, session.LoggedInAt.IsZero())
}

// Clave desconocida → resultado distinguible, no un fallo genérico.
func TestLogin_ClaveDesconocida(t *testing.T) {
	uc := newAuthUseCase(t)

	_, err := uc.Login(context.Background(), "nope")

	assert.ErrorIs(t, err, domain.ErrInvalidSecretKey)
}

// Clave vacía se rechaza antes de tocar la red.
func TestLogin_ClaveVaciaEsValidacion(t *testing.T) {
	uc := newAuthUseCase(t)

	_, err := uc.Login(context.Background(), "   ")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Ciclo de vida de la sesión: Login la crea, Logout la destruye.
func TestSession_CicloDeVida(t *testing.T) {
	uc := newAuthUseCase(t)

	_, err := uc.Current()
	assert.ErrorIs(t, err, domain.ErrNoSession, "sin login no hay sesión")

	_, err = uc.Login(context.Background(), "AH90907J")
	require.NoError(t, err)

	current, err := uc.Current()
	require.NoError(t, err)
	assert.Equal(t, "Hamza", current.Warehouseman.Name)

	uc.Logout()
	_, err = uc.Current()
	assert.ErrorIs(t, err, domain.ErrNoSession)

	// Logout es idempotente
	uc.Logout()
}
