// Package auth implementa el login del almacenero por clave secreta y el
// ciclo de vida explícito de la sesión.
package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tu-usuario/almacen-movil/internal/domain"
	"github.com/tu-usuario/almacen-movil/internal/domain/entity"
	"github.com/tu-usuario/almacen-movil/internal/domain/repository"
	"github.com/tu-usuario/almacen-movil/pkg/logger"
)

// Session principal de la sesión activa. Se crea en Login, se destruye en
// Logout y se pasa explícitamente a los casos de uso que necesitan la
// identidad del editor; no hay estado global ambiente.
type Session struct {
	Warehouseman entity.Warehouseman
	LoggedInAt   time.Time
}

// UseCase caso de uso de autenticación. El "login" es una búsqueda de la
// clave secreta en texto plano sobre la lista de almaceneros del backend;
// no existen tokens ni expiración (así lo define el backend).
type UseCase struct {
	users   repository.WarehousemanRepository
	log     *logger.Logger
	current *Session
}

// NewUseCase construye el caso de uso.
func NewUseCase(users repository.WarehousemanRepository, log *logger.Logger) *UseCase {
	return &UseCase{users: users, log: log}
}

// Login busca un almacenero cuya clave secreta coincida exactamente.
// Si ninguno coincide devuelve domain.ErrInvalidSecretKey (resultado
// distinguible, no un fallo de red).
func (uc *UseCase) Login(ctx context.Context, secretKey string) (*Session, error) {
	secretKey = strings.TrimSpace(secretKey)
	if secretKey == "" {
		return nil, domain.NewValidationError("secretKey", "es requerida")
	}

	users, err := uc.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("auth: listar almaceneros: %w", err)
	}

	for _, u := range users {
		if u.SecretKey == secretKey {
			session := &Session{Warehouseman: u, LoggedInAt: time.Now()}
			uc.current = session
			uc.log.Info().
				Int("warehouseman_id", u.ID).
				Str("name", u.Name).
				Msg("sesión iniciada")
			return session, nil
		}
	}

	uc.log.Warn().Msg("intento de login con clave secreta desconocida")
	return nil, domain.ErrInvalidSecretKey
}

// Current devuelve la sesión activa o domain.ErrNoSession.
func (uc *UseCase) Current() (*Session, error) {
	if uc.current == nil {
		return nil, domain.ErrNoSession
	}
	return uc.current, nil
}

// Logout destruye la sesión activa. Idempotente.
func (uc *UseCase) Logout() {
	if uc.current != nil {
		uc.log.Info().
			Int("warehouseman_id", uc.current.Warehouseman.ID).
			Msg("sesión cerrada")
	}
	uc.current = nil
}
