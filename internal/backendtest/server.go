// Package backendtest levanta una implementación en memoria del backend REST
// de inventario para los tests: mismos recursos y misma semántica JSON que el
// backend real (json-server), servidos por Fiber en un puerto efímero.
package backendtest

import (
	"fmt"
	"net"
	"sync"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/almacen-movil/internal/domain/entity"
)

// Server backend de inventario en memoria. Seguro para uso concurrente.
type Server struct {
	app      *fiber.App
	listener net.Listener

	mu            sync.Mutex
	products      []entity.Product
	nextProductID int
	warehousemans []entity.Warehouseman
	statistics    entity.Statistics
}

// New arranca el backend falso en 127.0.0.1 con puerto efímero.
// El llamador debe invocar Close al terminar.
func New() (*Server, error) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, fmt.Errorf("backendtest: abrir listener: %w", err)
	}

	s := &Server{
		listener:      ln,
		nextProductID: 1,
		statistics: entity.Statistics{
			MostAddedProducts:   []entity.ProductStat{},
			MostRemovedProducts: []entity.ProductStat{},
		},
	}

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	s.routes(app)
	s.app = app

	go func() {
		// Termina al cerrar el listener vía Close.
		_ = app.Listener(ln)
	}()
	return s, nil
}

// URL base del backend, ej. "http://127.0.0.1:49321".
func (s *Server) URL() string {
	return "http://" + s.listener.Addr().String()
}

// Close apaga el servidor.
func (s *Server) Close() {
	_ = s.app.Shutdown()
	// Shutdown es un no-op si app.Listener aún no arrancó; cerrar el listener
	// garantiza que el puerto quede realmente inaccesible.
	_ = s.listener.Close()
}

// ── Siembra de datos ──────────────────────────────────────────────────────────

// SeedProducts reemplaza el catálogo. Los productos sin ID reciben uno.
func (s *Server) SeedProducts(products ...entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = nil
	for _, p := range products {
		if p.ID == 0 {
			p.ID = s.nextProductID
		}
		if p.ID >= s.nextProductID {
			s.nextProductID = p.ID + 1
		}
		s.products = append(s.products, p)
	}
}

// SeedWarehousemans reemplaza la lista de almaceneros.
func (s *Server) SeedWarehousemans(users ...entity.Warehouseman) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.warehousemans = users
}

// SeedStatistics fija el agregado de estadísticas.
func (s *Server) SeedStatistics(statistics entity.Statistics) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statistics = statistics
}

// Statistics devuelve una copia del agregado vigente.
func (s *Server) Statistics() entity.Statistics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statistics
}

// Products devuelve una copia del catálogo vigente.
func (s *Server) Products() []entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Product, len(s.products))
	copy(out, s.products)
	return out
}

// ── Rutas ─────────────────────────────────────────────────────────────────────

func (s *Server) routes(app *fiber.App) {
	app.Get("/products", s.listProducts)
	app.Get("/products/:id", s.getProduct)
	app.Post("/products", s.createProduct)
	app.Patch("/products/:id", s.patchProduct)
	app.Delete("/products/:id", s.deleteProduct)

	app.Get("/warehousemans", s.listWarehousemans)
	app.Get("/warehousemans/:id", s.getWarehouseman)

	app.Get("/statistics", s.getStatistics)
	app.Put("/statistics", s.putStatistics)
}

func (s *Server) listProducts(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// json-server filtra por igualdad exacta con ?barcode=
	if code := c.Query("barcode"); code != "" {
		matches := []entity.Product{}
		for _, p := range s.products {
			if p.Barcode == code {
				matches = append(matches, p)
			}
		}
		return c.JSON(matches)
	}

	out := s.products
	if out == nil {
		out = []entity.Product{}
	}
	return c.JSON(out)
}

func (s *Server) getProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			return c.JSON(p)
		}
	}
	return c.SendStatus(fiber.StatusNotFound)
}

func (s *Server) createProduct(c *fiber.Ctx) error {
	var p entity.Product
	if err := c.BodyParser(&p); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.nextProductID
	s.nextProductID++
	s.products = append(s.products, p)
	return c.Status(fiber.StatusCreated).JSON(p)
}

func (s *Server) patchProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		// Semántica PATCH de json-server: los campos presentes en el cuerpo
		// sobrescriben los del documento almacenado.
		patched := s.products[i]
		if err := c.BodyParser(&patched); err != nil {
			return c.SendStatus(fiber.StatusBadRequest)
		}
		patched.ID = id
		s.products[i] = patched
		return c.JSON(patched)
	}
	return c.SendStatus(fiber.StatusNotFound)
}

func (s *Server) deleteProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return c.JSON(fiber.Map{})
		}
	}
	return c.SendStatus(fiber.StatusNotFound)
}

func (s *Server) listWarehousemans(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.warehousemans
	if out == nil {
		out = []entity.Warehouseman{}
	}
	return c.JSON(out)
}

func (s *Server) getWarehouseman(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.warehousemans {
		if u.ID == id {
			return c.JSON(u)
		}
	}
	return c.SendStatus(fiber.StatusNotFound)
}

func (s *Server) getStatistics(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(s.statistics)
}

func (s *Server) putStatistics(c *fiber.Ctx) error {
	var statistics entity.Statistics
	if err := c.BodyParser(&statistics); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statistics = statistics
	return c.JSON(statistics)
}
