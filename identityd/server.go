// Package identityd is a development identity store serving the HTTP
// surface the library consumes: POST /users and GET /users?username=.
// It stores digests exactly as received and returns them on reads, the
// same contract the production store exposes. It is a fixture for
// development and integration tests, not a hardened identity provider.
package identityd

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v3"

	"github.com/centavo/centavo/core"
)

type Server struct {
	app     *fiber.App
	storage UserStorage
	log     *slog.Logger
}

func NewServer(storage UserStorage, log *slog.Logger) *Server {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	s := &Server{
		app:     fiber.New(),
		storage: storage,
		log:     log,
	}

	s.app.Post("/users", s.createUser)
	s.app.Get("/users", s.findUsers)

	return s
}

// App exposes the underlying fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) createUser(c fiber.Ctx) error {
	var reg core.Registration
	if err := c.Bind().Body(&reg); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]string{
			"error": "invalid request body",
		})
	}

	if reg.FirstName == "" || reg.LastName == "" || reg.Username == "" || reg.Password == "" {
		return c.Status(http.StatusBadRequest).JSON(map[string]string{
			"error": "firstName, lastName, username and password are required",
		})
	}

	record := &core.UserRecord{
		User: core.User{
			FirstName: reg.FirstName,
			LastName:  reg.LastName,
			Username:  reg.Username,
		},
		Password: reg.Password,
	}

	if err := s.storage.CreateUser(c.Context(), record); err != nil {
		if errors.Is(err, core.ErrUserExists) {
			return c.Status(http.StatusConflict).JSON(map[string]string{
				"error": err.Error(),
			})
		}
		s.log.ErrorContext(c.Context(), "create user failed", "error", err)
		return c.Status(http.StatusInternalServerError).JSON(map[string]string{
			"error": "internal error",
		})
	}

	s.log.InfoContext(c.Context(), "user created", "username", record.Username, "id", record.ID)
	return c.Status(http.StatusCreated).JSON(record)
}

func (s *Server) findUsers(c fiber.Ctx) error {
	username := c.Query("username")
	if username == "" {
		return c.Status(http.StatusBadRequest).JSON(map[string]string{
			"error": "username query parameter is required",
		})
	}

	records, err := s.storage.FindByUsername(c.Context(), username)
	if err != nil {
		s.log.ErrorContext(c.Context(), "find users failed", "error", err)
		return c.Status(http.StatusInternalServerError).JSON(map[string]string{
			"error": "internal error",
		})
	}

	return c.Status(http.StatusOK).JSON(records)
}
