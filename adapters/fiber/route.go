package fiber

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"github.com/pverales/rosterd/services"
)

// Adapter maps the user resource operations onto HTTP routes.
type Adapter struct {
	app      *fiber.App
	users    *services.UserService
	sessions *services.SessionManager
	log      *zap.Logger
}

func New(app *fiber.App, users *services.UserService, sessions *services.SessionManager, log *zap.Logger) *Adapter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Adapter{
		app:      app,
		users:    users,
		sessions: sessions,
		log:      log,
	}
}

func (a *Adapter) RegisterRoutes() {
	api := a.app.Group("/users")

	// Public routes
	api.Post("/", a.create)
	api.Post("/login", a.login)

	// Protected routes. /me and /login must be registered ahead of /:id so
	// the literal segments win the match.
	api.Get("/me", a.me, a.requireAuth)
	api.Post("/logout", a.logout, a.requireAuth)
	api.Get("/", a.list, a.requireAuth)
	api.Get("/:id", a.get, a.requireAuth)
	api.Put("/:id", a.update, a.requireAuth)
	api.Patch("/:id", a.update, a.requireAuth)
	api.Delete("/:id", a.remove, a.requireAuth)
	api.Post("/:id/verify", a.verify, a.requireAuth)
}
