package demo

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"
)

// allowedOrigins is the fixed cross-origin allow-list: the local frontend
// and backend hosts, nothing else.
var allowedOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
	"http://localhost:8000",
	"http://127.0.0.1:8000",
}

// App bundles the demo's store and fetcher behind a Fiber app. The store
// is owned by the instance, never process-wide.
type App struct {
	store   *Store
	fetcher *Fetcher
}

func NewApp(store *Store, fetcher *Fetcher) *fiber.App {
	a := &App{
		store:   store,
		fetcher: fetcher,
	}

	app := fiber.New()

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{fiber.MethodGet, fiber.MethodPost, fiber.MethodPut, fiber.MethodDelete},
		AllowCredentials: true,
	}))

	app.Get("/", a.root)
	app.Get("/users", a.list)
	app.Post("/users", a.create)
	app.Get("/users/:id", a.get)
	app.Put("/users/:id", a.update)
	app.Delete("/users/:id", a.remove)
	app.Get("/external-data", a.externalData)
	app.Get("/weather/:city", a.weather)
	app.Get("/health", a.health)

	return app
}

func (a *App) root(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "welcome to the rosterd demo API",
	})
}

func (a *App) list(c fiber.Ctx) error {
	users := a.store.List()
	if users == nil {
		users = []*User{}
	}
	return c.JSON(users)
}

func (a *App) get(c fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return notFound(c)
	}

	user, err := a.store.Get(id)
	if err != nil {
		return notFound(c)
	}
	return c.JSON(user)
}

func (a *App) create(c fiber.Ctx) error {
	var input UserInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	user, err := a.store.Create(input)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(http.StatusCreated).JSON(user)
}

func (a *App) update(c fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return notFound(c)
	}

	var input UserInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	user, err := a.store.Update(id, input)
	if err != nil {
		return notFound(c)
	}
	return c.JSON(user)
}

func (a *App) remove(c fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return notFound(c)
	}

	user, err := a.store.Delete(id)
	if err != nil {
		return notFound(c)
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("user %s deleted", user.Username),
	})
}

func (a *App) externalData(c fiber.Ctx) error {
	return c.JSON(a.fetcher.ExternalData(context.Background()))
}

func (a *App) weather(c fiber.Ctx) error {
	city := c.Params("city")

	data, err := a.fetcher.Weather(context.Background(), city)
	if err != nil {
		return c.Status(http.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"city":    city,
		"weather": data,
	})
}

func (a *App) health(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":      "healthy",
		"timestamp":   time.Now().Format(time.RFC3339),
		"users_count": a.store.Len(),
	})
}

func notFound(c fiber.Ctx) error {
	return c.Status(http.StatusNotFound).JSON(fiber.Map{
		"error": "user not found",
	})
}
