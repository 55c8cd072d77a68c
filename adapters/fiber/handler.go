package fiber

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"github.com/pverales/rosterd/core"
)

func (a *Adapter) create(c fiber.Ctx) error {
	var input core.CreateUserInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	user, err := a.users.Create(input)
	if err != nil {
		return a.handleError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(user)
}

type loginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// login authenticates the credentials and mints a session. The raw token is
// returned once; only its hash is stored.
func (a *Adapter) login(c fiber.Ctx) error {
	var input loginInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	user, err := a.users.Authenticate(input.Username, input.Password)
	if err != nil {
		return a.handleError(c, err)
	}

	result, err := a.sessions.Create(user.ID, c.IP(), c.Get(fiber.HeaderUserAgent))
	if err != nil {
		return a.handleError(c, err)
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"user":    user,
		"session": result.Session,
		"token":   result.Token,
	})
}

func (a *Adapter) logout(c fiber.Ctx) error {
	token := extractToken(c)
	if err := a.sessions.Destroy(token); err != nil {
		return a.handleError(c, err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "signed out successfully",
	})
}

func (a *Adapter) list(c fiber.Ctx) error {
	users, err := a.users.List(callerSession(c))
	if err != nil {
		return a.handleError(c, err)
	}
	if users == nil {
		users = []*core.User{}
	}
	return c.Status(http.StatusOK).JSON(users)
}

func (a *Adapter) get(c fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return a.handleError(c, err)
	}

	user, err := a.users.Get(callerSession(c), id)
	if err != nil {
		return a.handleError(c, err)
	}
	return c.Status(http.StatusOK).JSON(user)
}

func (a *Adapter) update(c fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return a.handleError(c, err)
	}

	var input core.UpdateUserInput
	if err := c.Bind().Body(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	user, err := a.users.Update(callerSession(c), id, input)
	if err != nil {
		return a.handleError(c, err)
	}
	return c.Status(http.StatusOK).JSON(user)
}

func (a *Adapter) remove(c fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return a.handleError(c, err)
	}

	username, err := a.users.Delete(callerSession(c), id)
	if err != nil {
		return a.handleError(c, err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message":  fmt.Sprintf("user %s deleted", username),
		"username": username,
	})
}

func (a *Adapter) verify(c fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return a.handleError(c, err)
	}

	user, err := a.users.Verify(callerSession(c), id)
	if err != nil {
		return a.handleError(c, err)
	}
	return c.Status(http.StatusOK).JSON(user)
}

func (a *Adapter) me(c fiber.Ctx) error {
	user, err := a.users.Whoami(callerSession(c))
	if err != nil {
		return a.handleError(c, err)
	}
	return c.Status(http.StatusOK).JSON(user)
}

var errBadUserID = errors.New("invalid user id")

func parseID(c fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, errBadUserID
	}
	return id, nil
}

// callerSession returns the session placed in the request context by
// requireAuth, or nil for an unauthenticated request.
func callerSession(c fiber.Ctx) *core.Session {
	s, _ := c.Locals("session").(*core.Session)
	return s
}

// handleError maps domain errors to HTTP responses
func (a *Adapter) handleError(c fiber.Ctx, err error) error {
	status := mapErrorToStatus(err)
	if status == http.StatusInternalServerError {
		a.log.Error("request failed", zap.Error(err), zap.String("path", c.Path()))
		return c.Status(status).JSON(fiber.Map{
			"error": "internal server error",
		})
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// mapErrorToStatus maps domain error kinds to HTTP status codes
func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, core.ErrUserNotFound):
		return http.StatusNotFound

	case errors.Is(err, core.ErrInvalidCredentials),
		errors.Is(err, core.ErrUnauthorized),
		errors.Is(err, core.ErrMissingAuthHeader),
		errors.Is(err, core.ErrInvalidToken),
		errors.Is(err, core.ErrSessionNotFound),
		errors.Is(err, core.ErrSessionExpired):
		return http.StatusUnauthorized

	case errors.Is(err, core.ErrUsernameTaken),
		errors.Is(err, core.ErrEmailTaken),
		errors.Is(err, core.ErrMissingCredentials),
		errors.Is(err, core.ErrUsernameRequired),
		errors.Is(err, core.ErrEmailRequired),
		errors.Is(err, core.ErrInvalidEmail),
		errors.Is(err, core.ErrPasswordRequired),
		errors.Is(err, core.ErrPasswordTooShort),
		errors.Is(err, core.ErrPasswordTooLong),
		errors.Is(err, core.ErrPasswordMismatch),
		errors.Is(err, core.ErrUsernameTooLong),
		errors.Is(err, core.ErrBioTooLong),
		errors.Is(err, core.ErrPhoneTooLong),
		errors.Is(err, errBadUserID):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}
