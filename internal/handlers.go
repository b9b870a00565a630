package internal

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/DrGermanius/Zencoo/internal/model"
)

type Handlers struct {
	Service IService
	logger  *zap.SugaredLogger
}

func NewHandlers(Service IService, logger *zap.SugaredLogger) *Handlers {
	return &Handlers{Service: Service, logger: logger}
}

// Routes mounts the API on app. auth guards the order endpoints.
func (h *Handlers) Routes(app *fiber.App, auth fiber.Handler) {
	api := app.Group("/api")

	a := api.Group("/auth")
	a.Post("/register", h.Register)
	a.Post("/login", h.Login)
	a.Get("/check-email", h.CheckEmail)
	a.Get("/check-username", h.CheckUsername)

	orders := api.Group("/orders", auth)
	orders.Get("/placed", h.GetPlacedOrders)
	orders.Delete("/placed/:id", h.CancelPlacedOrder)
	orders.Get("/received", h.GetReceivedOrders)
	orders.Post("/received/:id/:action", h.ReceivedOrderAction)
}

func (h *Handlers) Login(c *fiber.Ctx) error {
	var i model.LoginInput

	if err := c.BodyParser(&i); err != nil {
		h.logger.Errorf("Error on login request: %s", err.Error())
		return c.SendStatus(fiber.StatusBadRequest)
	}

	t, err := h.Service.Login(c.Context(), i.Email, i.Password)
	if err != nil {
		h.logger.Errorf("Error on login request: %s", err.Error())
		if errors.Is(err, ErrInvalidCredentials) {
			return errorResponse(c, fiber.StatusUnauthorized, "Error on login request", err)
		}
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	setAuthCookie(c, t)
	return c.Status(fiber.StatusOK).JSON(model.TokenOutput{Token: t})
}

func (h *Handlers) Register(c *fiber.Ctx) error {
	var i model.RegisterInput

	if err := c.BodyParser(&i); err != nil {
		h.logger.Errorf("Error on register request: %s", err.Error())
		return c.SendStatus(fiber.StatusBadRequest)
	}

	t, err := h.Service.Register(c.Context(), i)
	if err != nil {
		h.logger.Errorf("Error on register request: %s", err.Error())
		switch {
		case errors.Is(err, ErrInvalidRegistration):
			return errorResponse(c, fiber.StatusBadRequest, "Error on register request", err)
		case errors.Is(err, ErrEmailIsAlreadyRegistered), errors.Is(err, ErrUsernameIsAlreadyTaken):
			return errorResponse(c, fiber.StatusConflict, "Error on register request", err)
		}
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	setAuthCookie(c, t)
	return c.Status(fiber.StatusOK).JSON(model.TokenOutput{Token: t})
}

func (h *Handlers) CheckEmail(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	exists, err := h.Service.IsEmailRegistered(c.Context(), email)
	if err != nil {
		h.logger.Errorf("Error on check email request: %s", err.Error())
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"exists": exists})
}

func (h *Handlers) CheckUsername(c *fiber.Ctx) error {
	username := c.Query("username")
	if username == "" {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	unique, err := h.Service.IsUsernameUnique(c.Context(), username)
	if err != nil {
		h.logger.Errorf("Error on check username request: %s", err.Error())
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"unique": unique})
}

func (h *Handlers) GetPlacedOrders(c *fiber.Ctx) error {
	orders := h.Service.GetPlacedOrders()
	if len(orders) == 0 {
		return c.SendStatus(fiber.StatusNoContent)
	}

	return c.Status(fiber.StatusOK).JSON(orders)
}

func (h *Handlers) GetReceivedOrders(c *fiber.Ctx) error {
	orders := h.Service.GetReceivedOrders()
	if len(orders) == 0 {
		return c.SendStatus(fiber.StatusNoContent)
	}

	return c.Status(fiber.StatusOK).JSON(orders)
}

func (h *Handlers) ReceivedOrderAction(c *fiber.Ctx) error {
	id := c.Params("id")
	action := model.Action(c.Params("action"))

	o, err := h.Service.ApplyReceivedAction(id, action)
	if err != nil {
		h.logger.Errorf("Error on %s order request [%s]: %s", action, correlationIDFrom(c), err.Error())
		return orderErrorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(model.ReceivedOrderOutput{
		ReceivedOrder: o,
		Actions:       model.ReceivedActions(o.Status),
	})
}

func (h *Handlers) CancelPlacedOrder(c *fiber.Ctx) error {
	confirmed, _ := strconv.ParseBool(c.Query("confirm"))

	err := h.Service.CancelPlacedOrder(c.Params("id"), ConfirmFunc(func(string) bool {
		return confirmed
	}))
	if err != nil {
		h.logger.Errorf("Error on cancel order request [%s]: %s", correlationIDFrom(c), err.Error())
		return orderErrorResponse(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func orderErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrOrderNotFound):
		return errorResponse(c, fiber.StatusNotFound, "Error on order request", err)
	case errors.Is(err, ErrIllegalTransition):
		return errorResponse(c, fiber.StatusConflict, "Error on order request", err)
	case errors.Is(err, ErrUnknownAction), errors.Is(err, ErrCancellationDeclined):
		return errorResponse(c, fiber.StatusBadRequest, "Error on order request", err)
	}
	return errorResponse(c, fiber.StatusInternalServerError, "Error on order request", err)
}

func errorResponse(c *fiber.Ctx, status int, message string, err error) error {
	return c.Status(status).JSON(fiber.Map{"status": "error", "message": message, "data": err.Error()})
}

func setAuthCookie(c *fiber.Ctx, token string) {
	cookie := &fiber.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(tokenTTL),
		HTTPOnly: true,
	}

	c.Cookie(cookie)
}
