package internal

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	HeaderCorrelationID = "X-Correlation-ID"

	localUserID        = "uid"
	localCorrelationID = "correlationID"
)

var (
	errUnexpectedSigningMethod = errors.New("unexpected signing method")
	errNoUserID                = errors.New("token has no user id")
)

// CorrelationID keeps the caller's correlation id or makes a new one and
// echoes it back on the response.
func CorrelationID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cid := c.Get(HeaderCorrelationID)
		if cid == "" {
			cid = uuid.NewString()
		}

		c.Set(HeaderCorrelationID, cid)
		c.Locals(localCorrelationID, cid)
		return c.Next()
	}
}

func NewAuthMiddleware(secret string, logger *zap.SugaredLogger) fiber.Handler {
	key := []byte(secret)

	return func(c *fiber.Ctx) error {
		uid, err := getUserIDFromToken(c, key)
		if err != nil {
			logger.Debugf("Unauthorized request %s %s: %s", c.Method(), c.Path(), err.Error())
			return c.SendStatus(fiber.StatusUnauthorized)
		}

		c.Locals(localUserID, uid)
		return c.Next()
	}
}

func getUserIDFromToken(c *fiber.Ctx, key []byte) (int, error) {
	tokenString := c.Cookies("token")
	if h := c.Get(fiber.HeaderAuthorization); strings.HasPrefix(h, "Bearer ") {
		tokenString = strings.TrimPrefix(h, "Bearer ")
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errUnexpectedSigningMethod
		}
		return key, nil
	})
	if err != nil {
		return 0, err
	}

	id, ok := claims["id"].(string)
	if !ok {
		return 0, errNoUserID
	}
	return strconv.Atoi(id)
}

func correlationIDFrom(c *fiber.Ctx) string {
	cid, _ := c.Locals(localCorrelationID).(string)
	return cid
}
