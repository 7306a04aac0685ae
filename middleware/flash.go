package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const flashCookie = "flash"

// Flash is a one-shot message shown on the next rendered view. It rides a
// short-lived JWT cookie signed with the session secret, so the client
// cannot forge levels or text.
type Flash struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// SetFlash stores a flash message for the next request.
func SetFlash(c *fiber.Ctx, secret, level, message string) {
	claims := jwt.MapClaims{
		"lvl": level,
		"msg": message,
		"exp": time.Now().Add(5 * time.Minute).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return
	}
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    signed,
		HTTPOnly: true,
		Expires:  time.Now().Add(5 * time.Minute),
	})
}

// PopFlash returns the pending flash message, if any, and clears it.
func PopFlash(c *fiber.Ctx, secret string) *Flash {
	value := c.Cookies(flashCookie)
	if value == "" {
		return nil
	}
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    "",
		HTTPOnly: true,
		Expires:  time.Now().Add(-time.Hour),
	})

	token, err := jwt.Parse(value, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}
	level, _ := claims["lvl"].(string)
	message, _ := claims["msg"].(string)
	return &Flash{Level: level, Message: message}
}
