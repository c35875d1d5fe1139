package logsauth

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"sekolahku_backend/internals/configs"
	helper "sekolahku_backend/internals/helpers"
)

const cookieName = "logs_ok"

// CheckPassword mencocokkan password halaman logs.
// Prioritas: LOGS_PASSWORD_HASH (bcrypt); fallback LOGS_PASSWORD plain (dev).
func CheckPassword(input string) bool {
	input = strings.TrimSpace(input)
	if input == "" {
		return false
	}
	if configs.LogsPasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(configs.LogsPasswordHash), []byte(input)) == nil
	}
	if configs.LogsPassword != "" {
		return input == configs.LogsPassword
	}
	return false
}

// IssueSession bikin cookie sesi (JWT HS256) setelah password cocok.
func IssueSession(c *fiber.Ctx) error {
	now := time.Now()
	claims := jwt.MapClaims{
		"scope": "logs",
		"iat":   now.Unix(),
		"exp":   now.Add(configs.LogsSessionTTL).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(configs.LogsSessionSecret))
	if err != nil {
		log.Printf("logs_auth: gagal menandatangani sesi: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat sesi")
	}

	c.Cookie(&fiber.Cookie{
		Name:     cookieName,
		Value:    signed,
		Expires:  now.Add(configs.LogsSessionTTL),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	return nil
}

// RequireLogsSession menjaga endpoint /api/logs/*: tanpa cookie sesi valid → 401.
func RequireLogsSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Cookies(cookieName))
		if raw == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Login halaman logs dulu")
		}

		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(configs.LogsSessionSecret), nil
		})
		if err != nil || !tok.Valid {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Sesi logs tidak valid / kedaluwarsa")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok || claims["scope"] != "logs" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Sesi logs tidak valid")
		}

		return c.Next()
	}
}
