package helper

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var JwtSecret = []byte(os.Getenv("JWT_SECRET"))

// GateClaims is what the ticket QR carries: enough for the gate scanner to
// check a ticket in without a counter lookup form.
type GateClaims struct {
	TicketCode  string `json:"ticketCode"`
	ScreeningId uint   `json:"screeningId"`
}

// GenerateGateToken signs the gate claims for a ticket. The token expires
// with the screening, so stale QR codes stop scanning.
func GenerateGateToken(claims GateClaims, screeningEnd time.Time) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	mc := token.Claims.(jwt.MapClaims)
	mc["ticketCode"] = claims.TicketCode
	mc["screeningId"] = claims.ScreeningId
	mc["exp"] = screeningEnd.Add(time.Hour).Unix()

	return token.SignedString(JwtSecret)
}

// ParseGateToken verifies a scanned gate token and returns its claims.
func ParseGateToken(tokenString string) (GateClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return JwtSecret, nil
	})
	if err != nil {
		return GateClaims{}, err
	}
	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return GateClaims{}, errors.New("invalid gate token")
	}
	code, _ := mc["ticketCode"].(string)
	screeningId, _ := mc["screeningId"].(float64)
	if code == "" {
		return GateClaims{}, errors.New("gate token missing ticket code")
	}
	return GateClaims{TicketCode: code, ScreeningId: uint(screeningId)}, nil
}
