package jwttoken

import (
	authmw "retention/pkg/platform/middleware/auth"
)

// JWTServiceAdapter lets the auth middleware validate tokens without
// depending on this package's claim type.
type JWTServiceAdapter struct {
	service *JWTService
}

func NewJWTServiceAdapter(service *JWTService) *JWTServiceAdapter {
	return &JWTServiceAdapter{service: service}
}

// ValidateToken maps the claims onto the middleware's view. Tokens minted
// elsewhere may carry only "sub", which then stands in for user_id.
func (a *JWTServiceAdapter) ValidateToken(tokenString string) (*authmw.JWTClaims, error) {
	claims, err := a.service.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	userID := claims.UserID
	if userID == "" {
		userID = claims.Subject
	}
	return &authmw.JWTClaims{UserID: userID, JTI: claims.ID}, nil
}
