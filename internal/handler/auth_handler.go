package handler

import (
	"net/http"
	"time"
)

// AuthHandler は認証 Cookie の後始末を行う。トークンの発行は外部のログイン基盤が担う。
type AuthHandler struct {
	cookieName string
	secure     bool
}

// NewAuthHandler creates an AuthHandler for the given session cookie.
func NewAuthHandler(cookieName string, secure bool) *AuthHandler {
	return &AuthHandler{cookieName: cookieName, secure: secure}
}

// Logout はセッション Cookie を削除する（POST /api/auth/logout）
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Unix(0, 0),
	})
	writeJSON(w, http.StatusOK, successBody)
}
