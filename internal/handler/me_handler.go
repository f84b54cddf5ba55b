package handler

import (
	"net/http"

	"github.com/alams-innovative/delta-dashbaord-fawad-sub001/internal/service"
)

// MeHandler は現在のユーザー情報を返すハンドラ
type MeHandler struct {
	userService service.UserService
}

// NewMeHandler は MeHandler を生成する
func NewMeHandler(userService service.UserService) *MeHandler {
	return &MeHandler{userService: userService}
}

// meResponse は GET /api/me のレスポンス
type meResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Me は GET /api/me を処理する
func (h *MeHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.Current(r.Context())
	if err != nil {
		writeServiceError(w, r, "resolve current user", err)
		return
	}
	writeJSON(w, http.StatusOK, meResponse{
		ID:    user.ID.String(),
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	})
}
