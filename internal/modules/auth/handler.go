package auth

import (
	"errors"
	"net/http"

	"favoritesapi/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler manages the HTTP side of authentication.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/login", h.Login)
}

// RegisterProtectedRoutes attaches the routes that need a valid token.
func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/me", h.Me)
}

// Login авторизует клиента и выдаёт JWT токен.
// @Summary		Войти в аккаунт
// @Description	Авторизует клиента по email и паролю и возвращает bearer токен для защищённых эндпоинтов.
// @Tags		Auth
// @Param		request	body	LoginRequest	true	"Учётные данные (email, password)"
// @Success		200	{object}	map[string]interface{} "Успешная авторизация, возвращается токен"
// @Failure		400	{object}	map[string]interface{} "Неверный формат данных"
// @Failure		401	{object}	map[string]interface{} "Неверный email или пароль"
// @Router		/login [POST]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	client, token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Email or password is incorrect")
			return
		}
		response.Error(c, http.StatusInternalServerError, "LOGIN_FAILED", "Failed to login")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"client": ClientPublic{
			ID:    client.ID,
			Name:  client.Name,
			Email: client.Email,
			Role:  string(client.Role),
		},
		"token": token,
	})
}

// Me возвращает авторизованного клиента по токену.
// @Summary		Текущий клиент
// @Description	Возвращает данные клиента, которому принадлежит bearer токен.
// @Tags		Auth
// @Security	BearerAuth
// @Success		200	{object}	map[string]interface{} "Данные текущего клиента"
// @Failure		401	{object}	map[string]interface{} "Токен недействителен или клиент удалён"
// @Router		/me [GET]
func (h *Handler) Me(c *gin.Context) {
	client, err := h.service.Me(c.Request.Context(), c.GetInt64("client_id"))
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Client no longer exists")
			return
		}
		response.Error(c, http.StatusInternalServerError, "LOOKUP_FAILED", "Failed to load client")
		return
	}

	response.Success(c, http.StatusOK, ClientPublic{
		ID:    client.ID,
		Name:  client.Name,
		Email: client.Email,
		Role:  string(client.Role),
	})
}
