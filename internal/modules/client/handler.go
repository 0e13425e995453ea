package client

import (
	"errors"
	"net/http"
	"strconv"

	"favoritesapi/internal/domain"
	"favoritesapi/internal/pkg/response"
	"favoritesapi/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

// Handler manages HTTP requests for client accounts.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	clients := rg.Group("/clients")
	{
		clients.GET("", h.List)
		clients.POST("", h.Create)
		clients.GET("/:id", h.Get)
		clients.PUT("/:id", h.Update)
		clients.DELETE("/:id", h.Delete)
	}
}

// List возвращает всех клиентов.
// @Summary		Листинг клиентов
// @Description	Возвращает список всех клиентов. Доступен любому авторизованному клиенту.
// @Tags		Clients
// @Security	BearerAuth
// @Success		200	{object}	map[string]interface{} "Список клиентов"
// @Router		/clients [GET]
func (h *Handler) List(c *gin.Context) {
	clients, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list clients")
		return
	}
	response.Success(c, http.StatusOK, ToClientListResponse(clients))
}

// Create создаёт нового клиента.
// @Summary		Создать клиента
// @Description	Создаёт клиента с обязательными name и email; email должен быть уникальным.
// @Tags		Clients
// @Security	BearerAuth
// @Param		request	body	CreateClientRequest	true	"Данные клиента"
// @Success		201	{object}	map[string]interface{} "Клиент создан"
// @Failure		422	{object}	map[string]interface{} "Ошибка валидации или email занят"
// @Router		/clients [POST]
func (h *Handler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", fields)
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailTaken):
			response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed",
				map[string]string{"email": "already in use"})
		case errors.Is(err, ErrInvalidRole):
			response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed",
				map[string]string{"role": "must be manager or user"})
		default:
			response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create client")
		}
		return
	}

	response.Success(c, http.StatusCreated, ToClientResponse(created))
}

// Get возвращает одного клиента по id.
// @Summary		Получить клиента
// @Description	Возвращает данные клиента. Менеджер видит любого, обычный клиент — только себя.
// @Tags		Clients
// @Security	BearerAuth
// @Param		id	path	int64	true	"ID клиента"
// @Success		200	{object}	map[string]interface{} "Данные клиента"
// @Failure		403	{object}	map[string]interface{} "Доступ запрещён"
// @Failure		404	{object}	map[string]interface{} "Клиент не найден"
// @Router		/clients/{id} [GET]
func (h *Handler) Get(c *gin.Context) {
	h.withAuthorizedTarget(c, CapabilityView, func(target *domain.Client) {
		response.Success(c, http.StatusOK, ToClientResponse(target))
	})
}

// Update обновляет имя и email клиента.
// @Summary		Обновить клиента
// @Description	Обновляет данные клиента с повторной проверкой уникальности email (своя текущая почта допускается).
// @Tags		Clients
// @Security	BearerAuth
// @Param		id	path	int64	true	"ID клиента"
// @Param		request	body	UpdateClientRequest	true	"Новые данные"
// @Success		200	{object}	map[string]interface{} "Клиент обновлён"
// @Failure		403	{object}	map[string]interface{} "Доступ запрещён"
// @Failure		404	{object}	map[string]interface{} "Клиент не найден"
// @Failure		422	{object}	map[string]interface{} "Ошибка валидации или email занят"
// @Router		/clients/{id} [PUT]
func (h *Handler) Update(c *gin.Context) {
	h.withAuthorizedTarget(c, CapabilityUpdate, func(target *domain.Client) {
		var req UpdateClientRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid request body")
			return
		}
		if fields := validator.Validate(req); fields != nil {
			response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", fields)
			return
		}

		updated, err := h.service.Update(c.Request.Context(), target.ID, req)
		if err != nil {
			switch {
			case errors.Is(err, ErrClientNotFound):
				response.Error(c, http.StatusNotFound, "NOT_FOUND", "Client not found")
			case errors.Is(err, ErrEmailTaken):
				response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed",
					map[string]string{"email": "already in use"})
			default:
				response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update client")
			}
			return
		}

		response.Success(c, http.StatusOK, ToClientResponse(updated))
	})
}

// Delete удаляет клиента и все его избранные товары.
// @Summary		Удалить клиента
// @Description	Удаляет клиента; его избранное удаляется каскадно.
// @Tags		Clients
// @Security	BearerAuth
// @Param		id	path	int64	true	"ID клиента"
// @Success		204	"Клиент удалён"
// @Failure		403	{object}	map[string]interface{} "Доступ запрещён"
// @Failure		404	{object}	map[string]interface{} "Клиент не найден"
// @Router		/clients/{id} [DELETE]
func (h *Handler) Delete(c *gin.Context) {
	h.withAuthorizedTarget(c, CapabilityDelete, func(target *domain.Client) {
		if err := h.service.Delete(c.Request.Context(), target.ID); err != nil {
			if errors.Is(err, ErrClientNotFound) {
				response.Error(c, http.StatusNotFound, "NOT_FOUND", "Client not found")
				return
			}
			response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete client")
			return
		}
		response.NoContent(c)
	})
}

// withAuthorizedTarget parses the path id, loads the target client and
// runs the policy before handing control to the action. NotFound is
// reported before Forbidden so probing ids behaves the same for
// everyone.
func (h *Handler) withAuthorizedTarget(c *gin.Context, capability Capability, action func(target *domain.Client)) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Client not found")
		return
	}

	target, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrClientNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Client not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "LOOKUP_FAILED", "Failed to load client")
		return
	}

	actorID := c.GetInt64("client_id")
	actorRole := domain.Role(c.GetString("role"))
	if !Allowed(actorID, actorRole, target, capability) {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
		return
	}

	action(target)
}
