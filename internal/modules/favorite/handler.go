package favorite

import (
	"errors"
	"net/http"
	"strconv"

	"favoritesapi/internal/catalog"
	"favoritesapi/internal/pkg/response"
	"favoritesapi/internal/pkg/validator"
	"favoritesapi/internal/repository"

	"github.com/gin-gonic/gin"
)

// Handler manages HTTP requests for favorites and the catalog
// pass-through.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	favorites := rg.Group("/clients/:id/favorites")
	{
		favorites.GET("", h.List)
		favorites.POST("", h.Create)
		favorites.DELETE("/:productId", h.Destroy)
	}

	rg.GET("/products", h.Products)
}

// List возвращает избранные товары клиента с данными из каталога.
// @Summary		Листинг избранного клиента
// @Description	Возвращает избранные товары клиента, обогащённые данными внешнего каталога. Товары, которые больше не находятся в каталоге, молча исключаются из выдачи.
// @Tags		Favorites
// @Security	BearerAuth
// @Param		id	path	int64	true	"ID клиента"
// @Success		200	{object}	map[string]interface{} "Список избранных товаров"
// @Failure		404	{object}	map[string]interface{} "Клиент не найден"
// @Router		/clients/{id}/favorites [GET]
func (h *Handler) List(c *gin.Context) {
	clientID, ok := parseClientID(c)
	if !ok {
		return
	}

	items, err := h.service.List(c.Request.Context(), clientID)
	if err != nil {
		if errors.Is(err, ErrClientNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Client not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to list favorites")
		return
	}

	response.Success(c, http.StatusOK, items)
}

// Create добавляет товар в избранное клиента.
// @Summary		Добавить товар в избранное
// @Description	Проверяет товар во внешнем каталоге перед сохранением. Возвращает живой снимок товара из каталога, а не сохранённую строку.
// @Tags		Favorites
// @Security	BearerAuth
// @Param		id	path	int64	true	"ID клиента"
// @Param		request	body	AddFavoriteRequest	true	"ID товара (product_id)"
// @Success		201	{object}	map[string]interface{} "Товар добавлен, возвращается снимок из каталога"
// @Failure		404	{object}	map[string]interface{} "Клиент или товар не найден"
// @Failure		422	{object}	map[string]interface{} "Товар уже в избранном"
// @Router		/clients/{id}/favorites [POST]
func (h *Handler) Create(c *gin.Context) {
	clientID, ok := parseClientID(c)
	if !ok {
		return
	}

	var req AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", fields)
		return
	}

	product, err := h.service.Create(c.Request.Context(), clientID, req.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, ErrClientNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Client not found")
		case errors.Is(err, ErrAlreadyFavorited):
			response.Error(c, http.StatusUnprocessableEntity, "ALREADY_FAVORITED", "Product already favorited")
		case errors.Is(err, catalog.ErrProductNotFound):
			response.Error(c, http.StatusNotFound, "PRODUCT_NOT_FOUND", "Product not found in external catalog")
		default:
			response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to add favorite")
		}
		return
	}

	response.Success(c, http.StatusCreated, product)
}

// Destroy удаляет товар из избранного клиента.
// @Summary		Удалить товар из избранного
// @Description	Удаляет связь клиента с товаром. Внешний каталог не участвует.
// @Tags		Favorites
// @Security	BearerAuth
// @Param		id	path	int64	true	"ID клиента"
// @Param		productId	path	int64	true	"ID товара"
// @Success		204	"Избранное удалено"
// @Failure		404	{object}	map[string]interface{} "Клиент или избранное не найдено"
// @Router		/clients/{id}/favorites/{productId} [DELETE]
func (h *Handler) Destroy(c *gin.Context) {
	clientID, ok := parseClientID(c)
	if !ok {
		return
	}

	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil || productID <= 0 {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Favorite not found")
		return
	}

	if err := h.service.Destroy(c.Request.Context(), clientID, productID); err != nil {
		switch {
		case errors.Is(err, ErrClientNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Client not found")
		case errors.Is(err, repository.ErrFavoriteNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Favorite not found")
		default:
			response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to remove favorite")
		}
		return
	}

	response.NoContent(c)
}

// Products проксирует листинг внешнего каталога.
// @Summary		Листинг всех товаров каталога
// @Description	Возвращает ответ внешнего каталога без изменений. При недоступности каталога отвечает 502.
// @Tags		Favorites
// @Security	BearerAuth
// @Success		200	{array}		map[string]interface{} "Список товаров каталога"
// @Failure		502	{object}	map[string]interface{} "Внешний каталог недоступен"
// @Router		/products [GET]
func (h *Handler) Products(c *gin.Context) {
	body, err := h.service.Products(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", "Failed to fetch products from external catalog")
		return
	}
	c.Data(http.StatusOK, "application/json", body)
}

func parseClientID(c *gin.Context) (int64, bool) {
	clientID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Client not found")
		return 0, false
	}
	return clientID, true
}
