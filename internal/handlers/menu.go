package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Arjit-Adhikari/qr-order/internal/models"
	"github.com/Arjit-Adhikari/qr-order/internal/services"
	"github.com/Arjit-Adhikari/qr-order/internal/utils"
)

type MenuHandler struct {
	menuService *services.MenuService
}

func NewMenuHandler(menuService *services.MenuService) *MenuHandler {
	return &MenuHandler{
		menuService: menuService,
	}
}

// GetMenu serves the public menu listing.
func (h *MenuHandler) GetMenu(c *gin.Context) {
	items, err := h.menuService.ListAvailable(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to load menu", ""))
		return
	}

	c.JSON(http.StatusOK, items)
}

// SeedMenu bulk-replaces the menu with the posted items (admin).
func (h *MenuHandler) SeedMenu(c *gin.Context) {
	var req models.SeedMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse("Invalid request payload", err.Error()))
		return
	}

	count, err := h.menuService.ReplaceAll(c.Request.Context(), req.Items)
	if err != nil {
		if errors.Is(err, services.ErrEmptyItems) {
			c.JSON(http.StatusBadRequest, utils.ErrorResponse(err.Error(), ""))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse("Failed to replace menu", ""))
		return
	}

	c.JSON(http.StatusOK, utils.SuccessResponse(gin.H{"count": count}))
}
