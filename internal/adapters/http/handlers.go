package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bookstore/core/internal/application/services"
	"github.com/bookstore/core/internal/infrastructure/logger"
	"github.com/bookstore/core/internal/ports"
)

// sessionFromContext returns the session the auth middleware attached.
func sessionFromContext(c echo.Context) *Session {
	return c.Get("session").(*Session)
}

// AuthHandler handles registration, login and logout.
type AuthHandler struct {
	authService *services.AuthService
	sessions    *SessionManager
	logger      *logger.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService *services.AuthService, sessions *SessionManager, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
		logger:      logger,
	}
}

// Register handles account creation.
func (h *AuthHandler) Register(c echo.Context) error {
	var req ports.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), req)
	if err != nil {
		h.logger.Error("Registration failed", "error", err, "username", req.Username)
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, user)
}

// Login authenticates the user, starts a session with an empty cart and
// returns a signed token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req ports.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Authenticate(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		h.logger.Warn("Login failed", "username", req.Username, "error", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	token, err := h.authService.IssueToken(user)
	if err != nil {
		h.logger.Error("Token issuance failed", "username", req.Username, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "login failed")
	}

	h.sessions.Start(user.Username, user.IsAdmin)

	return c.JSON(http.StatusOK, ports.AuthResponse{
		Token:    token,
		Username: user.Username,
		Email:    user.Email,
		IsAdmin:  user.IsAdmin,
	})
}

// Logout discards the session, including its cart.
func (h *AuthHandler) Logout(c echo.Context) error {
	sess := sessionFromContext(c)
	h.sessions.End(sess.Username)
	return c.JSON(http.StatusOK, MessageResponse{Message: "Logged out"})
}

// CatalogHandler handles browsing and admin book management.
type CatalogHandler struct {
	catalogService *services.CatalogService
	logger         *logger.Logger
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(catalogService *services.CatalogService, logger *logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		logger:         logger,
	}
}

// ListBooks returns one page of the filtered, sorted catalog.
func (h *CatalogHandler) ListBooks(c echo.Context) error {
	filter := ports.CatalogFilter{
		Search:     c.QueryParam("search"),
		Category:   c.QueryParam("category"),
		PriceBand:  c.QueryParam("price_band"),
		SortBy:     c.QueryParam("sort_by"),
		Descending: c.QueryParam("order") == "desc",
	}
	if page, err := strconv.Atoi(c.QueryParam("page")); err == nil {
		filter.Page = page
	}
	if size, err := strconv.Atoi(c.QueryParam("page_size")); err == nil {
		filter.PageSize = size
	}

	page, err := h.catalogService.Browse(c.Request().Context(), filter)
	if err != nil {
		h.logger.Error("Catalog browse failed", "error", err)
		return httpError(err)
	}

	return c.JSON(http.StatusOK, page)
}

// GetBook returns a single book.
func (h *CatalogHandler) GetBook(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid book ID")
	}

	book, err := h.catalogService.Get(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, book)
}

// ListCategories returns the distinct categories present in the catalog.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogService.Categories(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, categories)
}

// CreateBook adds a catalog record (admin only).
func (h *CatalogHandler) CreateBook(c echo.Context) error {
	var req ports.BookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	book, err := h.catalogService.Create(c.Request().Context(), req)
	if err != nil {
		h.logger.Error("Create book failed", "error", err)
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, book)
}

// UpdateBook replaces a record's non-id fields (admin only).
func (h *CatalogHandler) UpdateBook(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid book ID")
	}

	var req ports.BookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	book, err := h.catalogService.Update(c.Request().Context(), id, req)
	if err != nil {
		h.logger.Error("Update book failed", "error", err, "book_id", id)
		return httpError(err)
	}

	return c.JSON(http.StatusOK, book)
}

// DeleteBook removes a record; deleting an absent id succeeds (admin only).
func (h *CatalogHandler) DeleteBook(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid book ID")
	}

	if err := h.catalogService.Delete(c.Request().Context(), id); err != nil {
		h.logger.Error("Delete book failed", "error", err, "book_id", id)
		return httpError(err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Book deleted"})
}
