package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/retail-hub/accounts/internal/server/config"
	"github.com/retail-hub/accounts/internal/server/models"
	"github.com/retail-hub/accounts/internal/server/services"
)

// AuthHandler serves the unauthenticated surface: registration, login, and
// logout.
type AuthHandler struct {
	service *services.AccountService
	cfg     *config.Config
}

func NewAuthHandler(service *services.AccountService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{service: service, cfg: cfg}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", h.register)
		authGroup.POST("/login", h.login)
		authGroup.POST("/logout", h.logout)
	}
}

type loginRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail"`
	Password        string `json:"password"`
}

type loginResponse struct {
	Token     string          `json:"token"`
	TokenType string          `json:"tokenType"`
	ExpiresIn int             `json:"expiresIn"`
	User      *models.APIUser `json:"user"`
}

// @Summary Register a new account
// @Description Create an account with a username, email, password, and optional profile.
// @Tags auth
// @Accept json
// @Produce json
// @Param account body services.RegisterInput true "Account to create"
// @Success 201 {object} models.APIUser "Created account"
// @Failure 400 {object} Problem "Invalid input"
// @Failure 409 {object} Problem "Username or email already taken"
// @Failure 500 {object} Problem "Internal server error"
// @Router /auth/register [post]
func (h *AuthHandler) register(c *gin.Context) {
	var in services.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		validationProblem(c, "request body is not valid JSON")
		return
	}

	user, err := h.service.Register(c.Request.Context(), in)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.Header("Location", h.cfg.BasePath+"/users/"+user.ID)
	c.JSON(http.StatusCreated, user.API())
}

// @Summary Log in
// @Description Verify credentials and issue a bearer token. The usernameOrEmail field accepts either identifier.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body loginRequest true "Credentials"
// @Success 200 {object} loginResponse "Bearer token and account"
// @Failure 400 {object} Problem "Invalid input"
// @Failure 401 {object} Problem "Unknown login or wrong password"
// @Failure 500 {object} Problem "Internal server error"
// @Router /auth/login [post]
func (h *AuthHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationProblem(c, "request body is not valid JSON")
		return
	}

	session, err := h.service.Login(c.Request.Context(), req.UsernameOrEmail, req.Password)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	if h.cfg.SessionCookieEnabled {
		h.setSessionCookie(c, session.Token, session.ExpiresIn)
	}

	c.JSON(http.StatusOK, loginResponse{
		Token:     session.Token,
		TokenType: "Bearer",
		ExpiresIn: session.ExpiresIn,
		User:      session.User.API(),
	})
}

// @Summary Log out
// @Description Clear the session cookie. Issued bearer tokens stay valid until expiry.
// @Tags auth
// @Success 204 "Cookie cleared"
// @Router /auth/logout [post]
func (h *AuthHandler) logout(c *gin.Context) {
	if h.cfg.SessionCookieEnabled {
		h.setSessionCookie(c, "", -1)
	}
	c.Status(http.StatusNoContent)
}

// setSessionCookie sets (or, with a negative maxAge, clears) the http-only
// session cookie. The Secure attribute is dropped only in development so
// local plain-http setups keep working.
func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	secure := h.cfg.Env != "development"
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.CookieName, token, maxAge, "/", "", secure, true)
}
