package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/retail-hub/accounts/internal/server/models"
	"github.com/retail-hub/accounts/internal/server/services"
)

// UserHandler serves the authenticated account surface. Its routes must be
// registered on a group that carries AuthRequired.
type UserHandler struct {
	service *services.AccountService
}

func NewUserHandler(service *services.AccountService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.GET("/me", h.getMe)
		users.PUT("/me", h.updateMe)
	}
}

// updateRequest is a partial update: absent fields keep their value, profile
// fields set to "" are cleared. Pointers distinguish absent from empty.
type updateRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Profile  *struct {
		GivenName  *string `json:"givenName"`
		FamilyName *string `json:"familyName"`
		AvatarURL  *string `json:"avatarUrl"`
		Address    *struct {
			Line1      *string `json:"line1"`
			Line2      *string `json:"line2"`
			City       *string `json:"city"`
			State      *string `json:"state"`
			PostalCode *string `json:"postalCode"`
			Country    *string `json:"country"`
		} `json:"address"`
	} `json:"profile"`
}

func (r *updateRequest) toModel() models.UserUpdate {
	upd := models.UserUpdate{
		Username: r.Username,
		Email:    r.Email,
	}
	if p := r.Profile; p != nil {
		upd.GivenName = p.GivenName
		upd.FamilyName = p.FamilyName
		upd.AvatarURL = p.AvatarURL
		if a := p.Address; a != nil {
			upd.AddressLine1 = a.Line1
			upd.AddressLine2 = a.Line2
			upd.AddressCity = a.City
			upd.AddressState = a.State
			upd.AddressPostalCode = a.PostalCode
			upd.AddressCountry = a.Country
		}
	}
	return upd
}

// @Summary Get the authenticated account
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.APIUser "Account"
// @Failure 401 {object} Problem "Missing, invalid, or expired token"
// @Failure 404 {object} Problem "Account no longer exists"
// @Failure 500 {object} Problem "Internal server error"
// @Router /users/me [get]
func (h *UserHandler) getMe(c *gin.Context) {
	user, err := h.service.GetUser(c.Request.Context(), userID(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user.API())
}

// @Summary Update the authenticated account
// @Description Partial update. Absent fields are kept; profile fields set to an empty string are cleared.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param update body updateRequest true "Fields to change"
// @Success 200 {object} models.APIUser "Updated account"
// @Failure 400 {object} Problem "Invalid input"
// @Failure 401 {object} Problem "Missing, invalid, or expired token"
// @Failure 404 {object} Problem "Account no longer exists"
// @Failure 409 {object} Problem "Username or email already taken"
// @Failure 500 {object} Problem "Internal server error"
// @Router /users/me [put]
func (h *UserHandler) updateMe(c *gin.Context) {
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationProblem(c, "request body is not valid JSON")
		return
	}

	user, err := h.service.UpdateProfile(c.Request.Context(), userID(c), req.toModel())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user.API())
}
