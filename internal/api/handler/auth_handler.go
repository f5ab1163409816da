package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/worldwise/trip-planner-api/internal/core/ports"
)

// AuthHandler handles registration, login, and avatar upload.
type AuthHandler struct {
	auth    ports.AuthService
	avatars ports.AvatarService
}

func NewAuthHandler(auth ports.AuthService, avatars ports.AvatarService) *AuthHandler {
	return &AuthHandler{auth: auth, avatars: avatars}
}

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// registerResponse carries the public identity only — never the hash.
type registerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// loginRequest carries no validate tags: absent fields fail the credential
// check inside the service, so every bad login reads as the same 401.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginUser struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

type loginResponse struct {
	Token string    `json:"token"`
	User  loginUser `json:"user"`
}

type avatarResponse struct {
	Avatar string `json:"avatar"`
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.auth.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, registerResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	})
}

// Login authenticates a user and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	token, user, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		Token: token,
		User: loginUser{
			ID:     user.ID,
			Name:   user.Name,
			Email:  user.Email,
			Avatar: h.avatars.PublicURL(user, requestBase(c)),
		},
	})
}

// UploadAvatar stores the multipart "avatar" field for the caller.
//
// @Summary      Upload avatar
// @Tags         auth
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        avatar  formData  file  true  "Image file (png, jpeg, webp, gif; max 4 MiB)"
// @Success      200     {object}  avatarResponse
// @Failure      400     {object}  map[string]string
// @Failure      401     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Failure      413     {object}  map[string]string
// @Failure      415     {object}  map[string]string
// @Router       /auth/avatar [post]
func (h *AuthHandler) UploadAvatar(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	fh, err := c.FormFile("avatar")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "no file uploaded")
	}

	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	user, err := h.avatars.Accept(c.Request().Context(), userID, ports.AvatarUpload{
		FileName: fh.Filename,
		MimeType: fh.Header.Get(echo.HeaderContentType),
		Size:     fh.Size,
		Content:  src,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, avatarResponse{
		Avatar: h.avatars.PublicURL(user, requestBase(c)),
	})
}
