package delivery

import (
	"errors"
	"io"
	"net/http"

	"category_admin/internal/domain"
	"category_admin/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const maxImageSize = 5 << 20

type AccountHandler struct {
	useCase usecase.AccountUseCase
	log     *logrus.Logger
}

func NewAccountHandler(uc usecase.AccountUseCase, logger *logrus.Logger) *AccountHandler {
	return &AccountHandler{
		useCase: uc,
		log:     logger,
	}
}

type SessionResponse struct {
	Token    string           `json:"token,omitempty"`
	Identity *domain.Identity `json:"identity,omitempty"`
}

func (h *AccountHandler) RegisterRoutes(router gin.IRouter) {
	router.POST("/login", h.Login)
	router.POST("/register", h.Register)
	router.POST("/logout", h.Logout)
	router.GET("/me", h.Me)
}

func (h *AccountHandler) Login(c *gin.Context) {
	handlerLogger := h.log.WithField("handler", "Login")

	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handlerLogger.Warnf("Failed to bind login request: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	identity, token, err := h.useCase.Login(c.Request.Context(), req)
	if err != nil {
		handlerLogger.Warnf("Login failed for %s: %v", req.Email, err)
		FailWithError(c, "Login failed", err)
		return
	}

	SuccessResponse(c, http.StatusOK, "Logged in", SessionResponse{Token: token, Identity: identity})
}

// Register accepts JSON or a multipart form; the multipart variant may carry
// an "image" file.
func (h *AccountHandler) Register(c *gin.Context) {
	handlerLogger := h.log.WithField("handler", "Register")

	var req domain.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		handlerLogger.Warnf("Failed to bind register request: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if c.ContentType() == gin.MIMEMultipartPOSTForm {
		image, filename, err := readImage(c)
		if err != nil {
			handlerLogger.Warnf("Failed to read register image: %v", err)
			ErrorResponse(c, http.StatusBadRequest, "Invalid image: "+err.Error())
			return
		}
		req.Image, req.ImageFilename = image, filename
	}

	identity, token, err := h.useCase.Register(c.Request.Context(), req)
	if err != nil {
		handlerLogger.Warnf("Registration failed for %s: %v", req.Email, err)
		FailWithError(c, "Registration failed", err)
		return
	}

	SuccessResponse(c, http.StatusCreated, "Registered", SessionResponse{Token: token, Identity: identity})
}

func readImage(c *gin.Context) ([]byte, string, error) {
	header, err := c.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", err
	}
	if header.Size > maxImageSize {
		return nil, "", errors.New("image is too large")
	}

	file, err := header.Open()
	if err != nil {
		return nil, "", err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageSize))
	if err != nil {
		return nil, "", err
	}
	return data, header.Filename, nil
}

func (h *AccountHandler) Logout(c *gin.Context) {
	h.useCase.Logout()
	SuccessResponse(c, http.StatusOK, "Logged out", nil)
}

func (h *AccountHandler) Me(c *gin.Context) {
	identity, err := h.useCase.CurrentIdentity()
	if err != nil {
		FailWithError(c, "No active session", err)
		return
	}
	SuccessResponse(c, http.StatusOK, "Current identity", identity)
}
