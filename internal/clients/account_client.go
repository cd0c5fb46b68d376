package clients

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"time"

	"category_admin/internal/domain"

	"github.com/sirupsen/logrus"
)

const (
	loginPath    = "/api/account/login"
	registerPath = "/api/account/register"
)

type accountHTTPClient struct {
	restClient
}

func NewAccountHTTPClient(baseURL string, timeout time.Duration, logger *logrus.Logger) domain.AccountAPI {
	return &accountHTTPClient{restClient: newRESTClient(baseURL, nil, timeout, logger)}
}

func (c *accountHTTPClient) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error) {
	c.log.Debugf("AccountClient: Calling Login for email: %s", req.Email)

	var res domain.AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, loginPath, req, &res); err != nil {
		c.log.Warnf("AccountClient: Login for %s failed: %v", req.Email, err)
		return nil, err
	}
	if res.Token == "" {
		return nil, fmt.Errorf("%w: login response carried no token", domain.ErrRemote)
	}
	return &res, nil
}

// Register posts the form as multipart so the optional image can travel
// as a file part.
func (c *accountHTTPClient) Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error) {
	c.log.Debugf("AccountClient: Calling Register for email: %s", req.Email)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fields := []struct{ key, value string }{
		{"name", req.Name},
		{"lastName", req.LastName},
		{"email", req.Email},
		{"phone", req.Phone},
		{"password", req.Password},
		{"passwordConfirmation", req.PasswordConfirmation},
	}
	for _, f := range fields {
		if err := w.WriteField(f.key, f.value); err != nil {
			return nil, fmt.Errorf("failed to write register field %s: %w", f.key, err)
		}
	}
	if len(req.Image) > 0 {
		filename := req.ImageFilename
		if filename == "" {
			filename = "image"
		}
		part, err := w.CreateFormFile("image", filename)
		if err != nil {
			return nil, fmt.Errorf("failed to create register image part: %w", err)
		}
		if _, err := part.Write(req.Image); err != nil {
			return nil, fmt.Errorf("failed to write register image: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish register form: %w", err)
	}

	httpReq, err := c.newRequest(ctx, http.MethodPost, registerPath, &buf, w.FormDataContentType())
	if err != nil {
		return nil, err
	}

	var res domain.AuthResponse
	if err := c.do(httpReq, &res); err != nil {
		c.log.Warnf("AccountClient: Register for %s failed: %v", req.Email, err)
		return nil, err
	}

	c.log.Infof("AccountClient: Registered %s", req.Email)
	return &res, nil
}
