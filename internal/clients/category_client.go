package clients

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"category_admin/internal/domain"

	"github.com/sirupsen/logrus"
)

const categoryPath = "/api/category"

type categoryHTTPClient struct {
	restClient
}

// NewCategoryHTTPClient talks to the remote category API rooted at baseURL.
// tokens may be nil.
func NewCategoryHTTPClient(baseURL string, tokens TokenSource, timeout time.Duration, logger *logrus.Logger) domain.CategoryAPI {
	return &categoryHTTPClient{restClient: newRESTClient(baseURL, tokens, timeout, logger)}
}

func (c *categoryHTTPClient) FetchAll(ctx context.Context) ([]domain.Category, error) {
	c.log.Debugf("CategoryClient: Requesting category list from %s%s", c.baseURL, categoryPath)

	var categories []domain.Category
	if err := c.doJSON(ctx, http.MethodGet, categoryPath, nil, &categories); err != nil {
		c.log.Errorf("CategoryClient: FetchAll failed: %v", err)
		return nil, err
	}
	if categories == nil {
		categories = []domain.Category{}
	}

	c.log.Infof("CategoryClient: Fetched %d categories", len(categories))
	return categories, nil
}

func (c *categoryHTTPClient) Get(ctx context.Context, id int) (*domain.Category, error) {
	path := fmt.Sprintf("%s/%d", categoryPath, id)
	c.log.Debugf("CategoryClient: Requesting category ID %d", id)

	var category domain.Category
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &category); err != nil {
		c.log.Warnf("CategoryClient: Get for ID %d failed: %v", id, err)
		return nil, err
	}
	if category.ID == 0 {
		category.ID = id
	}
	return &category, nil
}

func (c *categoryHTTPClient) Create(ctx context.Context, input domain.CategoryInput) (*domain.Category, error) {
	c.log.Debugf("CategoryClient: Creating category Name=%s", input.Name)

	var created domain.Category
	if err := c.doJSON(ctx, http.MethodPost, categoryPath, input, &created); err != nil {
		c.log.Errorf("CategoryClient: Create for Name=%s failed: %v", input.Name, err)
		return nil, err
	}
	if created.ID == 0 {
		c.log.Errorf("CategoryClient: Create for Name=%s returned no ID", input.Name)
		return nil, fmt.Errorf("%w: created category has no server-assigned id", domain.ErrRemote)
	}

	c.log.Infof("CategoryClient: Created category ID %d", created.ID)
	return &created, nil
}

// editPayload is the body of the edit endpoint, which also carries the id.
type editPayload struct {
	ID int `json:"id"`
	domain.CategoryInput
}

func (c *categoryHTTPClient) Update(ctx context.Context, id int, input domain.CategoryInput) (*domain.Category, error) {
	path := fmt.Sprintf("%s/edit/%d", categoryPath, id)
	c.log.Debugf("CategoryClient: Updating category ID %d", id)

	var updated domain.Category
	if err := c.doJSON(ctx, http.MethodPost, path, editPayload{ID: id, CategoryInput: input}, &updated); err != nil {
		c.log.Errorf("CategoryClient: Update for ID %d failed: %v", id, err)
		return nil, err
	}

	if updated.ID == 0 {
		updated.ID = id
	} else if updated.ID != id {
		c.log.Warnf("CategoryClient: Mismatched category ID in response. Requested %d, got %d", id, updated.ID)
	}

	c.log.Infof("CategoryClient: Updated category ID %d", updated.ID)
	return &updated, nil
}

func (c *categoryHTTPClient) Delete(ctx context.Context, id int) error {
	path := fmt.Sprintf("%s/%d", categoryPath, id)
	c.log.Debugf("CategoryClient: Deleting category ID %d", id)

	if err := c.doJSON(ctx, http.MethodDelete, path, nil, nil); err != nil {
		c.log.Errorf("CategoryClient: Delete for ID %d failed: %v", id, err)
		return err
	}

	c.log.Infof("CategoryClient: Deleted category ID %d", id)
	return nil
}
