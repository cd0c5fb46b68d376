package domain

import "context"

// Category is a persisted category record. ID 0 means "not yet persisted".
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// CategoryInput holds the field values submitted for create or edit,
// before the remote API has assigned an identity.
type CategoryInput struct {
	Name        string `json:"name" validate:"required,max=255,unique_name"`
	Description string `json:"description" validate:"required,max=4000"`
	Image       string `json:"image" validate:"required,absurl"`
}

// Input returns the editable fields of c.
func (c Category) Input() CategoryInput {
	return CategoryInput{Name: c.Name, Description: c.Description, Image: c.Image}
}

// CategoryAPI is the boundary to the remote category API.
type CategoryAPI interface {
	FetchAll(ctx context.Context) ([]Category, error)
	Get(ctx context.Context, id int) (*Category, error)
	Create(ctx context.Context, input CategoryInput) (*Category, error)
	Update(ctx context.Context, id int, input CategoryInput) (*Category, error)
	Delete(ctx context.Context, id int) error
}

// CategoryStore is the session-scoped collection of categories.
type CategoryStore interface {
	Load(categories []Category)
	Add(category Category)
	Replace(category Category) bool
	Remove(id int) bool
	List() []Category
	Find(id int) (Category, bool)
	Len() int
}
