package usecase

import (
	"context"
	"errors"
	"fmt"

	"category_admin/internal/domain"
	"category_admin/internal/validation"

	"github.com/sirupsen/logrus"
)

// CategoryUseCase keeps the session store in step with the remote API.
// Local mutations are applied only after the remote call succeeds.
type CategoryUseCase interface {
	LoadCategories(ctx context.Context) ([]domain.Category, error)
	ListCategories() []domain.Category
	GetCategory(ctx context.Context, id int) (*domain.Category, error)
	ValidateCategory(input domain.CategoryInput, excludeID int) error
	CreateCategory(ctx context.Context, input domain.CategoryInput) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id int, input domain.CategoryInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id int) error
}

type categoryUseCase struct {
	api       domain.CategoryAPI
	store     domain.CategoryStore
	validator *validation.Validator
	log       *logrus.Logger
}

func NewCategoryUseCase(api domain.CategoryAPI, store domain.CategoryStore, validator *validation.Validator, logger *logrus.Logger) CategoryUseCase {
	return &categoryUseCase{
		api:       api,
		store:     store,
		validator: validator,
		log:       logger,
	}
}

func (uc *categoryUseCase) LoadCategories(ctx context.Context) ([]domain.Category, error) {
	uc.log.Info("Use Case: Loading categories from remote API")

	categories, err := uc.api.FetchAll(ctx)
	if err != nil {
		uc.log.Errorf("Use Case: Failed to load categories, keeping %d cached: %v", uc.store.Len(), err)
		return nil, fmt.Errorf("could not load categories: %w", err)
	}

	uc.store.Load(categories)
	uc.log.Infof("Use Case: Loaded %d categories", len(categories))
	return uc.store.List(), nil
}

func (uc *categoryUseCase) ListCategories() []domain.Category {
	return uc.store.List()
}

// GetCategory reads a single record from the remote API, e.g. to prefill an
// edit form. The store is not touched.
func (uc *categoryUseCase) GetCategory(ctx context.Context, id int) (*domain.Category, error) {
	if id <= 0 {
		uc.log.Warnf("Use Case: Attempted to get category with invalid ID: %d", id)
		return nil, domain.ErrInvalidID
	}

	category, err := uc.api.Get(ctx, id)
	if err != nil {
		uc.log.Warnf("Use Case: Remote get failed for category ID %d: %v", id, err)
		return nil, err
	}
	return category, nil
}

func (uc *categoryUseCase) ValidateCategory(input domain.CategoryInput, excludeID int) error {
	return uc.validator.ValidateCategory(input, uc.store.List(), excludeID)
}

func (uc *categoryUseCase) CreateCategory(ctx context.Context, input domain.CategoryInput) (*domain.Category, error) {
	if err := uc.ValidateCategory(input, 0); err != nil {
		uc.log.Warnf("Use Case: Rejected new category '%s': %v", input.Name, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Attempting to create category with name '%s'", input.Name)
	created, err := uc.api.Create(ctx, input)
	if err != nil {
		uc.log.Errorf("Use Case: Remote create failed for category '%s': %v", input.Name, err)
		return nil, err
	}

	uc.store.Add(*created)
	uc.log.Infof("Use Case: Category '%s' created successfully with ID %d", created.Name, created.ID)
	return created, nil
}

func (uc *categoryUseCase) UpdateCategory(ctx context.Context, id int, input domain.CategoryInput) (*domain.Category, error) {
	if id <= 0 {
		uc.log.Warnf("Use Case: Attempted update with invalid ID: %d", id)
		return nil, domain.ErrInvalidID
	}
	if err := uc.ValidateCategory(input, id); err != nil {
		uc.log.Warnf("Use Case: Rejected update for category ID %d: %v", id, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Attempting to update category ID %d", id)
	updated, err := uc.api.Update(ctx, id, input)
	if err != nil {
		uc.log.Errorf("Use Case: Remote update failed for category ID %d: %v", id, err)
		return nil, err
	}
	if updated.ID != id {
		uc.log.Errorf("Use Case: Remote update for category ID %d answered with ID %d", id, updated.ID)
		return nil, fmt.Errorf("%w: edit of category %d returned category %d", domain.ErrRemote, id, updated.ID)
	}

	if !uc.store.Replace(*updated) {
		uc.log.Warnf("Use Case: Category ID %d updated remotely but not present locally", updated.ID)
	}
	uc.log.Infof("Use Case: Category updated successfully for ID %d", updated.ID)
	return updated, nil
}

func (uc *categoryUseCase) DeleteCategory(ctx context.Context, id int) error {
	if id <= 0 {
		uc.log.Warnf("Use Case: Attempted delete with invalid ID: %d", id)
		return domain.ErrInvalidID
	}

	uc.log.Infof("Use Case: Attempting to delete category ID %d", id)
	if err := uc.api.Delete(ctx, id); err != nil {
		uc.log.Errorf("Use Case: Remote delete failed for category ID %d: %v", id, err)
		return err
	}

	if !uc.store.Remove(id) {
		uc.log.Warnf("Use Case: Category ID %d deleted remotely but not present locally", id)
	}
	uc.log.Infof("Use Case: Category deleted successfully for ID %d", id)
	return nil
}

// IsValidationError reports whether err blocked a submission before any
// remote call.
func IsValidationError(err error) bool {
	var verr *domain.ValidationError
	return errors.As(err, &verr)
}
