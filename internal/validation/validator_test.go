package validation

import (
	"errors"
	"strings"
	"testing"

	"category_admin/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var collection = []domain.Category{
	{ID: 1, Name: "Books", Description: "Paper", Image: "https://cdn.example.com/books.png"},
	{ID: 2, Name: "Movies", Description: "Film", Image: "https://cdn.example.com/movies.png"},
}

func validInput(name string) domain.CategoryInput {
	return domain.CategoryInput{Name: name, Description: "d", Image: "https://x/y.png"}
}

func TestIsDuplicateComparesLowercase(t *testing.T) {
	longS := []domain.Category{{ID: 1, Name: "ſ"}}

	assert.False(t, IsDuplicate("s", longS, 0))
	assert.True(t, IsDuplicate("ſ", longS, 0))
}

func TestIsDuplicateIgnoresCase(t *testing.T) {
	for _, name := range []string{"books", "BOOKS", "Books", "bOoKs"} {
		assert.True(t, IsDuplicate(name, collection, 0), name)
	}
	for _, name := range []string{"toys", "TOYS", "Toys"} {
		assert.False(t, IsDuplicate(name, collection, 0), name)
	}
}

func TestIsDuplicateExcludesSelf(t *testing.T) {
	assert.False(t, IsDuplicate("books", collection, 1))
	assert.True(t, IsDuplicate("movies", collection, 1))
}

func TestIsDuplicateEmptyCollection(t *testing.T) {
	assert.False(t, IsDuplicate("Books", nil, 0))
}

func TestValidateCategory(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		input     domain.CategoryInput
		excludeID int
		field     string
		message   string
	}{
		{name: "duplicate name different case", input: validInput("books"), field: "name", message: "Category already exists"},
		{name: "empty name", input: validInput(""), field: "name", message: "Name is required"},
		{name: "name too long", input: validInput(strings.Repeat("a", 256)), field: "name", message: "Name must be smaller"},
		{name: "missing description", input: domain.CategoryInput{Name: "Toys", Image: "https://x/y.png"}, field: "description", message: "Description is required"},
		{name: "description too long", input: domain.CategoryInput{Name: "Toys", Description: strings.Repeat("d", 4001), Image: "https://x/y.png"}, field: "description", message: "Description must be smaller"},
		{name: "missing image", input: domain.CategoryInput{Name: "Toys", Description: "d"}, field: "image", message: "Image URL is required"},
		{name: "relative image", input: domain.CategoryInput{Name: "Toys", Description: "d", Image: "/img/y.png"}, field: "image", message: "Invalid URL format"},
		{name: "image without host", input: domain.CategoryInput{Name: "Toys", Description: "d", Image: "https:y.png"}, field: "image", message: "Invalid URL format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateCategory(tt.input, collection, tt.excludeID)
			require.Error(t, err)

			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			msg, ok := verr.Message(tt.field)
			require.True(t, ok, "expected error on %s, got %v", tt.field, verr.Fields)
			assert.Equal(t, tt.message, msg)
		})
	}
}

func TestValidateCategoryPasses(t *testing.T) {
	v := New()

	assert.NoError(t, v.ValidateCategory(validInput("Toys"), collection, 0))
	assert.NoError(t, v.ValidateCategory(validInput("Movies"), collection[:1], 0))
	assert.NoError(t, v.ValidateCategory(validInput(strings.Repeat("é", 255)), collection, 0))
}

func TestValidateCategoryKeepsOwnNameOnEdit(t *testing.T) {
	v := New()

	assert.NoError(t, v.ValidateCategory(validInput("Books"), collection, 1))

	err := v.ValidateCategory(validInput("Books"), collection, 2)
	assert.True(t, errors.Is(err, domain.ErrDuplicateName))
}

func TestValidateCategoryReportsEveryField(t *testing.T) {
	v := New()

	err := v.ValidateCategory(domain.CategoryInput{}, collection, 0)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 3)
	assert.False(t, errors.Is(err, domain.ErrDuplicateName))
}

func TestValidateStructLogin(t *testing.T) {
	v := New()

	err := v.ValidateStruct(domain.LoginRequest{Email: "not-an-email", Password: ""})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	msg, ok := verr.Message("email")
	require.True(t, ok)
	assert.Equal(t, "email must be a valid email", msg)
	msg, ok = verr.Message("password")
	require.True(t, ok)
	assert.Equal(t, "password is required", msg)

	assert.NoError(t, v.ValidateStruct(domain.LoginRequest{Email: "a@b.com", Password: "secret"}))
}

func TestValidateStructRegisterPasswordConfirmation(t *testing.T) {
	v := New()
	req := domain.RegisterRequest{
		Name:                 "Ada",
		LastName:             "Lovelace",
		Email:                "ada@example.com",
		Phone:                "+380501234567",
		Password:             "engine42",
		PasswordConfirmation: "engine43",
	}

	err := v.ValidateStruct(req)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	msg, ok := verr.Message("passwordConfirmation")
	require.True(t, ok)
	assert.Equal(t, "passwordConfirmation must match password", msg)

	req.PasswordConfirmation = req.Password
	assert.NoError(t, v.ValidateStruct(req))
}
