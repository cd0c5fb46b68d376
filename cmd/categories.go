package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"category_admin/internal/domain"

	"github.com/spf13/cobra"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"category"},
		Short:   "Manage categories",
		Long:    `List, create, edit, and delete categories on the remote API.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(getCategoryCmd())
	cmd.AddCommand(createCategoryCmd())
	cmd.AddCommand(editCategoryCmd())
	cmd.AddCommand(deleteCategoryCmd())

	return cmd
}

// loadedApp wires the app and fills the session store, which the duplicate
// name check reads from.
func loadedApp(ctx context.Context) (*app, error) {
	a, err := newApp()
	if err != nil {
		return nil, err
	}
	if _, err := a.categories.LoadCategories(ctx); err != nil {
		return nil, err
	}
	return a, nil
}

func parseIDArg(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidID, arg)
	}
	return id, nil
}

func printCategories(w io.Writer, categories []domain.Category) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\tNAME\tDESCRIPTION\tIMAGE\n")
	for _, c := range categories {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", c.ID, c.Name, truncate(c.Description, 50), c.Image)
	}
	return tw.Flush()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// printValidation renders field errors one per line, like a form would.
func printValidation(w io.Writer, err error) error {
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		return err
	}
	for _, f := range verr.Fields {
		fmt.Fprintf(w, "  %s: %s\n", f.Field, f.Message)
	}
	return errors.New("validation failed")
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadedApp(cmd.Context())
			if err != nil {
				return err
			}

			categories := a.categories.ListCategories()
			if len(categories) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No categories found. Use 'category-admin categories create' to add one.")
				return nil
			}
			return printCategories(cmd.OutOrStdout(), categories)
		},
	}
}

func getCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			a, err := newApp()
			if err != nil {
				return err
			}

			category, err := a.categories.GetCategory(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printCategories(cmd.OutOrStdout(), []domain.Category{*category})
		},
	}
}

func addInputFlags(cmd *cobra.Command, input *domain.CategoryInput) {
	cmd.Flags().StringVarP(&input.Name, "name", "n", "", "Category name (unique, case-insensitive)")
	cmd.Flags().StringVarP(&input.Description, "description", "d", "", "Category description")
	cmd.Flags().StringVarP(&input.Image, "image", "i", "", "Absolute image URL")
}

func createCategoryCmd() *cobra.Command {
	var input domain.CategoryInput

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadedApp(cmd.Context())
			if err != nil {
				return err
			}

			created, err := a.categories.CreateCategory(cmd.Context(), input)
			if err != nil {
				return printValidation(cmd.ErrOrStderr(), err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created category %d: %s\n", created.ID, created.Name)
			return nil
		},
	}
	addInputFlags(cmd, &input)
	return cmd
}

func editCategoryCmd() *cobra.Command {
	var input domain.CategoryInput

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a category",
		Long:  `Replace a category's fields. Flags that are not given keep their current value.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			a, err := loadedApp(cmd.Context())
			if err != nil {
				return err
			}

			current, err := a.categories.GetCategory(cmd.Context(), id)
			if err != nil {
				return err
			}
			merged := current.Input()
			if cmd.Flags().Changed("name") {
				merged.Name = input.Name
			}
			if cmd.Flags().Changed("description") {
				merged.Description = input.Description
			}
			if cmd.Flags().Changed("image") {
				merged.Image = input.Image
			}

			updated, err := a.categories.UpdateCategory(cmd.Context(), id, merged)
			if err != nil {
				return printValidation(cmd.ErrOrStderr(), err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated category %d: %s\n", updated.ID, updated.Name)
			return nil
		},
	}
	addInputFlags(cmd, &input)
	return cmd
}

func deleteCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			a, err := loadedApp(cmd.Context())
			if err != nil {
				return err
			}

			if err := a.categories.DeleteCategory(cmd.Context(), id); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Deleted category %d\n", id)
			return nil
		},
	}
}
