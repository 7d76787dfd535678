package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"finance-tracker/internal/models"
)

// CategoriesViewModel holds data for the category list page.
type CategoriesViewModel struct {
	BasePage
	Categories []models.Category
}

// EditCategoryViewModel holds data for the category edit page.
type EditCategoryViewModel struct {
	BasePage
	Category models.Category
}

// ListCategories renders the category list.
func (h *Handlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.stores.Categories.List()
	if err != nil {
		h.fail(w, r, err, "/categorias")
		return
	}
	h.render(w, "categories.html", CategoriesViewModel{
		BasePage:   h.newBasePage(w, r),
		Categories: categories,
	})
}

// CreateCategory adds a category from the form field "name".
func (h *Handlers) CreateCategory(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.redirectWithFlash(w, r, "/categorias", "danger", "Invalid form submission.")
		return
	}

	form := categoryForm{Name: strings.TrimSpace(r.FormValue("name"))}
	if err := h.validateForm(form); err != nil {
		h.redirectWithFlash(w, r, "/categorias", "danger", "Category name cannot be empty.")
		return
	}

	if _, err := h.stores.Categories.Add(form.Name); err != nil {
		h.fail(w, r, err, "/categorias")
		return
	}
	h.redirectWithFlash(w, r, "/categorias", "success", "Category added successfully!")
}

// EditCategoryForm renders the edit page for one category.
func (h *Handlers) EditCategoryForm(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.redirectWithFlash(w, r, "/categorias", "danger", "Category not found.")
		return
	}

	category, err := h.stores.Categories.Get(id)
	if err != nil {
		h.fail(w, r, err, "/categorias")
		return
	}
	h.render(w, "edit_category.html", EditCategoryViewModel{
		BasePage: h.newBasePage(w, r),
		Category: *category,
	})
}

// EditCategory renames a category, rewriting the whole store.
func (h *Handlers) EditCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.redirectWithFlash(w, r, "/categorias", "danger", "Category not found.")
		return
	}
	if err := r.ParseForm(); err != nil {
		h.redirectWithFlash(w, r, "/categorias", "danger", "Invalid form submission.")
		return
	}

	form := categoryForm{Name: strings.TrimSpace(r.FormValue("name"))}
	if err := h.validateForm(form); err != nil {
		h.redirectWithFlash(w, r, "/categorias", "danger", "Category name cannot be empty.")
		return
	}

	if err := h.stores.Categories.Update(id, form.Name); err != nil {
		h.fail(w, r, err, "/categorias")
		return
	}
	h.redirectWithFlash(w, r, "/categorias", "success", "Category updated successfully!")
}

// DeleteCategory removes a category. Transactions pointing at it keep their
// reference and show up as uncategorized.
func (h *Handlers) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.redirectWithFlash(w, r, "/categorias", "danger", "Category not found.")
		return
	}

	if err := h.stores.Categories.Delete(id); err != nil {
		h.fail(w, r, err, "/categorias")
		return
	}
	h.redirectWithFlash(w, r, "/categorias", "success", "Category deleted successfully!")
}
