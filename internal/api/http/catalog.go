package httpapi

import (
	"net/http"
	"strconv"

	"foodigo/internal/domain"
	"foodigo/internal/service"
)

const maxUploadSize = 10 << 20

type idRequest struct {
	ID string `json:"id"`
}

// formImage returns the uploaded image, or nil when the form carries none.
// The caller closes the returned closer.
func formImage(r *http.Request) (*service.Upload, func(), error) {
	file, header, err := r.FormFile("image")
	if err == http.ErrMissingFile {
		return nil, func() {}, nil
	}
	if err != nil {
		return nil, func() {}, err
	}
	return &service.Upload{Filename: header.Filename, Body: file}, func() { file.Close() }, nil
}

func (h *Handler) addFood(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		fail(w, http.StatusBadRequest, "File too large")
		return
	}
	image, closeImage, err := formImage(r)
	if err != nil {
		fail(w, http.StatusBadRequest, "Error retrieving file")
		return
	}
	defer closeImage()

	price, err := strconv.ParseFloat(r.FormValue("price"), 64)
	if err != nil {
		fail(w, http.StatusBadRequest, "Price must be a number")
		return
	}
	stock := 0
	if raw := r.FormValue("stock"); raw != "" {
		if stock, err = strconv.Atoi(raw); err != nil {
			fail(w, http.StatusBadRequest, "Stock must be a whole number")
			return
		}
	}

	food := &domain.Food{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		Price:       price,
		Category:    r.FormValue("category"),
		Stock:       stock,
	}
	var upload service.Upload
	if image != nil {
		upload = *image
	}
	if err := h.Catalog.AddFood(r.Context(), food, upload); err != nil {
		writeError(w, err, "Error adding food")
		return
	}
	ok(w, map[string]interface{}{"message": "Food Added", "data": food})
}

func (h *Handler) listFoods(w http.ResponseWriter, r *http.Request) {
	foods, err := h.Catalog.ListFoods(r.Context())
	if err != nil {
		writeError(w, err, "Error")
		return
	}
	ok(w, map[string]interface{}{"data": foods})
}

func (h *Handler) removeFood(w http.ResponseWriter, r *http.Request) {
	var req idRequest
	if err := decode(r, &req); err != nil {
		badBody(w)
		return
	}
	if err := h.Catalog.RemoveFood(r.Context(), req.ID); err != nil {
		writeError(w, err, "Error")
		return
	}
	ok(w, map[string]interface{}{"message": "Food Removed"})
}

func (h *Handler) updateStock(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID    string `json:"id"`
		Stock int    `json:"stock"`
	}
	if err := decode(r, &req); err != nil {
		badBody(w)
		return
	}
	food, err := h.Catalog.UpdateStock(r.Context(), req.ID, req.Stock)
	if err != nil {
		writeError(w, err, "Error updating stock")
		return
	}
	ok(w, map[string]interface{}{"message": "Stock updated successfully", "data": food})
}

func (h *Handler) updateFoodDetails(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID string `json:"id"`
		service.FoodDetails
	}
	if err := decode(r, &req); err != nil {
		badBody(w)
		return
	}
	food, err := h.Catalog.UpdateDetails(r.Context(), req.ID, req.FoodDetails)
	if err != nil {
		writeError(w, err, "Error updating food details")
		return
	}
	ok(w, map[string]interface{}{"message": "Food details updated successfully", "data": food})
}

func (h *Handler) lowStock(w http.ResponseWriter, r *http.Request) {
	foods, err := h.Catalog.LowStock(r.Context())
	if err != nil {
		writeError(w, err, "Error fetching low stock items")
		return
	}
	ok(w, map[string]interface{}{"data": foods})
}

func (h *Handler) addCategory(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		fail(w, http.StatusBadRequest, "File too large")
		return
	}
	image, closeImage, err := formImage(r)
	if err != nil {
		fail(w, http.StatusBadRequest, "Error retrieving file")
		return
	}
	defer closeImage()

	category := &domain.Category{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
	}
	var upload service.Upload
	if image != nil {
		upload = *image
	}
	if err := h.Catalog.AddCategory(r.Context(), category, upload); err != nil {
		writeError(w, err, "Error adding category")
		return
	}
	ok(w, map[string]interface{}{"message": "Category Added", "data": category})
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Catalog.ListCategories(r.Context())
	if err != nil {
		writeError(w, err, "Error")
		return
	}
	ok(w, map[string]interface{}{"data": categories})
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		fail(w, http.StatusBadRequest, "File too large")
		return
	}
	image, closeImage, err := formImage(r)
	if err != nil {
		fail(w, http.StatusBadRequest, "Error retrieving file")
		return
	}
	defer closeImage()

	category := &domain.Category{
		ID:          r.FormValue("id"),
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
	}
	updated, err := h.Catalog.UpdateCategory(r.Context(), category, image)
	if err != nil {
		writeError(w, err, "Error updating category")
		return
	}
	ok(w, map[string]interface{}{"message": "Category Updated", "data": updated})
}

func (h *Handler) removeCategory(w http.ResponseWriter, r *http.Request) {
	var req idRequest
	if err := decode(r, &req); err != nil {
		badBody(w)
		return
	}
	if err := h.Catalog.RemoveCategory(r.Context(), req.ID); err != nil {
		writeError(w, err, "Error removing category")
		return
	}
	ok(w, map[string]interface{}{"message": "Category Removed"})
}
