package httpapi

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gorilla/mux"

	"tablebite/internal/domain"
)

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	cat, err := h.Catalog.CreateCategory(req.Name, req.Description)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, "data", cat)
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	categories, total, err := h.Catalog.ListCategories(page, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"data":       categories,
		"pagination": domain.NewPagination(page, limit, total),
	})
}

func (h *Handler) getCategory(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	cat, err := h.Catalog.GetCategory(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "data", cat)
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	cat, err := h.Catalog.UpdateCategory(id, req.Name, req.Description)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "data", cat)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Catalog.DeleteCategory(id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "category deleted")
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	categoryID, _ := strconv.Atoi(mux.Vars(r)["categoryId"])
	var product domain.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := h.Catalog.CreateProduct(categoryID, &product); err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, "data", product)
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	categoryID, _ := strconv.Atoi(r.URL.Query().Get("category"))

	products, total, err := h.Catalog.ListProducts(categoryID, page, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"data":       products,
		"pagination": domain.NewPagination(page, limit, total),
	})
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	product, err := h.Catalog.GetProduct(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "data", product)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var product domain.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	product.ID = id
	if err := h.Catalog.UpdateProduct(&product); err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "data", product)
}

func (h *Handler) toggleAvailability(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	product, err := h.Catalog.ToggleAvailability(id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "data", product)
}

func (h *Handler) changeProductCategory(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var req struct {
		CategoryID int `json:"category_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := h.Catalog.ChangeCategory(id, req.CategoryID); err != nil {
		writeServiceError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "category updated")
}

// uploadProductImages stores multipart files under ./uploads and appends their
// URLs to the product.
func (h *Handler) uploadProductImages(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "file too large")
		return
	}

	files := r.MultipartForm.File["images"]
	if len(files) == 0 {
		writeError(w, http.StatusBadRequest, "at least one image file is required")
		return
	}

	allowedTypes := map[string]bool{
		"image/jpeg": true,
		"image/png":  true,
		"image/gif":  true,
		"image/webp": true,
	}

	uploadDir := "./uploads"
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create upload directory")
		return
	}

	var urls []string
	for _, header := range files {
		if !allowedTypes[header.Header.Get("Content-Type")] {
			writeError(w, http.StatusBadRequest, "invalid file type, only JPEG, PNG, GIF, WebP allowed")
			return
		}

		file, err := header.Open()
		if err != nil {
			writeError(w, http.StatusBadRequest, "error retrieving file")
			return
		}

		filename := "product_" + strconv.Itoa(id) + "_" + header.Filename
		path := filepath.Join(uploadDir, filename)
		dst, err := os.Create(path)
		if err != nil {
			file.Close()
			writeError(w, http.StatusInternalServerError, "failed to save file")
			return
		}
		if _, err := io.Copy(dst, file); err != nil {
			dst.Close()
			file.Close()
			writeError(w, http.StatusInternalServerError, "failed to save file")
			return
		}
		dst.Close()
		file.Close()
		urls = append(urls, "/uploads/"+filename)
	}

	product, err := h.Catalog.AddImages(id, urls)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "data", product)
}

func (h *Handler) removeProductImage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, _ := strconv.Atoi(vars["id"])
	index, err := strconv.Atoi(vars["index"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "image index must be an integer")
		return
	}

	product, err := h.Catalog.RemoveImage(id, index)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, "data", product)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Catalog.DeleteProduct(id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "product deleted")
}

func pageParams(r *http.Request) (int, int) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return page, limit
}
