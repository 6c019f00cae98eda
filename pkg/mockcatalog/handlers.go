package mockcatalog

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// NewRouter wires the catalog routes onto a gorilla/mux router.
func NewRouter(state *MockState) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/products", HandleProducts(state)).Methods(http.MethodGet)
	r.HandleFunc("/products/categories", HandleCategories(state)).Methods(http.MethodGet)
	r.HandleFunc("/products/category/{category}", HandleProductsByCategory(state)).Methods(http.MethodGet)
	r.HandleFunc("/_mock/mode/{mode}", HandleSetMode(state)).Methods(http.MethodPost)

	return r
}

// HandleProducts serves the whole catalog according to the current mode.
func HandleProducts(state *MockState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mode, delay, products := state.recordRequest()

		if delay > 0 {
			select {
			case <-time.After(delay):
			case <-r.Context().Done():
				return
			}
		}

		switch mode {
		case ModeEmpty:
			writeJSON(w, http.StatusOK, []MockProduct{})
		case ModeFail:
			http.Error(w, "catalog unavailable", http.StatusServiceUnavailable)
		case ModeMalformed:
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"products": "not an array"`))
		default:
			writeJSON(w, http.StatusOK, products)
		}
	}
}

// HandleCategories lists the distinct categories in first-seen order.
func HandleCategories(state *MockState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state.mu.RLock()
		seen := make(map[string]struct{})
		categories := make([]string, 0)
		for _, p := range state.Products {
			if _, ok := seen[p.Category]; ok {
				continue
			}
			seen[p.Category] = struct{}{}
			categories = append(categories, p.Category)
		}
		state.mu.RUnlock()

		writeJSON(w, http.StatusOK, categories)
	}
}

// HandleProductsByCategory serves the products of one category.
func HandleProductsByCategory(state *MockState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := mux.Vars(r)["category"]

		state.mu.RLock()
		products := make([]MockProduct, 0)
		for _, p := range state.Products {
			if p.Category == category {
				products = append(products, p)
			}
		}
		state.mu.RUnlock()

		writeJSON(w, http.StatusOK, products)
	}
}

// HandleSetMode switches the answer mode at runtime.
func HandleSetMode(state *MockState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mode, err := ParseMode(mux.Vars(r)["mode"])
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		state.SetMode(mode)
		log.Printf("mock-catalog: mode set to %s", mode)
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("mock-catalog: failed to encode response: %v", err)
	}
}
