package routes

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"kathasales/handlers"
	"kathasales/models"
)

var setup sync.Once

type fakeSaleRepo struct{}

func (f *fakeSaleRepo) CreateSale(sale *models.Sale) error              { return nil }
func (f *fakeSaleRepo) GetSales() ([]*models.Sale, error)              { return nil, nil }
func (f *fakeSaleRepo) GetSaleByID(id int64) (*models.Sale, error)     { return &models.Sale{ID: id}, nil }
func (f *fakeSaleRepo) UpdateSale(sale *models.Sale) error             { return nil }
func (f *fakeSaleRepo) DeleteSale(id int64) error                      { return nil }
func (f *fakeSaleRepo) GetSaleItems(saleID int64) ([]models.SaleItem, error) { return nil, nil }
func (f *fakeSaleRepo) GetSaleItemByID(id int64) (*models.SaleItem, error) {
	return &models.SaleItem{ID: id}, nil
}
func (f *fakeSaleRepo) CreateSaleItem(line *models.SaleItem) error { return nil }
func (f *fakeSaleRepo) UpdateSaleItem(line *models.SaleItem) error { return nil }
func (f *fakeSaleRepo) DeleteSaleItem(id int64) error              { return nil }

type fakeChalanRepo struct{}

func (f *fakeChalanRepo) CreateChalan(chalan *models.DeliveryChalan) error { return nil }
func (f *fakeChalanRepo) GetChalans() ([]*models.DeliveryChalan, error)    { return nil, nil }
func (f *fakeChalanRepo) GetChalanByID(id int64) (*models.DeliveryChalan, error) {
	return &models.DeliveryChalan{ID: id}, nil
}
func (f *fakeChalanRepo) UpdateChalan(chalan *models.DeliveryChalan) error { return nil }
func (f *fakeChalanRepo) DeleteChalan(id int64) error                      { return nil }
func (f *fakeChalanRepo) GetChalanItems(chalanID int64) ([]models.DeliveryChalanItem, error) {
	return nil, nil
}
func (f *fakeChalanRepo) GetChalanItemByID(id int64) (*models.DeliveryChalanItem, error) {
	return &models.DeliveryChalanItem{ID: id}, nil
}
func (f *fakeChalanRepo) CreateChalanItem(line *models.DeliveryChalanItem) error { return nil }
func (f *fakeChalanRepo) UpdateChalanItem(line *models.DeliveryChalanItem) error { return nil }
func (f *fakeChalanRepo) DeleteChalanItem(id int64) error                        { return nil }

// The default mux carries registrations for the whole test binary, so the
// route table is set up once.
func setupOnce(t *testing.T) {
	t.Helper()
	setup.Do(func() {
		SetupRoutes(Handlers{
			CashSale:   &handlers.SaleHandler{Repo: &fakeSaleRepo{}},
			CreditSale: &handlers.SaleHandler{Repo: &fakeSaleRepo{}},
			Chalan:     &handlers.ChalanHandler{Repo: &fakeChalanRepo{}},
		})
	})
}

func TestSaleAndChalanPaths(t *testing.T) {
	setupOnce(t)

	paths := []string{
		"/api/cashsales",
		"/api/cashsales/7",
		"/api/cashsale-items?sale_id=7",
		"/api/cashsale-items/3",
		"/api/creditsales",
		"/api/creditsales/7",
		"/api/creditsale-items?sale_id=7",
		"/api/creditsale-items/3",
		"/api/delivery-chalans",
		"/api/delivery-chalans/7",
		"/api/delivery-chalan-items?chalan_id=7",
		"/api/delivery-chalan-items/3",
	}
	for _, path := range paths {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		http.DefaultServeMux.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s: status = %d, want %d", path, rec.Code, http.StatusOK)
		}
	}
}

func TestUnknownIDSubpath(t *testing.T) {
	setupOnce(t)

	req := httptest.NewRequest(http.MethodGet, "/api/cashsales/7/extra", nil)
	rec := httptest.NewRecorder()
	http.DefaultServeMux.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
