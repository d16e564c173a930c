package search_items

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	searchItems "github.com/m04kA/SMC-RentalService/internal/usecase/search_items"
	"github.com/m04kA/SMC-RentalService/pkg/logger"
)

type useCaseStub struct {
	got  *searchItems.Request
	resp *searchItems.Response
	err  error
}

func (s *useCaseStub) Execute(_ context.Context, req *searchItems.Request) (*searchItems.Response, error) {
	s.got = req
	return s.resp, s.err
}

func TestToUseCaseRequest(t *testing.T) {
	values, err := url.ParseQuery("q=camry&category=vehicles&subcategory=Sedan&minPrice=100&maxPrice=9000&rating=4.5&sort=price_low")
	require.NoError(t, err)

	req, err := ToUseCaseRequest(values)
	require.NoError(t, err)

	assert.Equal(t, "camry", req.Query)
	assert.Equal(t, "vehicles", req.Category)
	assert.Equal(t, "Sedan", req.Subcategory)
	assert.Equal(t, 100.0, *req.MinPrice)
	assert.Equal(t, 9000.0, *req.MaxPrice)
	assert.Equal(t, 4.5, *req.Rating)
	assert.Nil(t, req.Radius)
	assert.Equal(t, "price_low", req.SortBy)
}

func TestToUseCaseRequest_BadNumber(t *testing.T) {
	_, err := ToUseCaseRequest(url.Values{"minPrice": {"cheap"}})
	assert.Error(t, err)
}

func TestToUseCaseRequest_NonFiniteNumbers(t *testing.T) {
	for _, raw := range []string{"NaN", "nan", "Inf", "+Inf", "-Inf", "infinity"} {
		for _, param := range []string{"minPrice", "maxPrice", "rating", "radius"} {
			_, err := ToUseCaseRequest(url.Values{param: {raw}})
			assert.Error(t, err, "%s=%s", param, raw)
		}
	}
}

func TestToUseCaseRequest_KeepsQueryAndSubcategoryAsIs(t *testing.T) {
	values, err := url.ParseQuery("q=camera+&subcategory=+Sedan")
	require.NoError(t, err)

	req, err := ToUseCaseRequest(values)
	require.NoError(t, err)

	assert.Equal(t, "camera ", req.Query)
	assert.Equal(t, " Sedan", req.Subcategory)
}

func TestHandler_Handle(t *testing.T) {
	stub := &useCaseStub{resp: &searchItems.Response{
		Items:       []domain.RentalItem{{ID: "1", Title: "Toyota Camry 2022"}},
		Total:       1,
		PriceBounds: domain.PriceRange{Min: 2000, Max: 50000},
		Filters:     domain.DefaultFilterOptions(),
		Query:       "camry",
		ShareQuery:  "q=camry",
	}}
	h := NewHandler(stub, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/items?q=camry", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body SearchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Total)
	assert.Equal(t, "1", body.Items[0].ID)
	assert.Equal(t, "q=camry", body.ShareQuery)
	assert.Equal(t, "camry", stub.got.Query)
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		err        error
		wantStatus int
	}{
		{name: "bad number", target: "/api/v1/items?rating=high", wantStatus: http.StatusBadRequest},
		{name: "NaN rating", target: "/api/v1/items?rating=NaN", wantStatus: http.StatusBadRequest},
		{name: "infinite min price", target: "/api/v1/items?minPrice=Inf", wantStatus: http.StatusBadRequest},
		{name: "invalid filters", target: "/api/v1/items", err: searchItems.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "unknown category", target: "/api/v1/items?category=boats", err: searchItems.ErrUnknownCategory, wantStatus: http.StatusBadRequest},
		{name: "internal", target: "/api/v1/items", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&useCaseStub{err: tt.err}, logger.NewNop())

			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
