package choose_date

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/service/dialog"
	"github.com/m04kA/SMC-RentalService/internal/service/dialog/models"
	"github.com/m04kA/SMC-RentalService/pkg/logger"
)

type serviceStub struct {
	got *models.ChooseDateRequest
	err error
}

func (s *serviceStub) ChooseDate(_ context.Context, req *models.ChooseDateRequest) (*models.DialogResponse, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	date := req.Date
	return &models.DialogResponse{ID: req.DialogID, State: "date_chosen", Date: &date}, nil
}

func serve(h *Handler, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/dialogs/{dialogId}/date", h.Handle).Methods(http.MethodPut)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/dialogs/d-1/date", strings.NewReader(body))
	req = req.WithContext(middleware.WithUserID(req.Context(), 7))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Handle(t *testing.T) {
	stub := &serviceStub{}
	rec := serve(NewHandler(stub, logger.NewNop()), `{"date":"2026-11-02"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, &models.ChooseDateRequest{UserID: 7, DialogID: "d-1", Date: "2026-11-02"}, stub.got)
	assert.Contains(t, rec.Body.String(), `"state":"date_chosen"`)
}

func TestHandler_Handle_Errors(t *testing.T) {
	rejected := fmt.Errorf("%w: %v", dialog.ErrTransitionRejected, domain.ErrDateNotBookable)

	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{name: "malformed date", body: `{"date":"02.11.2026"}`, wantStatus: http.StatusBadRequest},
		{name: "missing date", body: `{}`, wantStatus: http.StatusBadRequest},
		{name: "dialog expired", body: `{"date":"2026-11-02"}`, err: dialog.ErrDialogNotFound, wantStatus: http.StatusNotFound},
		{name: "foreign dialog", body: `{"date":"2026-11-02"}`, err: dialog.ErrAccessDenied, wantStatus: http.StatusForbidden},
		{name: "date not bookable", body: `{"date":"2026-11-04"}`, err: rejected, wantStatus: http.StatusConflict},
		{name: "internal", body: `{"date":"2026-11-02"}`, err: dialog.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(NewHandler(&serviceStub{err: tt.err}, logger.NewNop()), tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
