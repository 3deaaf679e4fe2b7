package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/utmbiblio/library-service/internal/catalog"
)

func deleteThesisRequest(t *testing.T, svc *catalog.Service, id string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	h := NewThesisHandler(svc, nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/theses/"+id, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/theses/:id")
	c.SetParamNames("id")
	c.SetParamValues(id)

	assert.NoError(t, h.Delete(c))
	return rec
}

func TestDeleteThesis_DemoRecordNoOp(t *testing.T) {
	// Demo deployment: no sessions, bypass via demo mode.  Deleting a
	// seed record succeeds without touching any backend.
	svc := catalog.NewService(catalog.NewSeededSource(), catalog.NoSessions{}, nil, true)
	rec := deleteThesisRequest(t, svc, "demo-tesis-1")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteThesis_AnonymousRejectedOutsideDemo(t *testing.T) {
	svc := catalog.NewService(catalog.NewSeededSource(), catalog.NoSessions{}, nil, false)
	rec := deleteThesisRequest(t, svc, "demo-tesis-1")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "sign in")
}

func TestDeleteThesis_UnknownBackendIDIs404(t *testing.T) {
	// A well-formed UUID reaches the source; the seeded source has no
	// backend rows, so the delete reports not-found.
	svc := catalog.NewService(catalog.NewSeededSource(), catalog.NoSessions{}, nil, true)
	rec := deleteThesisRequest(t, svc, "3f2c9b1e-8a4d-4c6f-9e2a-71b0c5d84f13")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
