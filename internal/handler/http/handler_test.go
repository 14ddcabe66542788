package http

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-photo-catalog/internal/config"
	"github.com/MKhiriev/go-photo-catalog/internal/logger"
	"github.com/MKhiriev/go-photo-catalog/internal/mock"
	"github.com/MKhiriev/go-photo-catalog/internal/service"
	"go.uber.org/mock/gomock"
)

var baseTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// handlerFixture bundles a Handler with mocked services behind it.
type handlerFixture struct {
	handler *Handler
	router  http.Handler

	catalog *mock.MockCatalogService
	peer    *mock.MockPeerService
	sync    *mock.MockSyncService
	appInfo *mock.MockAppInfoService
	factory *mock.MockForeignServerFactory
}

func newHandlerFixture(t *testing.T, app config.App) *handlerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &handlerFixture{
		catalog: mock.NewMockCatalogService(ctrl),
		peer:    mock.NewMockPeerService(ctrl),
		sync:    mock.NewMockSyncService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
		factory: mock.NewMockForeignServerFactory(ctrl),
	}

	services := &service.Services{
		AppInfoService: f.appInfo,
		CatalogService: f.catalog,
		PeerService:    f.peer,
		SyncService:    f.sync,
	}
	f.handler = NewHandler(services, f.factory, app, logger.Nop())
	f.router = f.handler.Init()

	return f
}

// do sends a request through the full router and returns the recorder.
func (f *handlerFixture) do(method, target string, body []byte, headers ...string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}
