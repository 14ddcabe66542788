package http

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-photo-catalog/internal/config"
	"github.com/MKhiriev/go-photo-catalog/internal/service"
	"github.com/MKhiriev/go-photo-catalog/internal/store"
	"github.com/MKhiriev/go-photo-catalog/internal/validators"
	"github.com/MKhiriev/go-photo-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAddFile(t *testing.T) {
	f := newHandlerFixture(t, config.App{})
	f.catalog.EXPECT().
		AddFile(gomock.Any(), models.UploadRequest{Extension: "jpg", Data: []byte("image")}).
		Return(models.File{ID: 77, Extension: "jpg", CreationDate: baseTime, Tags: []string{}}, nil)

	rec := f.do(http.MethodPost, "/api/files?extension=jpg", []byte("image"))
	require.Equal(t, http.StatusCreated, rec.Code)

	var file models.File
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &file))
	assert.Equal(t, int64(77), file.ID)
	assert.Equal(t, "jpg", file.Extension)
}

func TestAddFile_Errors(t *testing.T) {
	t.Run("missing extension", func(t *testing.T) {
		f := newHandlerFixture(t, config.App{})
		rec := f.do(http.MethodPost, "/api/files", []byte("x"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejected upload", func(t *testing.T) {
		f := newHandlerFixture(t, config.App{})
		f.catalog.EXPECT().AddFile(gomock.Any(), gomock.Any()).Return(models.File{}, validators.ErrEmptyFileContent)

		rec := f.do(http.MethodPost, "/api/files?extension=jpg", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), validators.ErrEmptyFileContent.Error())
	})
}

func TestGetCatalogFile(t *testing.T) {
	f := newHandlerFixture(t, config.App{})
	f.catalog.EXPECT().GetFile(gomock.Any(), int64(3)).
		Return(models.File{ID: 3, Extension: "png", CreationDate: baseTime, Tags: []string{"sea"}}, nil)

	rec := f.do(http.MethodGet, "/api/files/3", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"id":3,"extension":"png","creation_date":"2024-05-01T12:00:00Z","tags":["sea"],"removed":false}`,
		rec.Body.String())
}

func TestCatalogMutations(t *testing.T) {
	date := baseTime.Add(-24 * time.Hour)

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		prepare    func(f *handlerFixture)
		wantStatus int
	}{
		{
			name:   "remove file",
			method: http.MethodDelete,
			target: "/api/files/3",
			prepare: func(f *handlerFixture) {
				f.catalog.EXPECT().RemoveFile(gomock.Any(), int64(3)).Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:   "remove already removed file",
			method: http.MethodDelete,
			target: "/api/files/3",
			prepare: func(f *handlerFixture) {
				f.catalog.EXPECT().RemoveFile(gomock.Any(), int64(3)).Return(service.ErrFileIsRemoved)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:   "add tag",
			method: http.MethodPost,
			target: "/api/files/3/tags",
			body:   `{"tag":"beach"}`,
			prepare: func(f *handlerFixture) {
				f.catalog.EXPECT().AddTag(gomock.Any(), int64(3), models.TagRequest{Tag: "beach"}).Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "add tag with malformed body",
			method:     http.MethodPost,
			target:     "/api/files/3/tags",
			body:       `{"tag":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "add tag to unknown file",
			method: http.MethodPost,
			target: "/api/files/404/tags",
			body:   `{"tag":"x"}`,
			prepare: func(f *handlerFixture) {
				f.catalog.EXPECT().AddTag(gomock.Any(), int64(404), gomock.Any()).Return(store.ErrNoSuchFileInDatabase)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "remove escaped tag",
			method: http.MethodDelete,
			target: "/api/files/3/tags/summer%202023",
			prepare: func(f *handlerFixture) {
				f.catalog.EXPECT().RemoveTag(gomock.Any(), int64(3), models.TagRequest{Tag: "summer 2023"}).Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:   "remove missing tag",
			method: http.MethodDelete,
			target: "/api/files/3/tags/none",
			prepare: func(f *handlerFixture) {
				f.catalog.EXPECT().RemoveTag(gomock.Any(), int64(3), gomock.Any()).Return(service.ErrNoSuchTag)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:   "set creation date",
			method: http.MethodPut,
			target: "/api/files/3/creation_date",
			body:   `{"date":"` + date.Format(time.RFC3339) + `"}`,
			prepare: func(f *handlerFixture) {
				f.catalog.EXPECT().SetCreationDate(gomock.Any(), int64(3), gomock.Any()).Return(nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "invalid id",
			method:     http.MethodDelete,
			target:     "/api/files/abc",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHandlerFixture(t, config.App{})
			if tt.prepare != nil {
				tt.prepare(f)
			}

			var body []byte
			if tt.body != "" {
				body = []byte(tt.body)
			}

			rec := f.do(tt.method, tt.target, body)
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}
}

func TestCatalogRoutes_UnsupportedMethodIs404(t *testing.T) {
	f := newHandlerFixture(t, config.App{})

	rec := f.do(http.MethodPatch, "/api/files/3", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
