package file

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path"
	"testing"

	"jobportal-backend/internal/jobpost"
	"jobportal-backend/internal/model"
	"jobportal-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeCompanies map[uint]model.JobCompany

func (f fakeCompanies) FindCompany(_ context.Context, id uint) (*model.JobCompany, error) {
	c, ok := f[id]
	if !ok {
		return nil, fmt.Errorf("%w: company %d", jobpost.ErrNotFound, id)
	}
	return &c, nil
}

type mockStorageClient struct {
	payload map[string][]byte
	openErr error
}

func newMockStorageClient() *mockStorageClient {
	return &mockStorageClient{payload: make(map[string][]byte)}
}

func (m *mockStorageClient) SaveFile(_ context.Context, dir, filename string, content io.Reader) error {
	buf, err := io.ReadAll(content)
	if err != nil {
		return err
	}
	m.payload[path.Join(dir, filename)] = buf
	return nil
}

func (m *mockStorageClient) Open(_ context.Context, dir, filename string) (io.ReadCloser, int64, error) {
	if m.openErr != nil {
		return nil, 0, m.openErr
	}
	data, ok := m.payload[path.Join(dir, filename)]
	if !ok {
		return nil, 0, storage.ErrNotExist
	}
	return io.NopCloser(bytes.NewReader(data)), -1, nil
}

func (m *mockStorageClient) List(context.Context, string) ([]storage.FileInfo, error) {
	return nil, nil
}

func (m *mockStorageClient) Remove(context.Context, string, string) error { return nil }

func serve(ctrl *FileController, target string) *httptest.ResponseRecorder {
	r := gin.New()
	r.GET("/company/:id/logo", ctrl.GetCompanyLogo)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestGetCompanyLogo_LocalStorage(t *testing.T) {
	store := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, store.SaveFile(context.Background(), "company/5", "logo.png", bytes.NewReader([]byte("png-bytes"))))
	ctrl := NewFileController(fakeCompanies{5: {ID: 5, Name: "Acme", Logo: "logo.png"}}, store, nil)

	w := serve(ctrl, "/company/5/logo")

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "png-bytes", w.Body.String())
	require.Equal(t, "image/png", w.Header().Get("Content-Type"))
	require.Equal(t, fmt.Sprint(len("png-bytes")), w.Header().Get("Content-Length"))
	require.Equal(t, `inline; filename="logo.png"`, w.Header().Get("Content-Disposition"))
}

func TestGetCompanyLogo_UnknownSizeAndType(t *testing.T) {
	store := newMockStorageClient()
	store.payload["company/9/badge.unknownext"] = []byte("raw")
	ctrl := NewFileController(fakeCompanies{9: {ID: 9, Logo: "badge.unknownext"}}, store, nil)

	w := serve(ctrl, "/company/9/logo")

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "raw", w.Body.String())
	require.Equal(t, "application/octet-stream", w.Header().Get("Content-Type"))
	require.Empty(t, w.Header().Get("Content-Length"))
}

func TestGetCompanyLogo_Errors(t *testing.T) {
	companies := fakeCompanies{
		1: {ID: 1, Name: "No logo"},
		2: {ID: 2, Name: "Missing file", Logo: "gone.png"},
	}

	cases := []struct {
		name   string
		target string
		store  *mockStorageClient
		code   int
		body   string
	}{
		{"bad id", "/company/abc/logo", newMockStorageClient(), http.StatusBadRequest, "Invalid company id: abc"},
		{"unknown company", "/company/77/logo", newMockStorageClient(), http.StatusNotFound, "not found"},
		{"no logo", "/company/1/logo", newMockStorageClient(), http.StatusNotFound, "Company has no logo"},
		{"file missing", "/company/2/logo", newMockStorageClient(), http.StatusNotFound, "Logo file not found"},
		{"storage failure", "/company/2/logo", &mockStorageClient{openErr: errors.New("boom")}, http.StatusInternalServerError, "boom"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := serve(NewFileController(companies, tc.store, nil), tc.target)

			require.Equal(t, tc.code, w.Code)
			require.Contains(t, w.Body.String(), tc.body)
		})
	}
}
