package commands

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"VoltVault/internal/config"
)

// captureOut перенаправляет вывод CLI в буфер на время теста.
func captureOut(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	old := Out
	Out = buf
	t.Cleanup(func() { Out = old })
	return buf
}

// testConfig собирает конфиг, указывающий на тестовый сервер.
func testConfig(t *testing.T, srv *httptest.Server) *config.Config {
	t.Helper()
	base := strings.TrimPrefix(srv.URL, "http://")
	return &config.Config{BaseURL: base, ServerURL: srv.URL}
}

// isolateAuthFiles уводит файлы токена и handle во временный каталог.
func isolateAuthFiles(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

// stubServer — минимальный сервер с задаваемым обработчиком.
func stubServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}
