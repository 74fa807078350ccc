package http_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-ledger/internal/application/dto"
	pkgjwt "github.com/jhoicas/inventory-ledger/pkg/jwt"
)

func bearer(t *testing.T, secret string, expMinutes int) string {
	t.Helper()
	tok, err := pkgjwt.Generate(secret, "ops", testIssuer, expMinutes)
	require.NoError(t, err)
	return "Bearer " + tok
}

func TestAuth_SinSecretEscrituraAbierta(t *testing.T) {
	app, _ := newTestApp(t, appOptions{})
	resp := doJSON(t, app, http.MethodPost, "/api/locations", dto.CreateLocationRequest{LocationID: "L001", Name: "A"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestAuth_EscrituraRequiereToken(t *testing.T) {
	app, _ := newTestApp(t, appOptions{secret: testJWTSecret})
	body := dto.CreateLocationRequest{LocationID: "L001", Name: "A"}

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"sin header", "", http.StatusUnauthorized},
		{"formato inválido", "Token abc", http.StatusUnauthorized},
		{"token malformado", "Bearer token.invalido.aqui", http.StatusUnauthorized},
		{"secret incorrecto", bearer(t, "otro-secret", 60), http.StatusUnauthorized},
		{"expirado", bearer(t, testJWTSecret, -1), http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var headers []string
			if tt.header != "" {
				headers = []string{"Authorization", tt.header}
			}
			resp := doJSON(t, app, http.MethodPost, "/api/locations", body, headers...)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}

	resp := doJSON(t, app, http.MethodPost, "/api/locations", body, "Authorization", bearer(t, testJWTSecret, 60))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestAuth_LecturasPublicas(t *testing.T) {
	app, _ := newTestApp(t, appOptions{secret: testJWTSecret, seed: true})
	for _, path := range []string{"/api/products", "/api/locations/L001", "/api/movements", "/api/reports/balance"} {
		resp := doJSON(t, app, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
}

// Las escrituras autenticadas dejan el sujeto del token en la línea de log.
func TestAuth_SujetoEnLogDeEscritura(t *testing.T) {
	var buf bytes.Buffer
	app, _ := newTestApp(t, appOptions{secret: testJWTSecret, seed: true, logOut: &buf})

	resp := doJSON(t, app, http.MethodPost, "/api/movements", map[string]any{
		"movement_id": "M100", "product_id": "P001", "to_location": "L001", "qty": 5,
	}, "Authorization", bearer(t, testJWTSecret, 60), "X-Request-ID", "req-audit")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	entry := logEntry(t, &buf, "movimiento registrado")
	require.NotNil(t, entry, "falta la línea de auditoría")
	assert.Equal(t, "ops", entry["subject"])
	assert.Equal(t, "req-audit", entry["request_id"])
	assert.Equal(t, "M100", entry["movement_id"])
}

func TestAuth_SinSecretLogSinSujeto(t *testing.T) {
	var buf bytes.Buffer
	app, _ := newTestApp(t, appOptions{logOut: &buf})

	resp := doJSON(t, app, http.MethodPost, "/api/products", dto.CreateProductRequest{ProductID: "P100", Name: "Tornillo"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	entry := logEntry(t, &buf, "producto creado")
	require.NotNil(t, entry)
	assert.NotContains(t, entry, "subject")
	assert.NotEmpty(t, entry["request_id"])
}

func logEntry(t *testing.T, buf *bytes.Buffer, message string) map[string]any {
	t.Helper()
	sc := bufio.NewScanner(bytes.NewReader(buf.Bytes()))
	for sc.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &entry))
		if entry["message"] == message {
			return entry
		}
	}
	return nil
}
