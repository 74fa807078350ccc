package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-ledger/internal/application/dto"
	"github.com/jhoicas/inventory-ledger/internal/application/inventory"
	"github.com/jhoicas/inventory-ledger/internal/application/usecase"
	"github.com/jhoicas/inventory-ledger/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/inventory-ledger/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/inventory-ledger/internal/interfaces/http"
	"github.com/jhoicas/inventory-ledger/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "inventory-ledger-test"
)

type appOptions struct {
	secret string
	seed   bool
	logOut io.Writer // si no es nil, los logs de la API se escriben aquí
}

// newTestApp construye la API completa sobre el almacén en memoria.
func newTestApp(t *testing.T, opts appOptions) (*fiber.App, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	if opts.seed {
		_, err := inventory.NewSeedUseCase(store, store.Products()).Seed(context.Background())
		require.NoError(t, err)
	}
	log := logger.Nop()
	if opts.logOut != nil {
		log = logger.NewWriter(opts.logOut, "info")
	}
	deps := apphttp.RouterDeps{
		ProductUC:  usecase.NewProductUseCase(store.Products(), store.Movements()),
		LocationUC: usecase.NewLocationUseCase(store.Locations(), store.Movements()),
		MovementUC: inventory.NewMovementUseCase(store.Movements(), store.Products(), store.Locations()),
		BalanceUC: inventory.NewBalanceUseCase(store.Movements(), store.Products(), store.Locations(),
			infrapdf.NewMarotoBalanceReport("")),
		Logger:    log,
		JWTSecret: opts.secret,
	}
	return apphttp.NewServer(apphttp.ServerConfig{AppName: "inventory-ledger-test"}, deps), store
}

// doJSON lanza una petición con cuerpo JSON (body puede ser string o cualquier valor serializable).
func doJSON(t *testing.T, app *fiber.App, method, path string, body any, headers ...string) *http.Response {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func decodeError(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	return decode[dto.ErrorResponse](t, resp)
}

func fieldReason(e dto.ErrorResponse, field string) string {
	for _, f := range e.Fields {
		if f.Field == field {
			return f.Reason
		}
	}
	return ""
}
