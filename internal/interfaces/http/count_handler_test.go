package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/reconciliation"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/Almacen-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests CountHandler — anotar cantidades contadas
// ──────────────────────────────────────────────────────────────────────────────

const (
	countVanID  = "00000000-0000-0000-0000-000000000010"
	countItemID = "00000000-0000-0000-0000-000000000011"
)

// buildCountApp levanta la ruta de recuentos sobre repositorios en memoria y
// deja un recuento abierto con una línea sin contar.
func buildCountApp(t *testing.T) (*fiber.App, *reconciliation.UseCase, string) {
	t.Helper()
	store := memory.NewStore()
	ctx := context.Background()
	now := time.Now()

	locRepo := memory.NewLocationRepository(store)
	require.NoError(t, locRepo.Create(ctx, &entity.Location{
		ID: countVanID, Name: "Furgoneta 1", Kind: entity.LocationKindVan, CreatedAt: now, UpdatedAt: now,
	}))
	itemRepo := memory.NewItemRepository(store)
	require.NoError(t, itemRepo.Create(ctx, &entity.Item{
		ID: countItemID, Name: "Manguito PVC 40mm", Unit: "ud", Active: true, CreatedAt: now, UpdatedAt: now,
	}))

	recon := reconciliation.NewUseCase(
		memory.NewTxRunner(store),
		memory.NewInventoryCountRepository(store),
		locRepo,
	)
	count, err := recon.Open(ctx, testUserID, reconciliation.OpenInput{
		LocationID:       countVanID,
		IncludeZeroStock: true,
	})
	require.NoError(t, err)

	handler := apphttp.NewCountHandler(recon)
	app := fiber.New()
	app.Put("/counts/:id/lines/:itemId", handler.RecordLine)
	return app, recon, count.ID
}

func putLine(t *testing.T, app *fiber.App, countID, itemID, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPut, "/counts/"+countID+"/lines/"+itemID, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// Un cuerpo sin counted no equivale a contar cero: se rechaza con VALIDATION y
// la línea sigue sin contar.
func TestRecordLine_SinCounted_Retorna400(t *testing.T) {
	app, recon, countID := buildCountApp(t)

	resp := putLine(t, app, countID, countItemID, `{}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errBody map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errBody))
	assert.Equal(t, "VALIDATION", errBody["code"])

	count, err := recon.Get(context.Background(), countID)
	require.NoError(t, err)
	require.Len(t, count.Lines, 1)
	assert.Nil(t, count.Lines[0].Counted, "la línea no debe quedar contada")
}

func TestRecordLine_ConCounted_AnotaYCalcula(t *testing.T) {
	app, _, countID := buildCountApp(t)

	resp := putLine(t, app, countID, countItemID, `{"counted": 3}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var line struct {
		Counted    *decimal.Decimal `json:"counted"`
		Difference *decimal.Decimal `json:"difference"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&line))
	require.NotNil(t, line.Counted)
	require.NotNil(t, line.Difference)
	assert.True(t, line.Counted.Equal(decimal.NewFromInt(3)))
	assert.True(t, line.Difference.Equal(decimal.NewFromInt(3)), "3 contado - 0 teórico = 3")
}

// Contar cero explícitamente sí es válido y deja diferencia cero.
func TestRecordLine_CeroExplicitoEsValido(t *testing.T) {
	app, _, countID := buildCountApp(t)

	resp := putLine(t, app, countID, countItemID, `{"counted": 0}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var line struct {
		Counted    *decimal.Decimal `json:"counted"`
		Difference *decimal.Decimal `json:"difference"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&line))
	require.NotNil(t, line.Counted)
	assert.True(t, line.Counted.IsZero())
	assert.True(t, line.Difference.IsZero())
}
