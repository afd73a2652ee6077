package http

import (
	"context"
	"encoding/json"
	"html/template"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/fuel-service/internal/domain/dto"
	"github.com/guttosm/fuel-service/internal/domain/model"
	"github.com/guttosm/fuel-service/internal/middleware"
	"github.com/guttosm/fuel-service/internal/repository"
	"github.com/guttosm/fuel-service/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fleet holds an in-memory truck class service seeded with a small fleet.
type fleet struct {
	classes    *service.TruckClassServiceImpl
	calculator *service.FuelCalculatorService
	twoAxle    string
	flatbed    string
	retired    string
}

func newFleet(t *testing.T) *fleet {
	t.Helper()
	ctx := context.Background()

	classes := service.NewTruckClassService(repository.NewMemoryTruckClassRepository(), nil)
	_, err := classes.Seed(ctx, []model.TruckClass{
		model.NewTruckClass("2-Axle Truck", 5, 0.85),
		model.NewTruckClass("Flatbed", 4, 0.9),
		model.NewTruckClass("Retired Tipper", 3, 0.8),
	})
	require.NoError(t, err)

	f := &fleet{classes: classes, calculator: service.NewFuelCalculatorService(classes)}
	for name, id := range map[string]*string{"2-Axle Truck": &f.twoAxle, "Flatbed": &f.flatbed, "Retired Tipper": &f.retired} {
		tc, err := classes.GetByName(ctx, name)
		require.NoError(t, err)
		*id = tc.ID
	}
	_, err = classes.Deactivate(ctx, f.retired)
	require.NoError(t, err)
	return f
}

// newTestEngine returns a bare engine with request ids and the calculator template.
func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	router := gin.New()
	router.SetHTMLTemplate(template.Must(LoadTemplates()))
	router.Use(middleware.RequestID())
	return router
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) dto.SuccessResponse {
	t.Helper()
	var resp dto.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
	return resp
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}
