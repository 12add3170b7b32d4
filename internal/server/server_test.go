package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/goujonmael/resmon/internal/sampler"
	"github.com/goujonmael/resmon/internal/sensor"
)

type fakeSource struct {
	snap     sampler.Snapshot
	readings []sensor.Reading
}

func (f fakeSource) Snapshot() sampler.Snapshot { return f.snap }

func (f fakeSource) Readings() []sensor.Reading { return f.readings }

func TestSnapshotEndpoint(t *testing.T) {
	src := fakeSource{
		snap: sampler.Snapshot{
			CPUUsagePercent: 12.5,
			AvgFreqMHz:      3100,
			CPUTempCelsius:  55.2,
			RAMUsagePercent: 41.0,
		},
	}
	srv := httptest.NewServer(NewRouter(src, zap.NewNop().Sugar()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/snapshot")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var got sampler.Snapshot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, src.snap, got)
}

func TestSensorsEndpoint(t *testing.T) {
	src := fakeSource{
		readings: []sensor.Reading{
			{Label: "fan1", Temp: 0},
			{Label: "CPU Package", Temp: 48},
		},
	}
	srv := httptest.NewServer(NewRouter(src, zap.NewNop().Sugar()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/sensors")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got []struct {
		Category string  `json:"category"`
		Label    string  `json:"label"`
		Temp     float64 `json:"temperature_celsius"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got, 2)

	// Classified and sorted by (category, label).
	assert.Equal(t, "CPU", got[0].Category)
	assert.Equal(t, "CPU Package", got[0].Label)
	assert.Equal(t, "Fan", got[1].Category)
	assert.Equal(t, "fan1", got[1].Label)
}

func TestSensorsEndpointEmpty(t *testing.T) {
	srv := httptest.NewServer(NewRouter(fakeSource{}, zap.NewNop().Sugar()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/sensors")
	require.NoError(t, err)
	defer resp.Body.Close()

	var got []any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Empty(t, got)
}
