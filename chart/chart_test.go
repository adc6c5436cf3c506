package chart

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sprint-burndown/burndown"
)

func sampleResult() *burndown.Result {
	start := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	result := &burndown.Result{
		Project:     "Rocket",
		TotalPoints: 10,
	}
	for i := 0; i < 5; i++ {
		result.Dates = append(result.Dates, start.AddDate(0, 0, i))
		result.Ideal = append(result.Ideal, 10-2.5*float64(i))
		result.Actual = append(result.Actual, 10-2*float64(i))
	}
	return result
}

func TestRenderBothProducesFiles(t *testing.T) {
	dir := t.TempDir()
	pngPath := filepath.Join(dir, "burndown.png")

	require.NoError(t, Render(sampleResult(), "both", pngPath))

	pngInfo, err := os.Stat(pngPath)
	require.NoError(t, err)
	assert.Greater(t, pngInfo.Size(), int64(0))

	htmlData, err := os.ReadFile(filepath.Join(dir, "burndown.html"))
	require.NoError(t, err)
	assert.Contains(t, string(htmlData), "Rocket - Sprint Burndown")
	assert.Contains(t, string(htmlData), "Ideal")
}

func TestRenderPNGOnly(t *testing.T) {
	dir := t.TempDir()
	pngPath := filepath.Join(dir, "burndown.png")

	require.NoError(t, Render(sampleResult(), "png", pngPath))

	_, err := os.Stat(pngPath)
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "burndown.html"))
	assert.True(t, os.IsNotExist(err))
}

func TestHTMLPath(t *testing.T) {
	assert.Equal(t, "out/burndown.html", HTMLPath("out/burndown.png"))
	assert.Equal(t, "chart.html", HTMLPath("chart"))
	assert.Equal(t, "chart.html", HTMLPath("chart.jpeg"))
}
