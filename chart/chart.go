package chart

import (
	"fmt"
	"path/filepath"
	"strings"

	"sprint-burndown/burndown"
)

// Line colors shared by both renderers.
const (
	actualColorHex = "#ff6b6b"
	idealColorHex  = "#4ecdc4"
)

// Render writes the burndown chart files for the requested chart type:
// "png" renders the static image at savePath, "html" the interactive
// page next to it, "both" renders both.
func Render(result *burndown.Result, chartType, savePath string) error {
	title := fmt.Sprintf("%s - Sprint Burndown", result.Project)

	if chartType == "png" || chartType == "both" {
		if err := RenderPNG(result, title, savePath); err != nil {
			return fmt.Errorf("rendering PNG chart: %w", err)
		}
	}
	if chartType == "html" || chartType == "both" {
		if err := RenderHTML(result, title, HTMLPath(savePath)); err != nil {
			return fmt.Errorf("rendering HTML chart: %w", err)
		}
	}
	return nil
}

// HTMLPath derives the HTML output path from the configured save path
// by swapping the extension.
func HTMLPath(savePath string) string {
	ext := filepath.Ext(savePath)
	if ext == "" {
		return savePath + ".html"
	}
	return strings.TrimSuffix(savePath, ext) + ".html"
}
