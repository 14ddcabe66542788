// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-photo-catalog/models"
	"github.com/charmbracelet/lipgloss"
)

const (
	dividerWidth = 54
	quitHint     = "ctrl+c: выход"
)

type row struct {
	label string
	value string
}

func renderPage(title, body, hotKeys string) string {
	if strings.TrimSpace(body) == "" {
		body = "-"
	}

	divider := dividerStyle.Render(strings.Repeat("─", dividerWidth))
	footer := quitHint
	if hotKeys = strings.TrimSpace(hotKeys); hotKeys != "" {
		footer = hotKeys + "  " + quitHint
	}

	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		divider,
		"",
		body,
		"",
		divider,
		helpStyle.Render(footer),
	))
}

func renderRows(rows ...row) string {
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, labelStyle.Render(r.label)+valueOrDash(strings.TrimSpace(r.value)))
	}
	return strings.Join(lines, "\n")
}

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	body := renderRows(
		row{label: "Приложение", value: "go-photo-catalog sync"},
		row{label: "Версия", value: info.BuildVersion()},
		row{label: "Дата сборки", value: info.BuildDate()},
		row{label: "Коммит", value: info.BuildCommit()},
	)
	return renderPage("О ПРОГРАММЕ", body, "esc: назад")
}

func valueOrDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}

// fitText truncates v to max bytes, marking the cut with "...".
func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}
