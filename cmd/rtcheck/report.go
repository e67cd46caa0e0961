// Copyright 2025 go-builtins Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#90EE90"))

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// RenderReport formats a report as a summary line and a per-routine table.
func RenderReport(r *Report) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("rtcheck"))
	fmt.Fprintf(&b, " target=%s word=%d seed=%d host=%s\n", r.Target, r.WordSize, r.Seed, r.Host)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("SYMBOL", "CHECKED", "MISMATCHES", "FIRST").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, res := range r.Results {
		mismatches := okStyle.Render("0")
		if res.Mismatches > 0 {
			mismatches = failStyle.Render(strconv.Itoa(res.Mismatches))
		}
		t.Row(res.Symbol, strconv.Itoa(res.Checked), mismatches, res.FirstMismatch)
	}
	b.WriteString(t.Render())
	b.WriteByte('\n')

	if r.Failed() {
		b.WriteString(failStyle.Render("FAIL"))
	} else {
		b.WriteString(okStyle.Render("ok"))
	}
	return b.String()
}
