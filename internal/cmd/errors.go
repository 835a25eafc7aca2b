package cmd

import (
	"fmt"
	"io"

	"themeconv/internal/domain"
	"themeconv/internal/theme"
)

// ReportError prints err and, for fatal errors, the suggested remedy
func ReportError(w io.Writer, err error) {
	fmt.Fprintln(w, theme.ErrorStyle.Render("Error:")+" "+err.Error())
	if remedy := domain.Remedy(err); remedy != "" {
		fmt.Fprintln(w, theme.RemedyStyle.Render("  "+remedy))
	}
}
