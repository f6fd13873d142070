// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-fair-share/internal/utils"
	"github.com/MKhiriev/go-fair-share/models"
)

// renderNavbar renders the one-line connection indicator. known is false
// until the first probe result arrives.
func renderNavbar(status models.ConnectionStatus, known bool) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Fairshare"))
	b.WriteString("  │  ")
	b.WriteString(connectionLabel(status, known))
	return b.String()
}

func connectionLabel(status models.ConnectionStatus, known bool) string {
	switch {
	case !known:
		return helpStyle.Render("Connecting...")
	case !status.Connected:
		label := errorStyle.Render("Connect Wallet")
		if status.Err != nil {
			label += " " + helpStyle.Render("("+humanizeNodeUnavailableError(status.Err)+")")
		}
		return label
	case status.Unsupported:
		return errorStyle.Render("Wrong network")
	default:
		return okStyle.Render(status.ChainName) + "  " + utils.ShortHex(status.Account.Hex())
	}
}
