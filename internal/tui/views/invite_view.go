package views

import (
	"fmt"
	"strings"

	"github.com/matheus3301/huddle/internal/rpc"
	"github.com/matheus3301/huddle/internal/tui/ui"
	"github.com/rivo/tview"
	qrcode "github.com/skip2/go-qrcode"
)

// InviteScheme prefixes every invite link.
const InviteScheme = "huddle://add/"

// InviteLink returns the link a friend scans to add handle.
func InviteLink(handle string) string {
	return InviteScheme + strings.TrimPrefix(strings.TrimSpace(handle), "@")
}

// InviteView shows the signed-in account's invite link as a QR code.
type InviteView struct {
	*tview.TextView
	theme *ui.Theme
}

// NewInviteView creates the invite page.
func NewInviteView(theme *ui.Theme) *InviteView {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)
	tv.SetBorder(true)
	tv.SetBorderColor(theme.BorderColor)
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetTextColor(theme.FgColor)
	tv.SetTitle(" Invite a friend ")
	tv.SetTitleColor(theme.TitleColor)

	return &InviteView{
		TextView: tv,
		theme:    theme,
	}
}

// Name implements ui.Component.
func (iv *InviteView) Name() string { return "Invite" }

// Start implements ui.Component.
func (iv *InviteView) Start() {}

// Stop implements ui.Component.
func (iv *InviteView) Stop() {}

// Hints implements ui.Component.
func (iv *InviteView) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "esc", Description: "Back"},
	}
}

// Update renders the invite for acct, or a hint when signed out.
func (iv *InviteView) Update(acct *rpc.Account) {
	iv.Clear()
	if acct == nil || acct.Handle == "" {
		_, _ = fmt.Fprintf(iv, "\n\n[%s]Sign in to get your invite code.[-]", ui.Tag(iv.theme.MutedFgColor))
		return
	}
	link := InviteLink(acct.Handle)
	_, _ = fmt.Fprintf(iv, "\nScan to add [%s::b]%s[-:-:-]\n\n%s\n[%s]%s[-]",
		ui.Tag(iv.theme.CounterColor), tview.Escape(acct.Handle),
		renderQR(link),
		ui.Tag(iv.theme.MutedFgColor), tview.Escape(link))
}

// renderQR draws content as a QR code, two modules per character cell,
// using Unicode half blocks.
func renderQR(content string) string {
	qr, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return "(QR generation failed: " + err.Error() + ")"
	}
	bitmap := qr.Bitmap()

	var sb strings.Builder
	for y := 0; y < len(bitmap); y += 2 {
		for x := range bitmap[y] {
			top := bitmap[y][x]
			bot := y+1 < len(bitmap) && bitmap[y+1][x]
			switch {
			case top && bot:
				sb.WriteRune('█')
			case top:
				sb.WriteRune('▀')
			case bot:
				sb.WriteRune('▄')
			default:
				sb.WriteRune(' ')
			}
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}
