package user

import (
	"context"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/rotisserie/eris"
	"pkg.world.dev/usermgr/internal/app/usermgr/manager"
	"pkg.world.dev/usermgr/internal/pkg/printer"
)

//nolint:gochecknoglobals // read only styles
var (
	tableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func (h *Handler) List(ctx context.Context) error {
	if err := h.manager.Refresh(ctx); err != nil {
		return eris.Wrap(err, "List: failed to fetch users")
	}

	printer.Infoln(renderTable(h.manager.Rows()))
	return nil
}

// renderTable draws rows as a bordered table. Unlike the interactive view it shows
// the ID column, since edit and delete take an ID.
func renderTable(rows []manager.Row) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableBorderStyle).
		StyleFunc(func(_, _ int) lipgloss.Style { return tableCellStyle }).
		Headers("#", "ID", "Name", "Email")

	for _, row := range rows {
		if row.Placeholder {
			t.Row("", "", manager.PlaceholderText, "")
			continue
		}
		t.Row(strconv.Itoa(row.Ordinal), row.User.ID, row.User.Name, row.User.Email)
	}
	return t.Render()
}
