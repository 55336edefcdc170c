package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mandala/pkg/errors"
	"github.com/matzehuels/mandala/pkg/geometry"
	"github.com/matzehuels/mandala/pkg/layout"
	"github.com/matzehuels/mandala/pkg/mandala"
	"github.com/matzehuels/mandala/pkg/render/canvas"
	"github.com/matzehuels/mandala/pkg/store"
	"github.com/matzehuels/mandala/pkg/zorder"
)

// editStep is the distance in screen pixels one arrow key drags an item.
const editStep = 12.0

// editCommand creates the edit command.
func (c *CLI) editCommand() *cobra.Command {
	var snapshot string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Move items of a stored mandala from the terminal",
		Long: `Move items of a stored mandala from the terminal.

  tab              select the next item
  arrows           drag the selected item
  space            show or hide the children of the selected note
  + / -            zoom in / out
  s                write a PNG snapshot
  q                quit

Every drop is written to the configured store.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := c.newStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			m, err := st.Load(ctx, args[0])
			if err != nil {
				return err
			}
			if snapshot == "" {
				snapshot = m.ID + ".png"
			}
			model := newEditModel(ctx, m, st, snapshot)
			final, err := tea.NewProgram(model, tea.WithContext(ctx)).Run()
			if err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "run editor")
			}
			if em, ok := final.(editModel); ok && em.err != nil {
				printError("%s", ErrorMessage(em.err))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&snapshot, "snapshot", "", "PNG snapshot path (default <id>.png)")
	return cmd
}

// editModel is the bubbletea model driving a canvas with the keyboard.
type editModel struct {
	ctx      context.Context
	canvas   *canvas.Canvas
	selected zorder.Entry
	snapshot string
	status   string
	err      error
	now      func() time.Time
}

func newEditModel(ctx context.Context, m *mandala.Mandala, w store.Store, snapshot string) editModel {
	em := editModel{
		ctx:      ctx,
		canvas:   canvas.New(m, canvas.WithWriter(w), canvas.WithLogger(loggerFromContext(ctx))),
		snapshot: snapshot,
		now:      time.Now,
	}
	if items := em.selectable(); len(items) > 0 {
		em.selected = items[len(items)-1].Entry()
	}
	return em
}

// selectable returns the draggable items in paint order.
func (m editModel) selectable() []layout.Item {
	var out []layout.Item
	for _, it := range m.canvas.Scene().Items {
		if it.Draggable {
			out = append(out, it)
		}
	}
	return out
}

func (m editModel) Init() tea.Cmd {
	return nil
}

func (m editModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "tab":
		m.cycle()
	case "up":
		m.drag(0, -editStep)
	case "down":
		m.drag(0, editStep)
	case "left":
		m.drag(-editStep, 0)
	case "right":
		m.drag(editStep, 0)
	case " ", "space":
		if m.selected.Kind == mandala.KindNote {
			open := !m.canvas.Expanded(m.selected.ID)
			m.canvas.SetExpanded(m.selected.ID, open)
			m.status = fmt.Sprintf("%s %s", map[bool]string{true: "expanded", false: "collapsed"}[open], m.selected.ID)
		}
	case "+", "=":
		m.zoom(1.25)
	case "-":
		m.zoom(0.8)
	case "s":
		m.writeSnapshot()
	}
	return m, nil
}

// cycle selects the item painted lowest and raises it, so repeated presses
// visit every item.
func (m *editModel) cycle() {
	items := m.selectable()
	if len(items) == 0 {
		return
	}
	m.selected = items[0].Entry()
	m.canvas.Raise(m.selected)
	m.status = ""
}

// drag presses the selected item at its center, moves by dx, dy screen
// pixels and releases, so the drop is written like a pointer drag.
func (m *editModel) drag(dx, dy float64) {
	it, ok := m.canvas.Scene().Item(m.selected)
	if !ok {
		return
	}
	vp := m.canvas.Viewport()
	from := vp.ToScreen(it.Center)
	to := from.Add(geometry.Point{X: dx, Y: dy})

	t := m.now()
	if !m.canvas.PointerDown(1, from, t) {
		return
	}
	m.canvas.PointerMove(1, to)
	if err := m.canvas.PointerUp(m.ctx, 1, to, t); err != nil {
		m.err = err
		m.status = "write failed: " + ErrorMessage(err)
		return
	}
	m.err = nil
	m.status = "moved " + it.ID
}

func (m *editModel) zoom(factor float64) {
	size := float64(canvas.DefaultSize)
	if m.canvas.Zoom(factor, geometry.Point{X: size / 2, Y: size / 2}) {
		m.status = fmt.Sprintf("zoom %.2fx", m.canvas.Viewport().Scale*m.canvas.Frame().Size/size)
	}
}

func (m *editModel) writeSnapshot() {
	f, err := os.Create(m.snapshot)
	if err != nil {
		m.err = errors.Wrap(errors.ErrCodeStorage, err, "create %s", m.snapshot)
		m.status = ErrorMessage(m.err)
		return
	}
	defer f.Close()
	if err := m.canvas.EncodePNG(f); err != nil {
		m.err = err
		m.status = ErrorMessage(err)
		return
	}
	m.status = "snapshot written to " + m.snapshot
}

func (m editModel) View() string {
	var b strings.Builder
	doc := m.canvas.Document()

	b.WriteString(StyleTitle.Render("Mandala " + doc.ID))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("tab select  arrows move  space orbit  +/- zoom  s snapshot  q quit"))
	b.WriteString("\n\n")

	items := m.selectable()
	for i := len(items) - 1; i >= 0; i-- {
		it := items[i]
		dim, section := placementOf(doc, it)
		line := fmt.Sprintf("%-9s %-14s %-20s %s / %s",
			it.Kind, truncate(it.ID, 14), truncate(strings.Join(it.Text, " "), 20), dim, section)
		if it.Entry() == m.selected {
			b.WriteString(styleSelected.Render("▸ " + line))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(colorWhite).Render("  " + line))
		}
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		style := StyleDim
		if m.err != nil {
			style = StyleWarning
		}
		b.WriteString(style.Render(m.status))
	}
	return b.String()
}
