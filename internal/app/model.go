package app

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriInspect/internal/actions"
	"github.com/Rorical/RoriInspect/internal/config"
	"github.com/Rorical/RoriInspect/internal/core"
	"github.com/Rorical/RoriInspect/internal/dispatcher"
	"github.com/Rorical/RoriInspect/internal/models"
	"github.com/Rorical/RoriInspect/internal/scene"
	"github.com/Rorical/RoriInspect/internal/update"
	"github.com/Rorical/RoriInspect/ui/components"
)

type AppModel struct {
	appModel   models.AppModel
	dispatcher *dispatcher.EventDispatcher

	tree    *scene.Tree
	overlay scene.Overlay
	roots   map[models.Category]models.ListRoot

	inputs  map[models.WidgetID]*textinput.Model
	focus   []models.FocusableWidget // registry, fixed after setup
	policy  core.FocusPolicy
	tracker *update.InteractionTracker
	actions *actions.Registry

	tickInterval time.Duration
	maxRows      int
	frame        string
}

func NewAppModel(disp *dispatcher.EventDispatcher, cfg *config.Config) (*AppModel, error) {
	tree := scene.NewTree()
	overlay, err := scene.BuildOverlay(tree)
	if err != nil {
		return nil, err
	}

	m := &AppModel{
		appModel: models.AppModel{
			Pending: make([]models.DisplayEntity, 0),
			Status:  "Ready",
		},
		dispatcher:   disp,
		tree:         tree,
		overlay:      overlay,
		roots:        overlay.Roots(),
		inputs:       make(map[models.WidgetID]*textinput.Model),
		policy:       focusPolicy(cfg),
		tracker:      update.NewInteractionTracker(),
		actions:      actions.NewRegistry(),
		tickInterval: cfg.TickInterval,
		maxRows:      cfg.List.MaxRows,
	}

	for _, form := range overlay.FormList() {
		in := textinput.New()
		in.Placeholder = "Name"
		in.Prompt = ""
		in.Blur()
		m.inputs[form.Input] = &in
		m.focus = append(m.focus, models.FocusableWidget{ID: form.Input, Active: false})
		m.actions.Register(actions.Binding{
			Button: form.Button,
			Input:  form.Input,
			Action: actions.CreateEntity{Category: form.Category},
		})
	}
	m.layout()
	return m, nil
}

func focusPolicy(cfg *config.Config) core.FocusPolicy {
	policy := core.FocusPolicy{EmitUnchanged: cfg.Focus.EmitUnchanged}
	if cfg.Focus.ForeignPress == config.ForeignPressBlur {
		policy.ForeignPress = core.BlurOnForeignPress
	}
	return policy
}

func (m *AppModel) SetCoreReady(ready bool) {
	m.appModel.CoreReady = ready
}

func (m *AppModel) Init() tea.Cmd {
	return tea.Batch(
		update.TickCmd(m.tickInterval),
		m.dispatcher.ListenForUIEvents(),
	)
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case dispatcher.CoreEventMsg:
		// Handle core events and continue listening
		update.HandleCoreEvent(&m.appModel, msg)
		cmd = m.dispatcher.ListenForUIEvents()
	case update.TickMsg:
		cmd = m.tick()
	case tea.WindowSizeMsg:
		update.HandleWindowSizeMsg(&m.appModel, msg)
	case tea.MouseMsg:
		m.tracker.HandleMouse(msg)
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	default:
		cmd = m.updateActiveInput(msg)
	}

	m.layout()
	return m, cmd
}

// tick runs both reducers over the state gathered since the previous tick
func (m *AppModel) tick() tea.Cmd {
	m.appModel.Ticks++

	appends := core.Sync(update.DrainPending(&m.appModel), m.roots)
	if err := m.tree.Apply(appends); err != nil {
		log.Printf("list sync: %v", err)
	}

	events := m.tracker.Drain()
	cmds := []tea.Cmd{m.applyFocus(core.Reconcile(events, m.focus, m.policy))}

	for _, ev := range events {
		if ev.State != models.InteractionPressed {
			continue
		}
		if binding, ok := m.actions.Lookup(ev.WidgetID); ok {
			m.submit(binding)
		}
	}

	cmds = append(cmds, update.TickCmd(m.tickInterval))
	return tea.Batch(cmds...)
}

// applyFocus applies a command batch to the registry and the inputs
func (m *AppModel) applyFocus(cmds []models.SetActiveCommand) tea.Cmd {
	if len(cmds) == 0 {
		return nil
	}
	m.focus = core.ApplyFocus(m.focus, cmds)

	var blink tea.Cmd
	for _, w := range m.focus {
		in := m.inputs[w.ID]
		if w.Active {
			blink = in.Focus()
		} else {
			in.Blur()
		}
	}
	return blink
}

func (m *AppModel) activeInput() (models.WidgetID, *textinput.Model) {
	for _, w := range m.focus {
		if w.Active {
			return w.ID, m.inputs[w.ID]
		}
	}
	return 0, nil
}

func (m *AppModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c", "esc":
		return tea.Quit
	case "enter":
		if id, in := m.activeInput(); in != nil {
			if binding, ok := m.actions.ForInput(id); ok {
				m.submit(binding)
			}
		}
		return nil
	}
	return m.updateActiveInput(msg)
}

// updateActiveInput forwards a message to the input holding focus only
func (m *AppModel) updateActiveInput(msg tea.Msg) tea.Cmd {
	_, in := m.activeInput()
	if in == nil {
		return nil
	}
	var cmd tea.Cmd
	*in, cmd = in.Update(msg)
	return cmd
}

func (m *AppModel) submit(binding actions.Binding) {
	in := m.inputs[binding.Input]
	if in == nil {
		return
	}
	name := in.Value()
	event, err := m.actions.Trigger(binding.Button, name)
	if err != nil {
		log.Printf("submit: %v", err)
		return
	}
	if update.SendCreate(&m.appModel, m.dispatcher.GetEventBus(), event) {
		in.Reset()
		m.appModel.Status = fmt.Sprintf("Requested %s %q", binding.Action.Name(), name)
	}
}

// layout renders the frame and refreshes the pointer hit zones
func (m *AppModel) layout() {
	forms := m.overlay.FormList()
	views := make([]components.FormView, len(forms))
	for i, f := range forms {
		in := m.inputs[f.Input]
		views[i] = components.FormView{
			Header:        m.headerText(f.Header),
			Input:         in.View(),
			Active:        in.Focused(),
			ButtonHovered: m.tracker.State(f.Button) == models.InteractionHovered,
		}
	}

	status := fmt.Sprintf("%s | characters %d | items %d | tick %d",
		m.appModel.Status, m.appModel.Characters, m.appModel.Items, m.appModel.Ticks)

	frame, placed := components.RenderOverlay(components.OverlayView{
		Characters: m.tree.Labels(m.overlay.CharacterList),
		Items:      m.tree.Labels(m.overlay.ItemList),
		Forms:      views,
		Status:     status,
		MaxRows:    m.maxRows,
		Width:      m.appModel.Width,
	})
	m.frame = frame

	zones := []update.Zone{{
		Widget: m.overlay.Display,
		Rect:   update.Rect{W: max(m.appModel.Width, 1), H: max(m.appModel.Height, 1)},
	}}
	for i, p := range placed {
		zones = append(zones,
			update.Zone{Widget: forms[i].Input, Rect: update.Rect{X: p.X + p.InputX, Y: p.Y + p.InputY, W: p.InputW, H: p.InputH}},
			update.Zone{Widget: forms[i].Button, Rect: update.Rect{X: p.X + p.ButtonX, Y: p.Y + p.ButtonY, W: p.ButtonW, H: 1}},
		)
	}
	m.tracker.SetZones(zones)
}

func (m *AppModel) headerText(id models.WidgetID) string {
	if w, ok := m.tree.Get(id); ok {
		return w.Label.Text
	}
	return ""
}

func (m *AppModel) View() string {
	return m.frame
}
