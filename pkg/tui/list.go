package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// Size of the item list before the terminal reports its real size
const (
	listWidth  = 60
	listHeight = 14
)

// Item is one entry of an ItemList
type Item struct {
	Name string `yaml:"title"`
	Desc string `yaml:"description,omitempty"`
}

// Title implements list.DefaultItem
func (i Item) Title() string { return i.Name }

// Description implements list.DefaultItem
func (i Item) Description() string { return i.Desc }

// FilterValue implements list.Item
func (i Item) FilterValue() string { return i.Name }

// itemListModel is the Bubble Tea model for the filterable item list
type itemListModel struct {
	list      list.Model
	keys      keyMap
	chosen    *Item
	cancelled bool
}

func newItemListModel(items []Item, title string) itemListModel {
	listItems := make([]list.Item, len(items))
	for i, item := range items {
		listItems[i] = item
	}

	l := list.New(listItems, list.NewDefaultDelegate(), listWidth, listHeight)
	l.Title = title
	l.Styles.Title = TitleStyle

	return itemListModel{list: l, keys: newKeyMap()}
}

func (m itemListModel) Init() tea.Cmd {
	return nil
}

func (m itemListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := ContainerStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
		return m, nil

	case tea.KeyMsg:
		// Keys belong to the filter input while the user is typing a filter
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Submit):
			if item, ok := m.list.SelectedItem().(Item); ok {
				m.chosen = &item
			}
			return m, tea.Quit
		case msg.String() == "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m itemListModel) View() string {
	if m.chosen != nil || m.cancelled {
		return ""
	}
	return ContainerStyle.Render(m.list.View())
}

// ItemList shows items under title and returns the title of the item the
// user picked. ok is false when the user quit without picking.
func ItemList(items []Item, title string) (value string, ok bool, err error) {
	final, err := run(newItemListModel(items, title))
	if err != nil {
		return "", false, fmt.Errorf("item list: %w", err)
	}
	m := final.(itemListModel)
	if m.chosen == nil {
		return "", false, nil
	}
	return m.chosen.Name, true, nil
}

// newMenuForm builds the select form backing MenuList
func newMenuForm(items []string, title, subtitle string, selected *string) *huh.Form {
	sel := huh.NewSelect[string]().
		Title(title).
		Description(subtitle).
		Options(huh.NewOptions(items...)...).
		Value(selected)

	return huh.NewForm(huh.NewGroup(sel)).WithTheme(formTheme())
}

// runForm is replaced in tests
var runForm = func(f *huh.Form) error {
	return f.Run()
}

// MenuList shows a single-choice menu and returns the chosen entry.
// ok is false when the user aborted with esc or ctrl+c.
func MenuList(items []string, title, subtitle string) (value string, ok bool, err error) {
	if len(items) == 0 {
		return "", false, nil
	}

	s, err := openSession()
	if err != nil {
		return "", false, fmt.Errorf("menu list: %w", err)
	}
	defer s.release()

	var selected string
	if err := runForm(newMenuForm(items, title, subtitle, &selected)); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("menu list: %w", err)
	}
	return selected, true, nil
}
