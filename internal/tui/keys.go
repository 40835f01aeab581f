package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Left, Right         key.Binding
	Add, AddSub, Edit   key.Binding
	Complete, Undo      key.Binding
	PrevCol, NextCol    key.Binding
	Up, Down            key.Binding
	Demote, Promote     key.Binding
	Bin, Restore, Clear key.Binding
	Help, Quit          key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev column")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next column")),
		Add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		AddSub:   key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "add subtask")),
		Edit:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "rename")),
		Complete: key.NewBinding(key.WithKeys(" ", "d"), key.WithHelp("space/d", "complete")),
		Undo:     key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo complete")),
		PrevCol:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "move left")),
		NextCol:  key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "move right")),
		Up:       key.NewBinding(key.WithKeys("K"), key.WithHelp("K", "move up")),
		Down:     key.NewBinding(key.WithKeys("J"), key.WithHelp("J", "move down")),
		Demote:   key.NewBinding(key.WithKeys(">"), key.WithHelp(">", "nest under above")),
		Promote:  key.NewBinding(key.WithKeys("<"), key.WithHelp("<", "unnest")),
		Bin:      key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "bin")),
		Restore:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restore")),
		Clear:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear bin")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Complete, k.PrevCol, k.NextCol, k.Bin, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Add, k.AddSub, k.Edit, k.Complete, k.Undo},
		{k.PrevCol, k.NextCol, k.Demote, k.Promote},
		{k.Bin, k.Restore, k.Clear, k.Quit},
	}
}
