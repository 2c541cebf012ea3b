package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"todolist/internal/config"
)

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Add        key.Binding
	Toggle     key.Binding
	Edit       key.Binding
	Delete     key.Binding
	SortToggle key.Binding
	Filter     key.Binding
	Quit       key.Binding
	Confirm    key.Binding
	Cancel     key.Binding
	NextField  key.Binding
}

func newKeyMap(k config.Keymap) keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys(k.Up, "up"), key.WithHelp(keyLabel(k.Up), "上へ")),
		Down:       key.NewBinding(key.WithKeys(k.Down, "down"), key.WithHelp(keyLabel(k.Down), "下へ")),
		Add:        key.NewBinding(key.WithKeys(k.Add), key.WithHelp(keyLabel(k.Add), "追加")),
		Toggle:     key.NewBinding(key.WithKeys(k.Toggle), key.WithHelp(keyLabel(k.Toggle), "完了切替")),
		Edit:       key.NewBinding(key.WithKeys(k.Edit), key.WithHelp(keyLabel(k.Edit), "編集")),
		Delete:     key.NewBinding(key.WithKeys(k.Delete), key.WithHelp(keyLabel(k.Delete), "削除")),
		SortToggle: key.NewBinding(key.WithKeys(k.SortToggle), key.WithHelp(keyLabel(k.SortToggle), "並び順")),
		Filter:     key.NewBinding(key.WithKeys(k.Filter), key.WithHelp(keyLabel(k.Filter), "フィルター")),
		Quit:       key.NewBinding(key.WithKeys(k.Quit, "ctrl+c"), key.WithHelp(keyLabel(k.Quit), "終了")),
		Confirm:    key.NewBinding(key.WithKeys(k.Confirm), key.WithHelp(keyLabel(k.Confirm), "確定")),
		Cancel:     key.NewBinding(key.WithKeys(k.Cancel), key.WithHelp(keyLabel(k.Cancel), "キャンセル")),
		NextField:  key.NewBinding(key.WithKeys(k.NextField), key.WithHelp(keyLabel(k.NextField), "入力欄切替")),
	}
}

// ShortHelp is the list-mode help line.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Add, k.Toggle, k.Edit, k.Delete, k.SortToggle, k.Filter, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), k.formHelp()}
}

func (k keyMap) formHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.NextField, k.Cancel}
}

type formHelp struct{ keys keyMap }

func (f formHelp) ShortHelp() []key.Binding  { return f.keys.formHelp() }
func (f formHelp) FullHelp() [][]key.Binding { return [][]key.Binding{f.keys.formHelp()} }

func keyLabel(k string) string {
	if k == " " {
		return "space"
	}
	return k
}
