package form

import "github.com/kre8/kre8/pkg/kinds"

func NewMenu(item kinds.Kind) *Menu {
	return &Menu{
		showForm:     true,
		showDropdown: true,
		item:         item,
	}
}

func (m *Menu) ToggleCreateMenuFormItem() {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.showForm = !m.showForm
}

func (m *Menu) ToggleCreateMenuDropdown(show bool) {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.showDropdown = show
}

func (m *Menu) MenuItemToShow() kinds.Kind {
	m.lock.Lock()
	defer m.lock.Unlock()

	return m.item
}

func (m *Menu) Select(item kinds.Kind) {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.item = item
	m.showForm = true
}

func (m *Menu) FormVisible() bool {
	m.lock.Lock()
	defer m.lock.Unlock()

	return m.showForm
}

func (m *Menu) DropdownVisible() bool {
	m.lock.Lock()
	defer m.lock.Unlock()

	return m.showDropdown
}
