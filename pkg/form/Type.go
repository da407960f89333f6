package form

import (
	"github.com/kre8/kre8/pkg/drafts"
	"github.com/kre8/kre8/pkg/events"
	"github.com/kre8/kre8/pkg/kinds"
	"github.com/kre8/kre8/pkg/validation"
	"sync"
)

// Navigator owns form visibility and the selected kind; the controller only toggles it.
type Navigator interface {
	ToggleCreateMenuFormItem()
	ToggleCreateMenuDropdown(show bool)
	MenuItemToShow() kinds.Kind
}

type Controller struct {
	channel       events.Channel
	navigator     Navigator
	engine        *validation.Engine
	input         *drafts.InputData
	errors        map[kinds.Kind]validation.FieldErrors
	subscriptions []*events.Subscription
	started       bool
	lock          sync.Mutex
}

// View is what a renderer needs to draw the visible form.
type View struct {
	Kind     kinds.Kind
	Fields   []string
	Values   map[string]string
	Errors   validation.FieldErrors
	InfoText string
}

// Menu is an in-memory Navigator.
type Menu struct {
	showForm     bool
	showDropdown bool
	item         kinds.Kind
	lock         sync.Mutex
}
