package viewmodel

import "github.com/khatasathi/inventory-admin/internal/models"

type DialogState int

const (
	Idle DialogState = iota
	Adding
	Editing
	Viewing
	ConfirmingDelete
)

func (s DialogState) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Adding:
		return "Adding"
	case Editing:
		return "Editing"
	case Viewing:
		return "Viewing"
	case ConfirmingDelete:
		return "ConfirmingDelete"
	default:
		return "Unknown"
	}
}

// Dialog is the add/edit/view/delete workflow for one product at a time.
// Drafts never survive a return to Idle.
type Dialog struct {
	state  DialogState
	active models.Product
	draft  models.ProductInput
}

func (d *Dialog) State() DialogState {
	return d.state
}

// Active returns the product being edited, viewed or deleted.
func (d *Dialog) Active() (models.Product, bool) {
	switch d.state {
	case Editing, Viewing, ConfirmingDelete:
		return d.active, true
	}
	return models.Product{}, false
}

func (d *Dialog) Draft() models.ProductInput {
	return d.draft
}

func (d *Dialog) OpenAdd(defaults models.ProductInput) error {
	if d.state != Idle {
		return ErrInvalidTransition
	}
	d.state = Adding
	d.active = models.Product{}
	d.draft = defaults
	return nil
}

func (d *Dialog) OpenEdit(p models.Product) error {
	if d.state != Idle {
		return ErrInvalidTransition
	}
	d.state = Editing
	d.active = p
	d.draft = p.Input()
	return nil
}

func (d *Dialog) OpenView(p models.Product) error {
	if d.state != Idle {
		return ErrInvalidTransition
	}
	d.state = Viewing
	d.active = p
	return nil
}

func (d *Dialog) EditFromView() error {
	if d.state != Viewing {
		return ErrInvalidTransition
	}
	d.state = Editing
	d.draft = d.active.Input()
	return nil
}

func (d *Dialog) RequestDelete(p models.Product) error {
	if d.state != Idle {
		return ErrInvalidTransition
	}
	d.state = ConfirmingDelete
	d.active = p
	return nil
}

// UpdateDraft edits the draft in place while adding or editing.
func (d *Dialog) UpdateDraft(fn func(*models.ProductInput)) error {
	if d.state != Adding && d.state != Editing {
		return ErrInvalidTransition
	}
	fn(&d.draft)
	return nil
}

// Close returns to Idle and drops the draft. Closing an idle dialog does nothing.
func (d *Dialog) Close() {
	d.state = Idle
	d.active = models.Product{}
	d.draft = models.ProductInput{}
}
