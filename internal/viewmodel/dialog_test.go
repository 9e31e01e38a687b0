package viewmodel

import (
	"testing"

	"github.com/khatasathi/inventory-admin/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialogTransitions(t *testing.T) {
	p := models.Product{ID: "p1", Name: "Rice", SKU: "R1", Status: models.StatusActive}

	tests := []struct {
		name  string
		setup func(d *Dialog)
		act   func(d *Dialog) error
		want  DialogState
		err   error
	}{
		{"idle to adding", func(*Dialog) {}, func(d *Dialog) error { return d.OpenAdd(models.ProductInput{}) }, Adding, nil},
		{"idle to editing", func(*Dialog) {}, func(d *Dialog) error { return d.OpenEdit(p) }, Editing, nil},
		{"idle to viewing", func(*Dialog) {}, func(d *Dialog) error { return d.OpenView(p) }, Viewing, nil},
		{"idle to confirm", func(*Dialog) {}, func(d *Dialog) error { return d.RequestDelete(p) }, ConfirmingDelete, nil},
		{"viewing to editing", func(d *Dialog) { _ = d.OpenView(p) }, func(d *Dialog) error { return d.EditFromView() }, Editing, nil},
		{"edit from idle", func(*Dialog) {}, func(d *Dialog) error { return d.EditFromView() }, Idle, ErrInvalidTransition},
		{"adding to viewing", func(d *Dialog) { _ = d.OpenAdd(models.ProductInput{}) }, func(d *Dialog) error { return d.OpenView(p) }, Adding, ErrInvalidTransition},
		{"confirm to editing", func(d *Dialog) { _ = d.RequestDelete(p) }, func(d *Dialog) error { return d.EditFromView() }, ConfirmingDelete, ErrInvalidTransition},
		{"draft outside form", func(d *Dialog) { _ = d.OpenView(p) }, func(d *Dialog) error { return d.UpdateDraft(func(*models.ProductInput) {}) }, Viewing, ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Dialog
			tt.setup(&d)
			err := tt.act(&d)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, d.State())
		})
	}
}

func TestDialogDraftDoesNotSurviveClose(t *testing.T) {
	p := models.Product{ID: "p1", Name: "Rice", SKU: "R1"}
	var d Dialog

	require.NoError(t, d.OpenEdit(p))
	require.NoError(t, d.UpdateDraft(func(in *models.ProductInput) { in.Name = "Changed" }))
	assert.Equal(t, "Changed", d.Draft().Name)

	d.Close()
	assert.Equal(t, Idle, d.State())
	_, ok := d.Active()
	assert.False(t, ok)

	require.NoError(t, d.OpenEdit(p))
	assert.Equal(t, "Rice", d.Draft().Name)
}
