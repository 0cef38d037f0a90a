package user

import (
	"time"

	"github.com/healthguide/healthguide-api/internal/models"
)

// Change is one field of a partial profile update. Fields with Set false are
// left untouched; a Set field with a nil Value is cleared.
type Change[T any] struct {
	Set   bool
	Value *T
}

func Clear[T any]() Change[T] {
	return Change[T]{Set: true}
}

func SetTo[T any](v T) Change[T] {
	return Change[T]{Set: true, Value: &v}
}

type ProfileChanges struct {
	DateOfBirth            Change[time.Time]
	Gender                 Change[string]
	BloodType              Change[string]
	Phone                  Change[string]
	Address                Change[string]
	PreferredCommunication Change[string]
	PrimaryCarePreference  Change[string]
}

// Columns maps the supplied fields to their database columns.
func (p ProfileChanges) Columns() map[string]any {
	cols := map[string]any{}
	addColumn(cols, "date_of_birth", p.DateOfBirth)
	addColumn(cols, "gender", p.Gender)
	addColumn(cols, "blood_type", p.BloodType)
	addColumn(cols, "phone", p.Phone)
	addColumn(cols, "address", p.Address)
	addColumn(cols, "preferred_communication", p.PreferredCommunication)
	addColumn(cols, "primary_care_preference", p.PrimaryCarePreference)
	return cols
}

func (p ProfileChanges) Empty() bool {
	return len(p.Columns()) == 0
}

// ApplyTo writes the supplied fields onto u.
func (p ProfileChanges) ApplyTo(u *models.User) {
	apply(&u.DateOfBirth, p.DateOfBirth)
	apply(&u.Gender, p.Gender)
	apply(&u.BloodType, p.BloodType)
	apply(&u.Phone, p.Phone)
	apply(&u.Address, p.Address)
	apply(&u.PreferredCommunication, p.PreferredCommunication)
	apply(&u.PrimaryCarePreference, p.PrimaryCarePreference)
}

func addColumn[T any](cols map[string]any, name string, c Change[T]) {
	if !c.Set {
		return
	}
	if c.Value == nil {
		cols[name] = nil
		return
	}
	cols[name] = *c.Value
}

func apply[T any](dst **T, c Change[T]) {
	if !c.Set {
		return
	}
	if c.Value == nil {
		*dst = nil
		return
	}
	v := *c.Value
	*dst = &v
}
