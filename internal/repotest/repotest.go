// Package repotest provides in-memory repositories for tests. It is not
// wired into the server.
package repotest

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	domainappointment "github.com/healthguide/healthguide-api/internal/domain/appointment"
	domainuser "github.com/healthguide/healthguide-api/internal/domain/user"
	"github.com/healthguide/healthguide-api/internal/models"
)

var ErrInjected = errors.New("injected failure")

type Users struct {
	mu     sync.Mutex
	nextID uint
	byID   map[uint]models.User

	// Fail, when set, is returned by every method.
	Fail error
}

func NewUsers() *Users {
	return &Users{nextID: 1, byID: map[uint]models.User{}}
}

func (r *Users) Create(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail != nil {
		return r.Fail
	}
	for _, existing := range r.byID {
		if existing.Email == u.Email {
			return domainuser.ErrEmailTaken
		}
	}
	u.ID = r.nextID
	r.nextID++
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	r.byID[u.ID] = *u
	return nil
}

func (r *Users) FindByID(_ context.Context, id uint) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail != nil {
		return nil, r.Fail
	}
	u, ok := r.byID[id]
	if !ok {
		return nil, domainuser.ErrNotFound
	}
	return &u, nil
}

func (r *Users) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail != nil {
		return nil, r.Fail
	}
	for _, u := range r.byID {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, domainuser.ErrNotFound
}

func (r *Users) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, domainuser.ErrNotFound):
		return false, nil
	}
	return false, err
}

func (r *Users) UpdateProfile(
	_ context.Context,
	id uint,
	changes domainuser.ProfileChanges,
) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail != nil {
		return nil, r.Fail
	}
	u, ok := r.byID[id]
	if !ok {
		return nil, domainuser.ErrNotFound
	}
	changes.ApplyTo(&u)
	r.byID[id] = u
	return &u, nil
}

func (r *Users) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail != nil {
		return 0, r.Fail
	}
	return int64(len(r.byID)), nil
}

func (r *Users) CountByRole(_ context.Context, role domainuser.Role) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail != nil {
		return 0, r.Fail
	}
	var n int64
	for _, u := range r.byID {
		if u.Role == string(role) {
			n++
		}
	}
	return n, nil
}

// Put stores u as-is, keeping its ID.
func (r *Users) Put(u models.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[u.ID] = u
	if u.ID >= r.nextID {
		r.nextID = u.ID + 1
	}
}

// Delete removes a user, as an operator would outside the API.
func (r *Users) Delete(id uint) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, id)
}

type Appointments struct {
	mu     sync.Mutex
	nextID uint
	rows   []models.Appointment
	users  *Users

	Fail error
}

// NewAppointments resolves patients for ListForDoctor through users.
func NewAppointments(users *Users) *Appointments {
	return &Appointments{nextID: 1, users: users}
}

func (r *Appointments) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail != nil {
		return r.Fail
	}
	ap.ID = r.nextID
	r.nextID++
	if ap.CreatedAt.IsZero() {
		ap.CreatedAt = time.Now()
	}
	r.rows = append(r.rows, *ap)
	return nil
}

func (r *Appointments) ListForDoctor(ctx context.Context, doctorID uint) ([]models.Appointment, error) {
	r.mu.Lock()
	if r.Fail != nil {
		r.mu.Unlock()
		return nil, r.Fail
	}
	var out []models.Appointment
	for _, ap := range r.rows {
		if ap.DoctorID == doctorID {
			out = append(out, ap)
		}
	}
	r.mu.Unlock()

	for i := range out {
		if p, err := r.users.FindByID(ctx, out[i].PatientID); err == nil {
			out[i].Patient = p
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartsAt.Before(out[j].StartsAt)
	})
	return out, nil
}

func (r *Appointments) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail != nil {
		return 0, r.Fail
	}
	return int64(len(r.rows)), nil
}

var (
	_ domainuser.Repository        = (*Users)(nil)
	_ domainappointment.Repository = (*Appointments)(nil)
)
