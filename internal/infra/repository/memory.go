package repository

import (
	"context"
	"errors"
	"maps"
	"sort"
	"sync"

	"airease-backend/internal/domain/report"
	"airease-backend/internal/domain/user"
	"airease-backend/internal/infra"
	"airease-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

var errNoRow = errors.New("no row")

// MemoryUserRepository backs users when no database is configured. Data is lost on restart.
type MemoryUserRepository struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]*user.User
	byEmail map[string]uuid.UUID
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		byID:    make(map[uuid.UUID]*user.User),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (r *MemoryUserRepository) Create(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[u.Email().Value()]; ok {
		return infra.WrapRepoErr("email already registered", errNoRow, infra.KindDuplicateKey)
	}
	r.byID[u.ID()] = u
	r.byEmail[u.Email().Value()] = u.ID()
	return nil
}

func (r *MemoryUserRepository) ExistsByEmail(_ context.Context, email user.Email) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byEmail[email.Value()]
	return ok, nil
}

func (r *MemoryUserRepository) FindByEmail(_ context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, "", infra.WrapRepoErr("user not found", errNoRow, infra.KindNotFound)
	}
	u := r.byID[id]
	return userView(u), u.PasswordHash(), nil
}

func (r *MemoryUserRepository) FindByID(_ context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", errNoRow, infra.KindNotFound)
	}
	return userView(u), nil
}

func userView(u *user.User) *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:        u.ID(),
		Email:     u.Email().Value(),
		Username:  u.Username().Value(),
		Label:     u.Label().String(),
		IsActive:  u.IsActive(),
		CreatedAt: u.CreatedAt(),
	}
}

type MemoryReportRepository struct {
	mu      sync.RWMutex
	reports []queries.ReportView
}

func NewMemoryReportRepository() *MemoryReportRepository {
	return &MemoryReportRepository{}
}

func (r *MemoryReportRepository) Create(_ context.Context, rep *report.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = append(r.reports, reportView(rep))
	return nil
}

func (r *MemoryReportRepository) FindByID(_ context.Context, id uuid.UUID) (*queries.ReportView, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, v := range r.reports {
		if v.ID == id {
			v.FlightInfo = maps.Clone(v.FlightInfo)
			return &v, nil
		}
	}
	return nil, infra.WrapRepoErr("report not found", errNoRow, infra.KindNotFound)
}

// List orders newest first, matching the SQL implementation.
func (r *MemoryReportRepository) List(_ context.Context, f queries.ReportFilter) ([]queries.ReportView, error) {
	r.mu.RLock()
	matched := make([]queries.ReportView, 0, len(r.reports))
	for _, v := range r.reports {
		if !matches(f.UserEmail, v.UserEmail) || !matches(f.Category, v.Category) || !matches(f.Status, v.Status) {
			continue
		}
		v.FlightInfo = maps.Clone(v.FlightInfo)
		matched = append(matched, v)
	}
	r.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	if f.Offset >= len(matched) {
		return []queries.ReportView{}, nil
	}
	matched = matched[f.Offset:]
	if f.Limit > 0 && f.Limit < len(matched) {
		matched = matched[:f.Limit]
	}
	return matched, nil
}

func matches(want *string, got string) bool {
	return want == nil || *want == got
}

func reportView(rep *report.Report) queries.ReportView {
	return queries.ReportView{
		ID:            rep.ID(),
		UserEmail:     rep.UserEmail().Value(),
		Category:      string(rep.Category()),
		CategoryLabel: rep.Category().Label(),
		Content:       rep.Content().String(),
		FlightID:      rep.FlightID(),
		FlightInfo:    maps.Clone(rep.FlightInfo()),
		Status:        string(rep.Status()),
		StatusLabel:   rep.Status().Label(),
		CreatedAt:     rep.CreatedAt(),
		UpdatedAt:     rep.UpdatedAt(),
	}
}
