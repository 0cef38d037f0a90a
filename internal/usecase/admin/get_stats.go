package admin

import (
	"context"

	"golang.org/x/sync/errgroup"

	domainappointment "github.com/healthguide/healthguide-api/internal/domain/appointment"
	domainuser "github.com/healthguide/healthguide-api/internal/domain/user"
	"github.com/healthguide/healthguide-api/internal/dto"
)

type GetStats struct {
	users        domainuser.Repository
	appointments domainappointment.Repository
}

func NewGetStats(
	users domainuser.Repository,
	appointments domainappointment.Repository,
) *GetStats {
	return &GetStats{
		users:        users,
		appointments: appointments,
	}
}

// Execute runs the three counts concurrently. Nothing is cached.
func (uc *GetStats) Execute(ctx context.Context) (dto.AdminStatsDTO, error) {
	var stats dto.AdminStatsDTO

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := uc.users.Count(gctx)
		stats.TotalUsers = n
		return err
	})
	g.Go(func() error {
		n, err := uc.users.CountByRole(gctx, domainuser.RoleDoctor)
		stats.TotalDoctors = n
		return err
	})
	g.Go(func() error {
		n, err := uc.appointments.Count(gctx)
		stats.TotalAppointments = n
		return err
	})

	if err := g.Wait(); err != nil {
		return dto.AdminStatsDTO{}, err
	}

	return stats, nil
}
