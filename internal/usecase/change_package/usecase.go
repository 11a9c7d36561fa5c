package change_package

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BikeRental/internal/domain"
	"github.com/m04kA/SMC-BikeRental/internal/service/sessions"
	"github.com/m04kA/SMC-BikeRental/internal/usecase/search_bikes"
)

// UseCase use case смены пакета аренды.
// Пакет, интервал и длительность меняются одной операцией над сессией,
// и только после этого поиск отправляется с уже пересчитанным интервалом.
type UseCase struct {
	sessions SessionRunner
	searcher BikeSearcher
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(sessions SessionRunner, searcher BikeSearcher, logger Logger) *UseCase {
	return &UseCase{
		sessions: sessions,
		searcher: searcher,
		logger:   logger,
	}
}

// Execute выполняет use case смены пакета
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Разбор пакета
	pkg, err := domain.ParsePackage(req.Package)
	if err != nil {
		uc.logger.Warn("ChangePackage: session=%s, invalid package %q", req.SessionID, req.Package)
		return nil, fmt.Errorf("%w: %v", ErrInvalidPackage, err)
	}

	// 2. Фильтр и интервал меняются вместе, снимки берутся после пересчета
	var (
		window     domain.RentalWindow
		searchReq  search_bikes.Request
		cityChosen bool
	)
	err = uc.sessions.Do(ctx, req.SessionID, func(s *sessions.Session) error {
		if err := s.Filters.SetPackage(pkg); err != nil {
			return err
		}
		w, err := s.Engine.ApplyPackage(pkg)
		if err != nil {
			return err
		}
		window = w
		searchReq = search_bikes.Request{
			Search:  s.Search.Snapshot(),
			Filters: s.Filters.Snapshot(),
		}
		cityChosen = searchReq.Search.HasCity()
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrUnknownPackage) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPackage, err)
		}
		if errors.Is(err, sessions.ErrInvalidSessionID) {
			return nil, err
		}
		uc.logger.Error("ChangePackage: session=%s, failed to apply package %s: %v", req.SessionID, pkg, err)
		return nil, fmt.Errorf("%w: failed to apply package: %v", ErrInternal, err)
	}

	uc.logger.Info("ChangePackage: session=%s, package=%s, dropoff=%s, duration=%dd%dh",
		req.SessionID, pkg, window.DropoffAt.Format(domain.ISOFormat), window.Duration.Days, window.Duration.Hours)

	resp := &Response{Package: pkg, Window: window}
	if !cityChosen {
		return resp, nil
	}

	// 3. Поиск по новому интервалу. Пакет и интервал уже сохранены,
	// поэтому ошибка поиска возвращается в ответе вместе с ними
	found, err := uc.searcher.Execute(ctx, &searchReq)
	if err != nil {
		uc.logger.Warn("ChangePackage: session=%s, search after package change failed: %v", req.SessionID, err)
		resp.SearchErr = err
		return resp, nil
	}
	resp.Search = found
	return resp, nil
}
