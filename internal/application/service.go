package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator"
	"github.com/wvwvw5/neuro-store/internal/domain"
	"github.com/wvwvw5/neuro-store/internal/ports"
)

// Service owns the session lifecycle and the single-fetch controllers:
// authentication, dashboard, admin and balance. The session expiry
// policy lives here once instead of being duplicated per page.
type Service struct {
	gateway  ports.StoreGateway
	sessions ports.SessionStore
	clock    ports.Clock
	validate *validator.Validate
}

func NewService(gateway ports.StoreGateway, sessions ports.SessionStore, clock ports.Clock) *Service {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Service{
		gateway:  gateway,
		sessions: sessions,
		clock:    clock,
		validate: validator.New(),
	}
}

// RequireSession is the shared guard: protected flows call it before
// issuing any protected fetch. Absence of a stored session surfaces
// domain.ErrNoSession without touching the network.
func (s *Service) RequireSession(ctx context.Context) (domain.Session, error) {
	return s.sessions.Load(ctx)
}

// Login authenticates, persists the token pair, then runs the role
// check to pick a destination. Both token fields are stored before the
// role check so a role-lookup failure never loses the session; that
// failure falls open to the dashboard.
func (s *Service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	session, err := s.gateway.Login(ctx, email, password)
	if err != nil {
		return LoginResult{}, fmt.Errorf("log in: %w", err)
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return LoginResult{}, fmt.Errorf("store session: %w", err)
	}

	result := LoginResult{Session: session, Destination: DestinationDashboard}

	roles, err := s.gateway.Roles(ctx, session)
	if err != nil {
		result.RoleCheckFailed = true
		return result, nil
	}

	if roles.IsAdmin {
		result.Destination = DestinationAdmin
	}

	return result, nil
}

// Register checks the password confirmation locally before any network
// call and never auto-authenticates on success.
func (s *Service) Register(ctx context.Context, registration domain.Registration) (domain.User, error) {
	if registration.Password != registration.Confirm {
		return domain.User{}, domain.ErrPasswordMismatch
	}

	if err := s.validate.Struct(registration); err != nil {
		return domain.User{}, fmt.Errorf("validate registration: %w", err)
	}

	user, err := s.gateway.Register(ctx, registration)
	if err != nil {
		return domain.User{}, fmt.Errorf("register: %w", err)
	}

	return user, nil
}

func (s *Service) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	return nil
}

// Dashboard fetches the profile then the subscription list. Any
// failure in the sequence clears the session: the dashboard treats
// every error as an authentication failure.
func (s *Service) Dashboard(ctx context.Context) (DashboardView, error) {
	session, err := s.RequireSession(ctx)
	if err != nil {
		return DashboardView{}, err
	}

	user, err := s.gateway.Me(ctx, session)
	if err != nil {
		_ = s.sessions.Clear(ctx)
		return DashboardView{}, fmt.Errorf("load profile: %w", err)
	}

	subscriptions, err := s.gateway.Subscriptions(ctx, session)
	if err != nil {
		_ = s.sessions.Clear(ctx)
		return DashboardView{}, fmt.Errorf("load subscriptions: %w", err)
	}

	return DashboardView{
		User:          user,
		Subscriptions: subscriptions,
		FetchedAt:     s.clock.Now(),
	}, nil
}

// Admin runs the three-step sequence: access probe, statistics, user
// list. A denied probe is a distinct outcome and keeps the session;
// any other failure clears it.
func (s *Service) Admin(ctx context.Context) (AdminView, error) {
	session, err := s.RequireSession(ctx)
	if err != nil {
		return AdminView{}, err
	}

	if err := s.gateway.AdminProbe(ctx, session); err != nil {
		if errors.Is(err, domain.ErrAccessDenied) {
			return AdminView{}, err
		}
		_ = s.sessions.Clear(ctx)
		return AdminView{}, fmt.Errorf("verify admin access: %w", err)
	}

	statistics, err := s.gateway.AdminStatistics(ctx, session)
	if err != nil {
		_ = s.sessions.Clear(ctx)
		return AdminView{}, fmt.Errorf("load statistics: %w", err)
	}

	users, err := s.gateway.AdminUsers(ctx, session)
	if err != nil {
		_ = s.sessions.Clear(ctx)
		return AdminView{}, fmt.Errorf("load users: %w", err)
	}

	return AdminView{
		Statistics: statistics,
		Users:      users,
		FetchedAt:  s.clock.Now(),
	}, nil
}

func (s *Service) Balance(ctx context.Context) (float64, error) {
	session, err := s.RequireSession(ctx)
	if err != nil {
		return 0, err
	}

	balance, err := s.gateway.Balance(ctx, session)
	if err != nil {
		clearExpiredSession(ctx, s.sessions, err)
		return 0, fmt.Errorf("load balance: %w", err)
	}

	return balance, nil
}

func (s *Service) Health(ctx context.Context) (string, error) {
	raw, err := s.gateway.Health(ctx)
	if err != nil {
		return "", fmt.Errorf("health check: %w", err)
	}

	return raw, nil
}

// clearExpiredSession drops the stored session when a protected call
// came back 401. Other failures leave the session in place for retry.
func clearExpiredSession(ctx context.Context, sessions ports.SessionStore, err error) {
	if errors.Is(err, domain.ErrSessionExpired) {
		_ = sessions.Clear(ctx)
	}
}
