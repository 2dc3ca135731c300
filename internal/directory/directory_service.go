package directory

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	directoryerrors "go-sitepass/internal/directory/errors"
	"go-sitepass/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	teamKeyPrefix = "directory:team:"
	siteKeyPrefix = "directory:site:"
	cacheTTL      = 10 * time.Minute
)

func TeamCacheKey(teamID string) string { return teamKeyPrefix + teamID }
func SiteCacheKey(siteID string) string { return siteKeyPrefix + siteID }

//go:generate mockgen -source=directory_service.go -destination=mock/directory_service_mock.go -package=mock
type Service interface {
	ResolvePlacement(ctx context.Context, companyID, siteID, teamID string) (Placement, error)
	GetTeam(ctx context.Context, teamID string) (Placement, error)
	GetSitePolicy(ctx context.Context, siteID string) (SitePolicy, error)
	FindCompanyByCode(ctx context.Context, code string) (CompanyDirectoryResponse, error)
}

type Options struct {
	DefaultTimezone string
	// DefaultDayStartHour replaces an out of range day_start_hour. Zero
	// means DefaultDayStartHour; a site can still set 0 on its own row.
	DefaultDayStartHour int
}

type service struct {
	repo            Repository
	rdb             *redis.Client
	sf              *singleflight.Group
	defaultTimezone string
	defaultDayStart int
	logger          *zap.Logger
}

// siteSnapshot is the cached form of a site; the zone is resolved once on
// fill so latlong is not consulted on every check-in.
type siteSnapshot struct {
	SiteID         string `json:"site_id"`
	CompanyID      string `json:"company_id"`
	DayStartHour   int    `json:"day_start_hour"`
	CheckoutPolicy string `json:"checkout_policy"`
	Timezone       string `json:"timezone"`
	SeniorAge      int    `json:"senior_age_threshold"`
}

func NewService(repo Repository, rdb *redis.Client, opts Options, logger ...*zap.Logger) Service {
	l := zap.L().Named("directory.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("directory.service")
	}
	if opts.DefaultTimezone == "" {
		opts.DefaultTimezone = "Asia/Seoul"
	}
	if opts.DefaultDayStartHour <= 0 || opts.DefaultDayStartHour > 23 {
		opts.DefaultDayStartHour = DefaultDayStartHour
	}
	return &service{
		repo:            repo,
		rdb:             rdb,
		sf:              &singleflight.Group{},
		defaultTimezone: opts.DefaultTimezone,
		defaultDayStart: opts.DefaultDayStartHour,
		logger:          l,
	}
}

func (s *service) ResolvePlacement(ctx context.Context, companyID, siteID, teamID string) (Placement, error) {
	p, err := s.GetTeam(ctx, teamID)
	if err != nil {
		if errors.Is(err, directoryerrors.ErrTeamNotFound) || errors.Is(err, directoryerrors.ErrInvalidID) {
			return Placement{}, directoryerrors.ErrPlacementNotFound
		}
		return Placement{}, err
	}
	if p.CompanyID != companyID || p.SiteID != siteID {
		contextutil.GetLogger(ctx, s.logger).Debug("placement mismatch",
			zap.String("company_id", companyID),
			zap.String("site_id", siteID),
			zap.String("team_id", teamID),
		)
		return Placement{}, directoryerrors.ErrPlacementNotFound
	}
	return p, nil
}

func (s *service) GetTeam(ctx context.Context, teamID string) (Placement, error) {
	if _, err := uuid.Parse(teamID); err != nil {
		return Placement{}, directoryerrors.ErrInvalidID
	}
	key := TeamCacheKey(teamID)

	var cached Placement
	if s.readCache(ctx, key, &cached) {
		return cached, nil
	}

	// waiters share one lookup, so it must outlive the caller that started it
	shared := context.WithoutCancel(ctx)
	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		team, err := s.repo.FindTeam(shared, teamID)
		if err != nil {
			return nil, s.mapLookupError(shared, err, directoryerrors.ErrTeamNotFound)
		}
		if team.Site == nil || team.Company == nil || !team.Site.IsActive || !team.Company.IsActive {
			return nil, directoryerrors.ErrTeamNotFound
		}
		p := Placement{
			CompanyID:   team.CompanyID.String(),
			CompanyName: team.Company.Name,
			SiteID:      team.SiteID.String(),
			SiteName:    team.Site.Name,
			TeamID:      team.ID.String(),
			TeamName:    team.Name,
		}
		s.writeCache(shared, key, p)
		return p, nil
	})
	if err != nil {
		return Placement{}, err
	}
	return v.(Placement), nil
}

func (s *service) GetSitePolicy(ctx context.Context, siteID string) (SitePolicy, error) {
	if _, err := uuid.Parse(siteID); err != nil {
		return SitePolicy{}, directoryerrors.ErrInvalidID
	}
	key := SiteCacheKey(siteID)

	var snap siteSnapshot
	if s.readCache(ctx, key, &snap) {
		return snap.policy(), nil
	}

	shared := context.WithoutCancel(ctx)
	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		site, err := s.repo.FindSite(shared, siteID)
		if err != nil {
			return nil, s.mapLookupError(shared, err, directoryerrors.ErrSiteNotFound)
		}
		snap := siteSnapshot{
			SiteID:         site.ID.String(),
			CompanyID:      site.CompanyID.String(),
			DayStartHour:   normalizeDayStartHour(site.DayStartHour, s.defaultDayStart),
			CheckoutPolicy: ParseCheckoutPolicy(site.CheckoutPolicy).String(),
			Timezone:       resolveTimezone(site.Timezone, site.Latitude, site.Longitude, s.defaultTimezone),
			SeniorAge:      normalizeSeniorAge(site.SeniorAge),
		}
		s.writeCache(shared, key, snap)
		return snap, nil
	})
	if err != nil {
		return SitePolicy{}, err
	}
	return v.(siteSnapshot).policy(), nil
}

func (s *service) FindCompanyByCode(ctx context.Context, code string) (CompanyDirectoryResponse, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return CompanyDirectoryResponse{}, directoryerrors.ErrCompanyNotFound
	}
	c, err := s.repo.FindCompanyByCode(ctx, code)
	if err != nil {
		return CompanyDirectoryResponse{}, s.mapLookupError(ctx, err, directoryerrors.ErrCompanyNotFound)
	}

	resp := CompanyDirectoryResponse{
		ID:    c.ID.String(),
		Name:  c.Name,
		Code:  c.Code,
		Sites: make([]SiteResponse, 0, len(c.Sites)),
	}
	for _, site := range c.Sites {
		sr := SiteResponse{
			ID:             site.ID.String(),
			Name:           site.Name,
			CheckoutPolicy: ParseCheckoutPolicy(site.CheckoutPolicy).String(),
			DayStartHour:   normalizeDayStartHour(site.DayStartHour, s.defaultDayStart),
			Teams:          make([]TeamResponse, 0, len(site.Teams)),
		}
		for _, t := range site.Teams {
			sr.Teams = append(sr.Teams, TeamResponse{ID: t.ID.String(), Name: t.Name})
		}
		resp.Sites = append(resp.Sites, sr)
	}
	return resp, nil
}

func (s *service) mapLookupError(ctx context.Context, err error, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	contextutil.GetLogger(ctx, s.logger).Error("directory lookup failed", zap.Error(err))
	return directoryerrors.ErrDirectoryUnavailable.WithCause(err)
}

func (s *service) readCache(ctx context.Context, key string, dst any) bool {
	if s.rdb == nil {
		return false
	}
	raw, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("directory cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	return json.Unmarshal([]byte(raw), dst) == nil
}

func (s *service) writeCache(ctx context.Context, key string, v any) {
	if s.rdb == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, key, data, cacheTTL).Err(); err != nil {
		s.logger.Warn("directory cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (snap siteSnapshot) policy() SitePolicy {
	return SitePolicy{
		SiteID:       snap.SiteID,
		CompanyID:    snap.CompanyID,
		DayStartHour: snap.DayStartHour,
		Checkout:     ParseCheckoutPolicy(snap.CheckoutPolicy),
		Location:     loadLocation(snap.Timezone),
		SeniorAge:    normalizeSeniorAge(snap.SeniorAge),
	}
}
