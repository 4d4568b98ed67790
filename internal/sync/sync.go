// ABOUTME: ETL from the SportRadar feeds into the local event store.
// ABOUTME: Fetches, flattens nested JSON, and upserts in FK dependency order.
package sync

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/tennis/internal/models"
	"github.com/harperreed/tennis/internal/sportradar"
	"github.com/harperreed/tennis/internal/storage"
	"github.com/sirupsen/logrus"
)

// Syncer drives one ETL run: three feeds into six tables.
type Syncer struct {
	client *sportradar.Client
	repo   storage.Repository
	log    *logrus.Logger
}

// Report summarizes an ETL run. A failed feed is recorded in Errors and the
// remaining feeds still run.
type Report struct {
	RunID     uuid.UUID     `json:"run_id"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`

	Categories   int `json:"categories"`
	Competitions int `json:"competitions"`
	Complexes    int `json:"complexes"`
	Venues       int `json:"venues"`
	Competitors  int `json:"competitors"`
	Rankings     int `json:"rankings"`

	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors,omitempty"`
}

// New creates a Syncer.
func New(client *sportradar.Client, repo storage.Repository, log *logrus.Logger) *Syncer {
	return &Syncer{client: client, repo: repo, log: log}
}

// Run executes a full sync of all three feeds. Feed-level failures are
// collected in the report rather than aborting the run, matching the
// per-section tolerance of the upstream loader.
func (s *Syncer) Run(ctx context.Context) (*Report, error) {
	report := &Report{RunID: uuid.New(), StartedAt: time.Now()}
	log := s.log.WithField("run_id", report.RunID)

	if err := s.syncCompetitions(ctx, report); err != nil {
		log.WithError(err).Error("competitions feed failed")
		report.Errors = append(report.Errors, "competitions: "+err.Error())
	}
	if err := s.syncComplexes(ctx, report); err != nil {
		log.WithError(err).Error("complexes feed failed")
		report.Errors = append(report.Errors, "complexes: "+err.Error())
	}
	if err := s.syncRankings(ctx, report); err != nil {
		log.WithError(err).Error("rankings feed failed")
		report.Errors = append(report.Errors, "rankings: "+err.Error())
	}

	report.Duration = time.Since(report.StartedAt)
	log.WithFields(logrus.Fields{
		"categories":   report.Categories,
		"competitions": report.Competitions,
		"complexes":    report.Complexes,
		"venues":       report.Venues,
		"competitors":  report.Competitors,
		"rankings":     report.Rankings,
		"skipped":      report.Skipped,
		"duration":     report.Duration,
	}).Info("sync completed")

	return report, nil
}

// syncCompetitions loads categories first, then competitions in two passes:
// every row without its parent link, then the parent links once all rows
// exist. That keeps the FK satisfied regardless of feed order, and routes
// every parent link through the cycle check.
func (s *Syncer) syncCompetitions(ctx context.Context, report *Report) error {
	resp, err := s.client.Competitions(ctx)
	if err != nil {
		return err
	}

	seenCategories := make(map[string]bool)
	for _, comp := range resp.Competitions {
		cat := comp.Category
		if cat == nil || cat.ID == "" || seenCategories[cat.ID] {
			continue
		}
		if err := s.repo.UpsertCategory(&models.Category{ID: cat.ID, Name: cat.Name}); err != nil {
			s.log.WithError(err).WithField("category", cat.ID).Warn("skipping category")
			report.Skipped++
			continue
		}
		seenCategories[cat.ID] = true
		report.Categories++
	}

	var withParent []*models.Competition
	for _, comp := range resp.Competitions {
		m := competitionModel(comp)
		if m.ID == "" {
			report.Skipped++
			continue
		}
		if m.ParentID != nil {
			withParent = append(withParent, m)
		}

		first := *m
		first.ParentID = nil
		if err := s.repo.UpsertCompetition(&first); err != nil {
			s.log.WithError(err).WithField("competition", m.ID).Warn("skipping competition")
			report.Skipped++
			continue
		}
		report.Competitions++
	}

	for _, m := range withParent {
		if err := s.repo.UpsertCompetition(m); err != nil {
			s.log.WithError(err).WithField("competition", m.ID).Warn("dropping parent link")
			report.Skipped++
		}
	}

	return nil
}

// syncComplexes loads complexes and their nested venues.
func (s *Syncer) syncComplexes(ctx context.Context, report *Report) error {
	resp, err := s.client.Complexes(ctx)
	if err != nil {
		return err
	}

	for _, cx := range resp.Complexes {
		if cx.ID == "" {
			report.Skipped++
			continue
		}
		if err := s.repo.UpsertComplex(&models.Complex{ID: cx.ID, Name: cx.Name}); err != nil {
			s.log.WithError(err).WithField("complex", cx.ID).Warn("skipping complex")
			report.Skipped++
			continue
		}
		report.Complexes++

		for _, v := range cx.Venues {
			m := venueModel(v, cx.ID)
			if m.ID == "" {
				report.Skipped++
				continue
			}
			if err := s.repo.UpsertVenue(m); err != nil {
				s.log.WithError(err).WithField("venue", m.ID).Warn("skipping venue")
				report.Skipped++
				continue
			}
			report.Venues++
		}
	}

	return nil
}

// syncRankings loads competitors then their ranking snapshots. Duplicate
// (competitor, date) pairs within one run are dropped; the schema itself
// doesn't enforce that uniqueness.
func (s *Syncer) syncRankings(ctx context.Context, report *Report) error {
	resp, err := s.client.DoublesRankings(ctx)
	if err != nil {
		return err
	}

	seenCompetitors := make(map[string]bool)
	seenSnapshots := make(map[string]bool)

	for _, r := range resp.Rankings {
		if r.Competitor != nil && r.Competitor.ID != "" && !seenCompetitors[r.Competitor.ID] {
			c := r.Competitor
			m := &models.Competitor{
				ID:           c.ID,
				Name:         c.Name,
				Country:      c.Country,
				CountryCode:  c.CountryCode,
				Abbreviation: c.Abbreviation,
			}
			if err := s.repo.UpsertCompetitor(m); err != nil {
				s.log.WithError(err).WithField("competitor", c.ID).Warn("skipping competitor")
				report.Skipped++
			} else {
				seenCompetitors[c.ID] = true
				report.Competitors++
			}
		}

		m := rankingModel(r)
		if m.CompetitorID != nil && m.RankingDate != nil {
			key := *m.CompetitorID + "@" + m.RankingDate.Format("2006-01-02")
			if seenSnapshots[key] {
				report.Skipped++
				continue
			}
			seenSnapshots[key] = true
		}
		if err := s.repo.InsertRanking(m); err != nil {
			s.log.WithError(err).Warn("skipping ranking")
			report.Skipped++
			continue
		}
		report.Rankings++
	}

	return nil
}

// competitionModel flattens a feed competition to a storage row.
func competitionModel(c sportradar.Competition) *models.Competition {
	m := &models.Competition{
		ID:     c.ID,
		Name:   c.Name,
		Type:   c.Type,
		Gender: c.Gender,
	}
	if c.ParentID != "" {
		parent := c.ParentID
		m.ParentID = &parent
	}
	if c.Category != nil && c.Category.ID != "" {
		catID := c.Category.ID
		m.CategoryID = &catID
	}
	return m
}

// venueModel flattens a feed venue to a storage row.
func venueModel(v sportradar.Venue, complexID string) *models.Venue {
	m := &models.Venue{
		ID:          v.ID,
		Name:        v.Name,
		City:        v.CityName,
		Country:     v.CountryName,
		CountryCode: v.CountryCode,
		Timezone:    v.Timezone,
	}
	if complexID != "" {
		cx := complexID
		m.ComplexID = &cx
	}
	return m
}

// rankingModel flattens a feed ranking row to a storage row. Unparseable
// dates are stored as NULL rather than dropping the snapshot.
func rankingModel(r sportradar.Ranking) *models.Ranking {
	m := &models.Ranking{
		Rank:               r.Rank,
		Movement:           r.Movement,
		Points:             r.Points,
		CompetitionsPlayed: r.CompetitionsPlayed,
	}
	if r.Competitor != nil && r.Competitor.ID != "" {
		id := r.Competitor.ID
		m.CompetitorID = &id
	}
	if r.RankingDate != "" {
		if t, err := time.Parse("2006-01-02", r.RankingDate); err == nil {
			m.RankingDate = &t
		}
	}
	return m
}
