package syncer

import (
	"context"
	"errors"
	"fmt"

	"github.com/pfrederiksen/nfl-cap-tracker/internal/capdata"
	"github.com/pfrederiksen/nfl-cap-tracker/internal/mirror"
	"github.com/rs/zerolog"
)

// Scraper is the scrape-and-verify pipeline the syncer drives.
type Scraper interface {
	FetchTeams(ctx context.Context) ([]string, error)
	FetchTeamCap(ctx context.Context, team string) (*capdata.TeamCapDataset, error)
}

// Store is the persistence sink for verified datasets.
type Store interface {
	ReplaceTeam(ctx context.Context, team string, records []capdata.PlayerCapRecord) error
	AllRecords(ctx context.Context) ([]capdata.PlayerCapRecord, error)
}

// TeamResult records the outcome for one team.
type TeamResult struct {
	Team    string `json:"team"`
	Records int    `json:"records,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

// Report summarizes a run.
type Report struct {
	Synced    []TeamResult `json:"synced"`
	Skipped   []TeamResult `json:"skipped"`
	Mirrored  int          `json:"mirrored_rows"`
	MirrorErr string       `json:"mirror_error,omitempty"`
}

// Syncer runs the scrape → store → mirror pipeline across all teams.
type Syncer struct {
	scraper Scraper
	store   Store
	mirror  mirror.Mirror
	log     zerolog.Logger
}

// New creates a Syncer.
func New(sc Scraper, st Store, m mirror.Mirror, log zerolog.Logger) *Syncer {
	return &Syncer{
		scraper: sc,
		store:   st,
		mirror:  m,
		log:     log,
	}
}

// Run executes one full sync. It returns an error only for run-fatal
// conditions: a failed or malformed team directory, or context
// cancellation. Per-team failures are recorded in the report and the run
// moves on to the next team.
func (s *Syncer) Run(ctx context.Context) (*Report, error) {
	teams, err := s.scraper.FetchTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("extracting team directory: %w", err)
	}
	s.log.Info().Int("teams", len(teams)).Msg("team directory extracted")

	report := &Report{}
	for _, team := range teams {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		dataset, err := s.scraper.FetchTeamCap(ctx, team)
		if err != nil {
			s.logTeamFailure(team, err)
			report.Skipped = append(report.Skipped, TeamResult{Team: team, Reason: err.Error()})
			continue
		}

		if err := s.store.ReplaceTeam(ctx, team, dataset.Records); err != nil {
			s.log.Error().Err(err).Str("team", team).Msg("storing team dataset failed")
			report.Skipped = append(report.Skipped, TeamResult{Team: team, Reason: err.Error()})
			continue
		}

		report.Synced = append(report.Synced, TeamResult{Team: team, Records: len(dataset.Records)})
	}

	s.mirrorAll(ctx, report)
	return report, nil
}

// mirrorAll replicates the full store into the spreadsheet. Mirror
// failures are reported but do not fail the run; the store already holds
// the verified data.
func (s *Syncer) mirrorAll(ctx context.Context, report *Report) {
	records, err := s.store.AllRecords(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("reading store for mirror failed")
		report.MirrorErr = err.Error()
		return
	}
	if err := s.mirror.Replace(ctx, records); err != nil {
		s.log.Error().Err(err).Msg("mirroring to spreadsheet failed")
		report.MirrorErr = err.Error()
		return
	}
	report.Mirrored = len(records)
}

func (s *Syncer) logTeamFailure(team string, err error) {
	var verr *capdata.VerificationError
	var ferr *capdata.FetchError
	switch {
	case errors.As(err, &verr):
		s.log.Error().
			Str("team", team).
			Int64("expected", verr.Expected).
			Int64("actual", verr.Actual).
			Str("context", verr.Context).
			Msg("published total does not match extracted records, skipping team")
	case errors.As(err, &ferr):
		s.log.Error().Err(ferr.Err).Str("team", team).Str("url", ferr.URL).
			Msg("team page fetch failed, skipping team")
	default:
		s.log.Error().Err(err).Str("team", team).Msg("team sync failed, skipping team")
	}
}
