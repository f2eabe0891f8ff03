package usecase

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"hackathon-server/internal/domain/model"
	"hackathon-server/internal/domain/repository"
)

// ExportService produces spreadsheet and backup downloads for admins.
type ExportService struct {
	teams   repository.TeamRepository
	reviews repository.ReviewRepository
	export  repository.ExportRepository
	logger  *zap.Logger
}

// NewExportService creates an export service.
func NewExportService(
	teams repository.TeamRepository,
	reviews repository.ReviewRepository,
	export repository.ExportRepository,
	logger *zap.Logger,
) *ExportService {
	return &ExportService{teams: teams, reviews: reviews, export: export, logger: logger}
}

// TeamsWorkbook renders every team, member and score into an xlsx workbook.
func (s *ExportService) TeamsWorkbook(ctx context.Context) (*bytes.Buffer, error) {
	teams, err := s.teams.List(ctx, repository.TeamFilter{})
	if err != nil {
		return nil, err
	}
	reviews, err := s.reviews.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	totals := make(map[uint]int)
	for _, r := range reviews {
		totals[r.TeamID] += r.Marks
	}

	f := excelize.NewFile()
	defer f.Close()

	const teamSheet = "Teams"
	f.SetSheetName("Sheet1", teamSheet)
	teamHeader := []interface{}{
		"ID", "Team Name", "House", "Size", "Status",
		"Transaction ID", "Leader", "Leader Email", "Repo URL", "Total Marks",
	}
	if err := f.SetSheetRow(teamSheet, "A1", &teamHeader); err != nil {
		return nil, fmt.Errorf("failed to write team header: %w", err)
	}
	for i, team := range teams {
		leaderName, leaderEmail := "", ""
		if leader := team.Leader(); leader != nil {
			leaderName, leaderEmail = leader.Name, leader.Email
		}
		repoURL := ""
		if team.GitRepoURL != nil {
			repoURL = *team.GitRepoURL
		}
		row := []interface{}{
			team.ID, team.TeamName, string(team.House), team.TeamSize,
			string(team.ApprovalStatus), team.UTRTransactionID,
			leaderName, leaderEmail, repoURL, totals[team.ID],
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(teamSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write team row: %w", err)
		}
	}

	const memberSheet = "Members"
	if _, err := f.NewSheet(memberSheet); err != nil {
		return nil, fmt.Errorf("failed to create member sheet: %w", err)
	}
	memberHeader := []interface{}{"Team ID", "Team Name", "#", "Name", "Email", "Phone", "College", "Year", "Leader"}
	if err := f.SetSheetRow(memberSheet, "A1", &memberHeader); err != nil {
		return nil, fmt.Errorf("failed to write member header: %w", err)
	}
	rowIdx := 2
	for _, team := range teams {
		for _, m := range team.Members {
			row := []interface{}{
				team.ID, team.TeamName, m.MemberNumber,
				m.Name, m.Email, m.Phone, m.College, m.Year, m.IsLeader,
			}
			cell := fmt.Sprintf("A%d", rowIdx)
			if err := f.SetSheetRow(memberSheet, cell, &row); err != nil {
				return nil, fmt.Errorf("failed to write member row: %w", err)
			}
			rowIdx++
		}
	}

	names := make(map[uint]string, len(teams))
	for _, team := range teams {
		names[team.ID] = team.TeamName
	}
	for round := model.ReviewRoundMin; round <= model.ReviewRoundMax; round++ {
		if err := writeRoundSheet(f, round, reviews, names); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}

	s.logger.Info("teams workbook exported", zap.Int("teams", len(teams)))
	return buf, nil
}

// writeRoundSheet renders one round as its own sheet. Columns are the union
// of criterion names awarded that round; a team missing a criterion reads 0.
func writeRoundSheet(f *excelize.File, round int, reviews []model.Review, names map[uint]string) error {
	sheet := fmt.Sprintf("Round %d", round)
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create %s sheet: %w", sheet, err)
	}

	var rows []model.Review
	criteriaSet := make(map[string]struct{})
	for _, r := range reviews {
		if r.Round != round {
			continue
		}
		rows = append(rows, r)
		for _, c := range decodeCriteria(r.Criteria) {
			criteriaSet[c.Name] = struct{}{}
		}
	}
	criteria := make([]string, 0, len(criteriaSet))
	for name := range criteriaSet {
		criteria = append(criteria, name)
	}
	sort.Strings(criteria)

	header := []interface{}{"Team ID", "Team Name"}
	for _, name := range criteria {
		header = append(header, name)
	}
	header = append(header, "Total Marks")
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", sheet, err)
	}

	for i, r := range rows {
		awarded := make(map[string]int)
		for _, c := range decodeCriteria(r.Criteria) {
			awarded[c.Name] = c.Marks
		}
		row := []interface{}{r.TeamID, names[r.TeamID]}
		for _, name := range criteria {
			row = append(row, awarded[name])
		}
		row = append(row, r.Marks)
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row: %w", sheet, err)
		}
	}
	return nil
}

// Snapshot returns the whole database as table-keyed row maps for backup.
// Operator accounts are excluded so password hashes never leave the server.
func (s *ExportService) Snapshot(ctx context.Context) (map[string][]map[string]interface{}, error) {
	snapshot, err := s.export.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info("database snapshot exported", zap.Int("tables", len(snapshot)))
	return snapshot, nil
}
