package usecase

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	domainerrors "hackathon-server/internal/domain/errors"
	"hackathon-server/internal/domain/model"
	"hackathon-server/internal/domain/repository"
)

// ticketTemplate renders a self-contained entry ticket. The house emblem is
// inlined as a data URI so the document needs no external assets.
var ticketTemplate = template.Must(template.New("ticket").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Entry Ticket - {{.TeamName}}</title>
<style>
  body { font-family: Georgia, serif; background: #1a1a2e; color: #eee; margin: 0; padding: 40px; }
  .ticket { max-width: 640px; margin: 0 auto; border: 2px solid #c9a227; border-radius: 12px; padding: 32px; background: #16213e; }
  .crest { float: right; width: 96px; }
  h1 { color: #c9a227; margin-top: 0; }
  table { width: 100%; border-collapse: collapse; margin-top: 16px; }
  td, th { padding: 8px 4px; border-bottom: 1px solid #2e3a5e; text-align: left; }
  .footer { margin-top: 24px; font-size: 0.85em; color: #9aa; }
</style>
</head>
<body>
<div class="ticket">
  {{if .CrestDataURI}}<img class="crest" src="{{.CrestDataURI}}" alt="{{.House}} crest">{{end}}
  <h1>{{.TeamName}}</h1>
  <p>House: <strong>{{.House}}</strong> · Team #{{.TeamID}} · {{.TeamSize}} member(s)</p>
  <table>
    <tr><th>#</th><th>Name</th><th>Email</th><th>College</th></tr>
    {{range .Members}}<tr><td>{{.MemberNumber}}</td><td>{{.Name}}{{if .IsLeader}} (Lead){{end}}</td><td>{{.Email}}</td><td>{{.College}}</td></tr>
    {{end}}
  </table>
  <p class="footer">Present this ticket at the venue entrance. Valid only for the listed members.</p>
</div>
</body>
</html>
`))

type ticketData struct {
	TeamID       uint
	TeamName     string
	House        model.House
	TeamSize     int
	Members      []model.Member
	CrestDataURI template.URL
}

// TicketService renders downloadable entry tickets for approved teams.
type TicketService struct {
	teams     repository.TeamRepository
	assetsDir string
	logger    *zap.Logger
}

// NewTicketService creates a ticket service. assetsDir holds one emblem
// image per house, named after the lowercased house (e.g. gryffindor.png).
func NewTicketService(teams repository.TeamRepository, assetsDir string, logger *zap.Logger) *TicketService {
	return &TicketService{teams: teams, assetsDir: assetsDir, logger: logger}
}

// Render produces the ticket document for an approved team.
func (s *TicketService) Render(ctx context.Context, teamID uint) ([]byte, error) {
	team, err := s.teams.FindByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, domainerrors.ErrTeamNotFound
	}
	if !team.IsApproved() {
		return nil, domainerrors.ErrTeamNotApproved
	}

	data := ticketData{
		TeamID:       team.ID,
		TeamName:     team.TeamName,
		House:        team.House,
		TeamSize:     team.TeamSize,
		Members:      team.Members,
		CrestDataURI: s.crestDataURI(team.House),
	}

	var buf bytes.Buffer
	if err := ticketTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render ticket: %w", err)
	}

	s.logger.Debug("ticket rendered", zap.Uint("team_id", teamID))
	return buf.Bytes(), nil
}

// crestDataURI loads the house emblem as a base64 data URI. A missing
// emblem renders the ticket without an image rather than failing.
func (s *TicketService) crestDataURI(house model.House) template.URL {
	name := strings.ToLower(string(house)) + ".png"
	raw, err := os.ReadFile(filepath.Join(s.assetsDir, name))
	if err != nil {
		s.logger.Warn("house emblem not found", zap.String("house", string(house)))
		return ""
	}
	return template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(raw))
}
