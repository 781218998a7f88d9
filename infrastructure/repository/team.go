package repository

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/vfg2006/sales-report/internal/domain"
)

const (
	teamSource = "team"
)

//go:generate mockgen -source=team.go -destination=mocks/team.go -package=mocks
type TeamRepository interface {
	LoadTeams() (domain.TeamDirectory, []domain.Diagnostic)
}

type teamRepository struct {
	fs   afero.Fs
	path string
}

func NewTeamRepository(fs afero.Fs, path string) TeamRepository {
	return &teamRepository{
		fs:   fs,
		path: path,
	}
}

// LoadTeams lê o diretório de times no formato TeamId,TeamName. O nome pode conter vírgulas.
func (r *teamRepository) LoadTeams() (domain.TeamDirectory, []domain.Diagnostic) {
	teams := make(domain.TeamDirectory)

	diagnostics := readLines(r.fs, teamSource, r.path, func(_ int, line string) error {
		team, err := r.parseTeam(line)
		if err != nil {
			return err
		}
		teams[team.ID] = team
		return nil
	})

	return teams, diagnostics
}

func (r *teamRepository) parseTeam(line string) (domain.Team, error) {
	fields := strings.SplitN(line, ",", 2)
	if len(fields) != 2 {
		return domain.Team{}, errors.Wrapf(domain.ErrFieldCount, "want 2, got %d", len(fields))
	}

	id, err := parseInt("TeamId", fields[0])
	if err != nil {
		return domain.Team{}, err
	}

	return domain.Team{ID: id, Name: fields[1]}, nil
}
