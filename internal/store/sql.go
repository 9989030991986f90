package store

import (
	"context"
	"database/sql"
	"math"
	"strconv"
	"strings"

	"cricket-app/internal/model"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
)

const playerColumns = `player_id, player_name, jersey_number, role`

type playerRow struct {
	ID           int64          `db:"player_id"`
	Name         sql.NullString `db:"player_name"`
	JerseyNumber looseInt64     `db:"jersey_number"`
	Role         sql.NullString `db:"role"`
}

func (r playerRow) toModel() model.Player {
	p := model.Player{ID: r.ID}
	if r.Name.Valid {
		p.Name = model.StringPtr(r.Name.String)
	}
	if r.JerseyNumber.Valid {
		p.JerseyNumber = model.Int64Ptr(r.JerseyNumber.Int64)
	}
	if r.Role.Valid {
		p.Role = model.StringPtr(r.Role.String)
	}
	return p
}

// looseInt64 scans jersey_number. INTEGER affinity still lets sqlite hold
// text or real values; anything that is not a whole number in int64 range
// reads back as NULL instead of failing the whole query.
type looseInt64 struct {
	Int64 int64
	Valid bool
}

func (n *looseInt64) Scan(value any) error {
	n.Int64, n.Valid = 0, false
	switch v := value.(type) {
	case nil:
	case int64:
		n.Int64, n.Valid = v, true
	case float64:
		if v == math.Trunc(v) && v >= math.MinInt64 && v < math.MaxInt64 {
			n.Int64, n.Valid = int64(v), true
		}
	case string:
		n.Int64, n.Valid = parseLooseInt64(v)
	case []byte:
		n.Int64, n.Valid = parseLooseInt64(string(v))
	}
	return nil
}

func parseLooseInt64(s string) (int64, bool) {
	i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, false
	}
	return i, true
}

// sqlStore holds the statements shared by the sqlite and postgres stores.
// Queries are written with ? placeholders and rebound for the driver.
type sqlStore struct {
	db *sqlx.DB
}

func (s *sqlStore) ListPlayers(ctx context.Context) ([]model.Player, error) {
	var rows []playerRow
	if err := s.db.SelectContext(ctx, &rows, `SELECT `+playerColumns+` FROM cricket_team`); err != nil {
		return nil, errors.Wrap(err, "select players")
	}

	players := make([]model.Player, 0, len(rows))
	for _, row := range rows {
		players = append(players, row.toModel())
	}
	return players, nil
}

func (s *sqlStore) GetPlayer(ctx context.Context, id int64) (model.Player, bool, error) {
	var row playerRow
	err := s.db.GetContext(ctx, &row, s.db.Rebind(`SELECT `+playerColumns+` FROM cricket_team WHERE player_id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Player{}, false, nil
	}
	if err != nil {
		return model.Player{}, false, errors.Wrapf(err, "select player %d", id)
	}
	return row.toModel(), true, nil
}

func (s *sqlStore) CreatePlayer(ctx context.Context, player model.Player) (model.Player, error) {
	var id int64
	err := s.db.QueryRowxContext(ctx,
		s.db.Rebind(`INSERT INTO cricket_team (player_name, jersey_number, role) VALUES (?, ?, ?) RETURNING player_id`),
		nullString(player.Name), nullInt64(player.JerseyNumber), nullString(player.Role),
	).Scan(&id)
	if err != nil {
		return model.Player{}, errors.Wrap(err, "insert player")
	}
	player.ID = id
	return player, nil
}

func (s *sqlStore) UpdatePlayer(ctx context.Context, player model.Player) error {
	_, err := s.db.ExecContext(ctx,
		s.db.Rebind(`UPDATE cricket_team SET player_name = ?, jersey_number = ?, role = ? WHERE player_id = ?`),
		nullString(player.Name), nullInt64(player.JerseyNumber), nullString(player.Role), player.ID,
	)
	if err != nil {
		return errors.Wrapf(err, "update player %d", player.ID)
	}
	return nil
}

func (s *sqlStore) DeletePlayer(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, s.db.Rebind(`DELETE FROM cricket_team WHERE player_id = ?`), id); err != nil {
		return errors.Wrapf(err, "delete player %d", id)
	}
	return nil
}

func (s *sqlStore) Close() error {
	return s.db.Close()
}

func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}
