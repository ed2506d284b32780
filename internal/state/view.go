package state

import (
	"database/sql"
	"errors"
	"time"

	"github.com/llehouerou/sweetshop/internal/db"
	"github.com/llehouerou/sweetshop/internal/sweets"
)

// ViewState is the part of the dashboard restored on the next start.
type ViewState struct {
	SelectedID string
	SortMode   sweets.SortMode
}

func getView(conn *sql.DB) (*ViewState, error) {
	row := conn.QueryRow(`SELECT selected_id, sort_mode FROM view_state WHERE id = 1`)

	var selectedID sql.NullString
	var sortMode string
	err := row.Scan(&selectedID, &sortMode)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}

	return &ViewState{
		SelectedID: db.NullStringValue(selectedID),
		SortMode:   sweets.SortMode(sortMode),
	}, nil
}

func saveView(conn *sql.DB, state ViewState) error {
	_, err := conn.Exec(`
		INSERT INTO view_state (id, selected_id, sort_mode, updated_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			selected_id = excluded.selected_id,
			sort_mode = excluded.sort_mode,
			updated_at = excluded.updated_at
	`, db.NullString(state.SelectedID), string(state.SortMode), time.Now().Unix())

	return err
}
