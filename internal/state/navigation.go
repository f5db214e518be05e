package state

import (
	"database/sql"
	"errors"

	dbutil "github.com/llehouerou/crate/internal/db"
)

// NavigationState is what survives a restart: the top-level view the user
// was on and the folder the file browser last showed. Deeper views are
// rebuilt from scratch.
type NavigationState struct {
	TopLevelView string
	FolderPath   string
}

func getNavigation(db *sql.DB) (*NavigationState, error) {
	row := db.QueryRow(`
		SELECT top_level_view, folder_path FROM navigation_state WHERE id = 1
	`)

	var state NavigationState
	var folderPath sql.NullString

	err := row.Scan(&state.TopLevelView, &folderPath)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}

	state.FolderPath = dbutil.NullStringValue(folderPath)
	return &state, nil
}

func saveNavigation(db *sql.DB, state NavigationState) error {
	_, err := db.Exec(`
		INSERT INTO navigation_state (id, top_level_view, folder_path)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			top_level_view = excluded.top_level_view,
			folder_path = excluded.folder_path
	`, state.TopLevelView, dbutil.NullString(state.FolderPath))

	return err
}
