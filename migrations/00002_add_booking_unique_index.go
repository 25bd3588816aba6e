package migrations

import (
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigration(upAddBookingUniqueIndex, downAddBookingUniqueIndex)
}

// The partial unique index is what actually stops two concurrent bookings of
// the same class by the same user; the application-level existence check is
// only a fast path. Soft-deleted (cancelled) rows are excluded so a user can
// re-book after cancelling.
func upAddBookingUniqueIndex(tx *sql.Tx) error {
	query := `
		CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_user_session_active
		ON bookings (user_id, class_session_id)
		WHERE deleted_at IS NULL
	`
	if _, err := tx.Exec(query); err != nil {
		return fmt.Errorf("failed to create booking unique index: %w", err)
	}

	return nil
}

func downAddBookingUniqueIndex(tx *sql.Tx) error {
	if _, err := tx.Exec("DROP INDEX IF EXISTS idx_bookings_user_session_active"); err != nil {
		return fmt.Errorf("failed to drop booking unique index: %w", err)
	}

	return nil
}
