package types

// Migration is a database migration to be run by sql-migrate. SQL holds both
// directions, separated by the "-- +migrate Up" / "-- +migrate Down"
// directives.
type Migration struct {
	ID  string
	SQL string
}
