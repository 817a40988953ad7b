package migrations

import (
	_ "embed"

	"github.com/OilerNetwork/fossil-L1-L2-relayer/db"
	"github.com/OilerNetwork/fossil-L1-L2-relayer/db/types"
)

//go:embed 0001.sql
var mig001 string

func RunMigrations(dbPath string) error {
	migrations := []types.Migration{
		{
			ID:  "mmrstore0001",
			SQL: mig001,
		},
	}
	return db.RunMigrations(dbPath, migrations)
}
