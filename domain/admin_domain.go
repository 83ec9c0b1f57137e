package domain

var (
	MessageSuccessMigrate     = "tables created or already exist"
	MessageSuccessSeed        = "sample data inserted"
	MessageSeedAlreadyPresent = "sample data already present"

	MessageFailedMigrate = "failed to create tables"
	MessageFailedSeed    = "failed to insert sample data"
	MessageFailedExport  = "failed to export table"
)
