package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Database errors
	DBConnectionError
	DBTableCheckError
	DBEmptyDatabaseError
	DBNotConnectedError
	DBQueryTablesError
	DBScanTableError
	DBDropTableError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError
	SchemaMigrateError

	// Key data errors
	KeyFileFormatError
	KeyFileDecodeError
	KeyDataInvalidError

	// Lookup errors
	PileNotFoundError
	SpeciesNotFoundError
	CharacterNotFoundError
	ValueNotFoundError

	// Load and import errors
	LoadQueryError
	ImportInsertError
	ImportParseError

	// Optimizer errors
	OptimizerReparseError
	OptimizerOrphanRemovalError
	OptimizerVacuumError

	// Parameter errors
	ParamLoadError
	ParamUnknownError
	ParamSaveError

	// Cache errors
	CacheReadError
	CacheWriteError

	// Command line errors
	ReportFormatError
	MissingPileError
)
