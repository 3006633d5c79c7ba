package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultManifestFile is the default suite manifest file name
	DefaultManifestFile = "tsel.yaml"
	// DefaultReportFile is the default selection report file name
	DefaultReportFile = "selection-report.json"
	// DefaultReportDir is the default report output directory
	DefaultReportDir = "storage"
	// DefaultProcessors is the default number of selection workers
	DefaultProcessors = 4
)
