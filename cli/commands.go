package cli

var (
	Version   = ""
	CommitSHA = ""
)

// Globals defines global flags available to all commands.
type Globals struct {
	Telemetry bool `help:"Show timing telemetry for operations."`
}

type Commands struct {
	Globals

	Check    CheckCmd    `cmd:"" help:"Validate a transaction bundle against the compliance suite."`
	Workflow WorkflowCmd `cmd:"" help:"Replay a transition script against a fresh budget workflow."`
	Exhibit  ExhibitCmd  `cmd:"" help:"Shape budget data into a congressional exhibit."`
	Inspect  InspectCmd  `cmd:"" help:"Decode a transaction bundle and dump the typed result."`
}
