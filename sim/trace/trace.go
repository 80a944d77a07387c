package trace

// TraceLevel controls the verbosity of episode tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelTicks captures every move and every ignition.
	TraceLevelTicks TraceLevel = "ticks"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:  true,
	TraceLevelTicks: true,
	"":              true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// EpisodeTrace collects move and ignition records for one episode.
type EpisodeTrace struct {
	Moves     []MoveRecord
	Ignitions []IgnitionRecord
}

// NewEpisodeTrace creates an EpisodeTrace ready for recording.
func NewEpisodeTrace() *EpisodeTrace {
	return &EpisodeTrace{
		Moves:     make([]MoveRecord, 0),
		Ignitions: make([]IgnitionRecord, 0),
	}
}

// RecordMove appends a move record.
func (et *EpisodeTrace) RecordMove(record MoveRecord) {
	et.Moves = append(et.Moves, record)
}

// RecordIgnitions appends an ignition record. Ticks where nothing ignited are skipped.
func (et *EpisodeTrace) RecordIgnitions(record IgnitionRecord) {
	if len(record.Cells) == 0 {
		return
	}
	et.Ignitions = append(et.Ignitions, record)
}
