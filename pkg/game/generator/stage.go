package generator

// Stage identifies one step of the generation pipeline. Stages always run
// in declaration order.
type Stage int

const (
	StageGridInit Stage = iota
	StagePartition
	StageCarve
	StageStart
	StageExitRoom
	StageExitPoint
	StagePath
	StageDoors
)

// AllStages returns every stage in pipeline order
func AllStages() []Stage {
	return []Stage{StageGridInit, StagePartition, StageCarve, StageStart, StageExitRoom, StageExitPoint, StagePath, StageDoors}
}

// String returns the string representation of a stage
func (s Stage) String() string {
	switch s {
	case StageGridInit:
		return "grid init"
	case StagePartition:
		return "room partition"
	case StageCarve:
		return "room carving"
	case StageStart:
		return "start placement"
	case StageExitRoom:
		return "exit room selection"
	case StageExitPoint:
		return "exit placement"
	case StagePath:
		return "path derivation"
	case StageDoors:
		return "door carving"
	default:
		return "unknown stage"
	}
}
