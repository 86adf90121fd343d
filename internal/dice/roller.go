package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

// Roller provides an interface for evaluating roll specs
// This allows us to inject deterministic implementations for testing
type Roller interface {
	// Roll evaluates one spec with fresh randomness
	Roll(spec Spec) (*Roll, error)
}
