package model

// TierSample describes a reference population of managers, e.g. the top
// 10,000 overall, used to measure how a squad moves against the field.
type TierSample struct {
	Name          string
	AveragePoints float64
	// EffectiveOwnership is the percentage of the tier effectively exposed
	// to each player, weighted by captaincy multipliers.
	EffectiveOwnership map[int]float64
	// Captaincy is the percentage of the tier captaining each player.
	Captaincy map[int]float64
}

func (t *TierSample) OwnershipFor(playerID int) float64 {
	return t.EffectiveOwnership[playerID]
}

func (t *TierSample) CaptaincyFor(playerID int) float64 {
	return t.Captaincy[playerID]
}

// FixtureImpact is the summed rank impact of a manager's owned starters in
// one fixture, versus the reference tier's exposure.
type FixtureImpact struct {
	FixtureID int
	Impact    float64
}
