package reservation

// ===============================
// Loyalty Discount Engine
// ===============================

// Tier grants Percent off every EveryN-th completed appointment.
type Tier struct {
	EveryN  int
	Percent float64
}

// TierTable is the single authoritative source of loyalty thresholds.
// Both the booking write path and the next-discount projection go through
// it, so the two can never drift apart.
type TierTable []Tier

// DefaultTiers: every 10th appointment is 20% off.
func DefaultTiers() TierTable {
	return TierTable{{EveryN: 10, Percent: 20}}
}

type Discount struct {
	Applies bool    `json:"applies"`
	Percent float64 `json:"percentage"`
}

// Compute decides the discount for the appointment that would follow
// completedPrior completed reservations. Pure and deterministic; the
// returned percent is always within [0,100]. The reservation under
// construction is never part of the count.
func (tt TierTable) Compute(completedPrior int) Discount {
	if completedPrior < 0 {
		return Discount{}
	}

	appointmentNo := completedPrior + 1
	best := 0.0
	for _, t := range tt {
		if t.EveryN <= 0 || t.Percent <= 0 {
			continue
		}
		if appointmentNo%t.EveryN == 0 && t.Percent > best {
			best = t.Percent
		}
	}

	if best > 100 {
		best = 100
	}
	return Discount{Applies: best > 0, Percent: best}
}

// Next projects the discount the user's next appointment would receive and
// which appointment number that would be. Shares Compute with the write
// path by construction.
func (tt TierTable) Next(completedPrior int) (Discount, int) {
	return tt.Compute(completedPrior), completedPrior + 1
}
