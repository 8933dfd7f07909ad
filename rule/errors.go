package rule

import "errors"

// ErrUnknownMode indicates a params.RuleMode this package cannot evaluate.
var ErrUnknownMode = errors.New("rule: unknown rule mode")

// SmallNormThreshold is the Σ|w| ≈ 0 guard spec §7 names: below this, a
// kernel or graph rule reports drive = 0 rather than dividing by a
// near-zero normalizer.
const SmallNormThreshold = 1e-4
