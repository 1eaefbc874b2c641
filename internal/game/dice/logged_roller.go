package dice

import "go.uber.org/zap"

// Roller wraps a Source and logger. Every roll and every uniform pick is
// logged at debug level so a game can be audited from its log.
type Roller struct {
	src    Source
	logger *zap.Logger
}

// NewLoggedRoller creates a Roller that rolls with src and logs to logger.
//
// Precondition: src and logger must be non-nil.
func NewLoggedRoller(src Source, logger *zap.Logger) *Roller {
	return &Roller{src: src, logger: logger}
}

// Roll evaluates expr and logs the result.
func (r *Roller) Roll(expr Expression) RollResult {
	result := Roll(expr, r.src)
	r.logger.Debug("dice roll",
		zap.String("expression", result.Expression),
		zap.Ints("dice", result.Dice),
		zap.Int("modifier", result.Modifier),
		zap.Int("total", result.Total()),
	)
	return result
}

// Intn draws a uniform index in [0, n) from the underlying Source.
//
// Precondition: n > 0.
func (r *Roller) Intn(n int) int {
	v := r.src.Intn(n)
	r.logger.Debug("uniform pick", zap.Int("n", n), zap.Int("value", v))
	return v
}
