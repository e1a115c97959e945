package report

import (
	"go.uber.org/zap"

	"skirmish/internal/combat"
)

// ZapTrace adapts a zap logger into a combat trace sink, one structured log
// line per allocation or round event.
func ZapTrace(log *zap.Logger) combat.TraceFunc {
	return func(ev combat.Event) {
		fields := make([]zap.Field, 0, len(ev.Payload)+1)
		fields = append(fields, zap.Int("round", ev.Round))
		for k, v := range ev.Payload {
			fields = append(fields, zap.Any(k, v))
		}
		log.Info(ev.Type, fields...)
	}
}
