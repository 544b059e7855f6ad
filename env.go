package gridlink

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/dropDatabas3/gridlink/internal/metrics"
	"github.com/dropDatabas3/gridlink/internal/observability/logger"
)

// Environment es el estado compartido de una sesión: config, gateway y
// nombre de instancia. El handle y todas las vistas derivadas lo comparten
// por puntero; vive mientras viva el holder más longevo. Inmutable después
// de construido.
type Environment struct {
	name string
	cfg  Config
	gw   Gateway
	log  *zap.Logger
}

// NewEnvironment crea el environment de una sesión.
func NewEnvironment(cfg Config, gw Gateway) *Environment {
	return &Environment{
		name: cfg.Instance,
		cfg:  cfg,
		gw:   gw,
		log:  logger.Named("gridlink").With(logger.Instance(cfg.Instance)),
	}
}

// Name retorna el identificador de instancia de la sesión.
func (e *Environment) Name() string {
	return e.name
}

// Configuration retorna la configuración (copia por valor).
func (e *Environment) Configuration() Config {
	return e.cfg
}

// call cruza la frontera del runtime y traduce el resultado.
// Es el único camino hacia el gateway: centraliza traducción de errores,
// logging y métricas para todo call site.
func (e *Environment) call(ctx context.Context, target PeerRef, op Op, args ...string) (PeerRef, error) {
	start := time.Now()
	rawRef, desc := e.gw.Call(ctx, target, op, args...)
	ref, err := translate(op, rawRef, desc)

	elapsed := time.Since(start)
	metrics.BoundaryCallLatency.WithLabelValues(string(op)).Observe(elapsed.Seconds())
	if err != nil {
		metrics.BoundaryCalls.WithLabelValues(string(op), "error").Inc()
		var berr *BoundaryError
		if errors.As(err, &berr) {
			e.log.Warn("boundary call failed",
				logger.Op(string(op)),
				logger.Code(berr.Code),
				logger.Class(berr.Class),
				logger.Duration(elapsed),
				zap.String("message", berr.Message),
			)
		}
		return PeerRef{}, err
	}

	metrics.BoundaryCalls.WithLabelValues(string(op), "ok").Inc()
	e.log.Debug("boundary call ok",
		logger.Op(string(op)),
		logger.Peer(ref.ID()),
		logger.Duration(elapsed),
	)
	return ref, nil
}
