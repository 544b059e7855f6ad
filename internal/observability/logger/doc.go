// Package logger provee el logger Zap del SDK como singleton con scoping
// por contexto.
//
// # Design Decisions
//
//   - Singleton: una sola instancia global inicializada con Init().
//   - Context Scoping: un caller puede propagar un logger "scoped" con
//     campos adicionales (instance, op, etc.) sin crear un nuevo core.
//   - Environments: "dev" usa consola con colores, "prod" usa JSON.
//   - Levels: debug, info, warn, error.
//
// # Usage
//
// Inicialización (una vez, en el main del CLI o de la app embebedora):
//
//	logger.Init(logger.Config{
//	    Env:   os.Getenv("GRIDLINK_ENV"),       // "dev" o "prod"
//	    Level: os.Getenv("GRIDLINK_LOG_LEVEL"), // "debug", "info", ...
//	})
//	defer logger.Sync()
//
// En el SDK (con contexto):
//
//	log := logger.From(ctx)
//	log.Debug("boundary call ok", logger.Op(op), logger.Peer(ref))
//
// Sin contexto (fallback al singleton):
//
//	logger.L().Info("session established")
package logger
