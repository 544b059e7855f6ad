package logger

import (
	"time"

	"go.uber.org/zap"
)

// =================================================================================
// CAMPOS ESTÁNDAR - FRONTERA
// =================================================================================

// Op crea un campo para la operación de frontera.
func Op(v string) zap.Field {
	return zap.String("op", v)
}

// Peer crea un campo para el id de una referencia remota.
func Peer(v string) zap.Field {
	return zap.String("peer", v)
}

// Code crea un campo para el código de error del engine.
func Code(v int32) zap.Field {
	return zap.Int32("code", v)
}

// Class crea un campo para la clase de error del engine.
func Class(v string) zap.Field {
	return zap.String("class", v)
}

// Duration crea un campo para la duración de una llamada.
func Duration(v time.Duration) zap.Field {
	return zap.Duration("duration", v)
}

// =================================================================================
// CAMPOS ESTÁNDAR - GATEWAY REST
// =================================================================================

// RequestID crea un campo para el id de request del gateway.
func RequestID(v string) zap.Field {
	return zap.String("request_id", v)
}

// Endpoint crea un campo para el endpoint del engine.
func Endpoint(v string) zap.Field {
	return zap.String("endpoint", v)
}

// Status crea un campo para el status code HTTP.
func Status(v int) zap.Field {
	return zap.Int("status", v)
}

// =================================================================================
// CAMPOS ESTÁNDAR - SISTEMA
// =================================================================================

// Instance crea un campo para el nombre de instancia de la sesión.
func Instance(v string) zap.Field {
	return zap.String("instance", v)
}

// Component crea un campo para el componente/vista.
func Component(v string) zap.Field {
	return zap.String("component", v)
}

// CacheName crea un campo para el nombre de un cache del engine.
func CacheName(v string) zap.Field {
	return zap.String("cache", v)
}

// Err crea un campo para un error.
func Err(err error) zap.Field {
	return zap.Error(err)
}
