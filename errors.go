package gridlink

import (
	"errors"
	"fmt"
)

// ErrAlreadyReleased indica un release (o uso) de una referencia remota que
// ya fue liberada. Es un error de programación del owner, no una condición
// recuperable.
var ErrAlreadyReleased = errors.New("gridlink: peer reference already released")

// CodeUnknown es el código usado cuando el gateway falla sin descriptor
// (referencia cero sin error estructurado).
const CodeUnknown int32 = -1

// BoundaryError es la forma local de una falla reportada por el engine del
// otro lado de la frontera. Code, Class y Message se preservan verbatim del
// descriptor original; no se pierde información en la traducción.
type BoundaryError struct {
	Op      Op
	Code    int32
	Class   string
	Message string
}

func (e *BoundaryError) Error() string {
	return fmt.Sprintf("gridlink: %s failed: %s (code=%d class=%s)", e.Op, e.Message, e.Code, e.Class)
}

// ConstructionError envuelve la falla de la factory de una vista perezosa,
// preservando el BoundaryError subyacente para errors.As.
type ConstructionError struct {
	Component string
	Err       error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("gridlink: construct %s: %v", e.Component, e.Err)
}

func (e *ConstructionError) Unwrap() error {
	return e.Err
}

// translate convierte el resultado crudo de un gateway en (PeerRef, error).
// Aplica uniformemente a todo call site que cruza la frontera: descriptor
// presente → BoundaryError verbatim; referencia cero sin descriptor →
// BoundaryError con causa desconocida.
func translate(op Op, ref PeerRef, desc *ErrorDescriptor) (PeerRef, error) {
	if desc != nil {
		return PeerRef{}, &BoundaryError{Op: op, Code: desc.Code, Class: desc.Class, Message: desc.Message}
	}
	if ref.IsZero() {
		return PeerRef{}, &BoundaryError{Op: op, Code: CodeUnknown, Class: "unknown", Message: "gateway returned no peer reference"}
	}
	return ref, nil
}
