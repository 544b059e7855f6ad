package gridlink

import "sync/atomic"

// PeerRef es una referencia opaca a un objeto que vive en el runtime del
// engine. Copiar un PeerRef copia el handle interno: todas las copias
// comparten el mismo estado de liberación, así que transferir ownership
// nunca duplica el release.
type PeerRef struct {
	h *peerHandle
}

type peerHandle struct {
	id       string
	release  func()
	released atomic.Bool
}

// NewPeerRef crea una referencia con su hook de liberación.
// El hook lo provee el Gateway que acuñó la referencia; se invoca a lo sumo
// una vez, desde Release.
func NewPeerRef(id string, release func()) PeerRef {
	return PeerRef{h: &peerHandle{id: id, release: release}}
}

// ID retorna el identificador remoto, o "" para la referencia cero.
func (r PeerRef) ID() string {
	if r.h == nil {
		return ""
	}
	return r.h.id
}

// IsZero reporta si la referencia no apunta a ningún objeto remoto.
func (r PeerRef) IsZero() bool {
	return r.h == nil
}

// Release libera la referencia remota exactamente una vez.
// La segunda llamada retorna ErrAlreadyReleased sin tocar el engine:
// un doble release es un error de programación del owner y debe fallar
// ruidosamente. Liberar la referencia cero es un no-op.
func (r PeerRef) Release() error {
	if r.h == nil {
		return nil
	}
	if !r.h.released.CompareAndSwap(false, true) {
		return ErrAlreadyReleased
	}
	if r.h.release != nil {
		r.h.release()
	}
	return nil
}

// Released reporta si Release ya fue invocado sobre esta referencia.
func (r PeerRef) Released() bool {
	return r.h != nil && r.h.released.Load()
}
