// Package rest implementa el Gateway de gridlink sobre el endpoint HTTP
// del engine. Cada operación de frontera es un POST JSON a /v1/call; la
// liberación de referencias es un DELETE a /v1/refs/{id}.
//
// Los fallos de transporte (red, decode, status sin envelope) se reportan
// como descriptor con clase "rest.transport": el core los traduce igual
// que cualquier error del engine.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dropDatabas3/gridlink"
	"github.com/dropDatabas3/gridlink/internal/metrics"
	"github.com/dropDatabas3/gridlink/internal/observability/logger"
)

const (
	defaultTimeout = 10 * time.Second
	releaseTimeout = 5 * time.Second
	tokenTTL       = time.Minute
)

// Config configura el gateway REST.
type Config struct {
	// BaseURL es el endpoint del engine, ej. "http://node0:10800".
	BaseURL string

	// AuthSecret firma el token Bearer HS256 por llamada.
	// Vacío deshabilita auth.
	AuthSecret string

	// Timeout por llamada HTTP. 0 usa defaultTimeout.
	Timeout time.Duration
}

// Gateway es la implementación HTTP de gridlink.Gateway.
type Gateway struct {
	base   string
	secret string
	http   *http.Client
	log    *zap.Logger
}

// New crea un gateway contra el endpoint dado.
func New(cfg Config) *Gateway {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Gateway{
		base:   strings.TrimRight(cfg.BaseURL, "/"),
		secret: cfg.AuthSecret,
		http:   &http.Client{Timeout: timeout},
		log:    logger.Named("gridlink.rest"),
	}
}

// Formato de wire del endpoint /v1/call.
type callRequest struct {
	RequestID string   `json:"request_id"`
	Target    string   `json:"target,omitempty"`
	Op        string   `json:"op"`
	Args      []string `json:"args,omitempty"`
}

type callResponse struct {
	Ref   string         `json:"ref,omitempty"`
	Error *errorEnvelope `json:"error,omitempty"`
}

type errorEnvelope struct {
	Code    int32  `json:"code"`
	Class   string `json:"class"`
	Message string `json:"message"`
}

// Call implementa gridlink.Gateway.
func (g *Gateway) Call(ctx context.Context, target gridlink.PeerRef, op gridlink.Op, args ...string) (gridlink.PeerRef, *gridlink.ErrorDescriptor) {
	reqID := uuid.NewString()

	body, err := json.Marshal(callRequest{
		RequestID: reqID,
		Target:    target.ID(),
		Op:        string(op),
		Args:      args,
	})
	if err != nil {
		return gridlink.PeerRef{}, transportDescriptor(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.base+"/v1/call", bytes.NewReader(body))
	if err != nil {
		return gridlink.PeerRef{}, transportDescriptor(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", reqID)
	if err := g.authorize(req); err != nil {
		return gridlink.PeerRef{}, transportDescriptor(err)
	}

	resp, err := g.http.Do(req)
	if err != nil {
		return gridlink.PeerRef{}, transportDescriptor(err)
	}
	defer resp.Body.Close()

	var out callResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return gridlink.PeerRef{}, transportDescriptor(fmt.Errorf("decode response (status %d): %w", resp.StatusCode, err))
	}

	if out.Error != nil {
		g.log.Debug("engine error envelope",
			logger.RequestID(reqID),
			logger.Op(string(op)),
			logger.Code(out.Error.Code),
			logger.Class(out.Error.Class),
		)
		return gridlink.PeerRef{}, &gridlink.ErrorDescriptor{
			Code:    out.Error.Code,
			Class:   out.Error.Class,
			Message: out.Error.Message,
		}
	}
	if out.Ref == "" {
		// Sin ref y sin envelope: el core lo trata como falla sin descriptor.
		return gridlink.PeerRef{}, nil
	}

	id := out.Ref
	return gridlink.NewPeerRef(id, func() { g.releaseRemote(id) }), nil
}

// authorize agrega el token Bearer si hay secret configurado.
func (g *Gateway) authorize(req *http.Request) error {
	if g.secret == "" {
		return nil
	}
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    "gridlink",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(g.secret))
	if err != nil {
		return fmt.Errorf("sign auth token: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+tok)
	return nil
}

// releaseRemote libera la referencia del lado del engine. Best-effort: el
// release local ya ocurrió y no puede deshacerse, así que acá solo se
// loguea la falla.
func (g *Gateway) releaseRemote(id string) {
	ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, g.base+"/v1/refs/"+id, nil)
	if err != nil {
		g.log.Warn("release request", logger.Peer(id), logger.Err(err))
		return
	}
	if err := g.authorize(req); err != nil {
		g.log.Warn("release auth", logger.Peer(id), logger.Err(err))
		return
	}

	resp, err := g.http.Do(req)
	if err != nil {
		g.log.Warn("release failed", logger.Peer(id), logger.Err(err))
		return
	}
	resp.Body.Close()
	metrics.PeerRefsReleased.Inc()
	g.log.Debug("peer ref released", logger.Peer(id), logger.Status(resp.StatusCode))
}

func transportDescriptor(err error) *gridlink.ErrorDescriptor {
	return &gridlink.ErrorDescriptor{
		Code:    gridlink.CodeUnknown,
		Class:   "rest.transport",
		Message: err.Error(),
	}
}
