package rest_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/dropDatabas3/gridlink"
	"github.com/dropDatabas3/gridlink/internal/gateway/rest"
)

// engineStub simula el endpoint HTTP del engine con chi.
type engineStub struct {
	mu       sync.Mutex
	calls    []map[string]any
	deletes  []string
	headers  []http.Header
	response map[string]any
	status   int
}

func newEngineStub(t *testing.T) (*engineStub, string) {
	t.Helper()
	stub := &engineStub{
		response: map[string]any{"ref": "ref-1"},
		status:   http.StatusOK,
	}

	r := chi.NewRouter()
	r.Post("/v1/call", func(w http.ResponseWriter, req *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(req.Body).Decode(&body)
		stub.mu.Lock()
		stub.calls = append(stub.calls, body)
		stub.headers = append(stub.headers, req.Header.Clone())
		resp, status := stub.response, stub.status
		stub.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(resp)
	})
	r.Delete("/v1/refs/{id}", func(w http.ResponseWriter, req *http.Request) {
		stub.mu.Lock()
		stub.deletes = append(stub.deletes, chi.URLParam(req, "id"))
		stub.mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return stub, srv.URL
}

func TestCall_Success(t *testing.T) {
	stub, url := newEngineStub(t)
	gw := rest.New(rest.Config{BaseURL: url})

	target := gridlink.NewPeerRef("sess-9", nil)
	ref, desc := gw.Call(context.Background(), target, gridlink.OpResolveCache, "prices")
	require.Nil(t, desc)
	require.Equal(t, "ref-1", ref.ID())

	require.Len(t, stub.calls, 1)
	call := stub.calls[0]
	require.Equal(t, "cache.resolve", call["op"])
	require.Equal(t, "sess-9", call["target"])
	require.Equal(t, []any{"prices"}, call["args"])

	reqID, _ := call["request_id"].(string)
	_, err := uuid.Parse(reqID)
	require.NoError(t, err, "request_id must be a uuid")
	require.Equal(t, reqID, stub.headers[0].Get("X-Request-ID"))
	require.Equal(t, "application/json", stub.headers[0].Get("Content-Type"))
}

func TestCall_AuthToken(t *testing.T) {
	stub, url := newEngineStub(t)
	gw := rest.New(rest.Config{BaseURL: url, AuthSecret: "s3cret"})

	_, desc := gw.Call(context.Background(), gridlink.PeerRef{}, gridlink.OpOpenSession)
	require.Nil(t, desc)

	auth := stub.headers[0].Get("Authorization")
	require.True(t, strings.HasPrefix(auth, "Bearer "), "missing bearer token")

	tok, err := jwt.Parse(strings.TrimPrefix(auth, "Bearer "), func(t *jwt.Token) (any, error) {
		return []byte("s3cret"), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)
	iss, err := tok.Claims.GetIssuer()
	require.NoError(t, err)
	require.Equal(t, "gridlink", iss)
}

func TestCall_NoAuthWithoutSecret(t *testing.T) {
	stub, url := newEngineStub(t)
	gw := rest.New(rest.Config{BaseURL: url})

	_, desc := gw.Call(context.Background(), gridlink.PeerRef{}, gridlink.OpOpenSession)
	require.Nil(t, desc)
	require.Empty(t, stub.headers[0].Get("Authorization"))
}

func TestCall_ErrorEnvelope(t *testing.T) {
	stub, url := newEngineStub(t)
	stub.response = map[string]any{
		"error": map[string]any{"code": 7, "class": "X", "message": "boom"},
	}
	stub.status = http.StatusConflict

	gw := rest.New(rest.Config{BaseURL: url})
	ref, desc := gw.Call(context.Background(), gridlink.PeerRef{}, gridlink.OpResolveTransactions)

	require.True(t, ref.IsZero())
	require.NotNil(t, desc)
	require.Equal(t, int32(7), desc.Code)
	require.Equal(t, "X", desc.Class)
	require.Equal(t, "boom", desc.Message)
}

func TestCall_EmptyRefWithoutEnvelope(t *testing.T) {
	stub, url := newEngineStub(t)
	stub.response = map[string]any{}

	gw := rest.New(rest.Config{BaseURL: url})
	ref, desc := gw.Call(context.Background(), gridlink.PeerRef{}, gridlink.OpResolveTransactions)

	// El core traduce (cero, nil) a BoundaryCallFailed con causa desconocida.
	require.True(t, ref.IsZero())
	require.Nil(t, desc)
}

func TestCall_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close() // fuerza error de conexión

	gw := rest.New(rest.Config{BaseURL: url})
	ref, desc := gw.Call(context.Background(), gridlink.PeerRef{}, gridlink.OpOpenSession)

	require.True(t, ref.IsZero())
	require.NotNil(t, desc)
	require.Equal(t, gridlink.CodeUnknown, desc.Code)
	require.Equal(t, "rest.transport", desc.Class)
	require.NotEmpty(t, desc.Message)
}

func TestCall_NonJSONResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	}))
	t.Cleanup(srv.Close)

	gw := rest.New(rest.Config{BaseURL: srv.URL})
	_, desc := gw.Call(context.Background(), gridlink.PeerRef{}, gridlink.OpOpenSession)

	require.NotNil(t, desc)
	require.Equal(t, "rest.transport", desc.Class)
	require.Contains(t, desc.Message, "502")
}

func TestRelease_DeletesRemoteRef(t *testing.T) {
	stub, url := newEngineStub(t)
	gw := rest.New(rest.Config{BaseURL: url})

	ref, desc := gw.Call(context.Background(), gridlink.PeerRef{}, gridlink.OpResolveClusterGroup)
	require.Nil(t, desc)

	require.NoError(t, ref.Release())
	require.Equal(t, []string{"ref-1"}, stub.deletes)

	// El segundo release falla localmente sin tocar el engine.
	require.ErrorIs(t, ref.Release(), gridlink.ErrAlreadyReleased)
	require.Len(t, stub.deletes, 1)
}
