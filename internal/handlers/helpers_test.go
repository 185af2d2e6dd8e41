package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/zamtimber/shop/internal/cart"
	"github.com/zamtimber/shop/internal/catalog"
	"github.com/zamtimber/shop/internal/storage"
)

type recordedEvent struct {
	Topic string
	Key   string
	Event any
}

// recordingPublisher captures published events so tests can assert on the
// notification side-channel without a broker.
type recordingPublisher struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (p *recordingPublisher) PublishEvent(_ context.Context, topic, key string, event any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, recordedEvent{Topic: topic, Key: key, Event: event})
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) Events() []recordedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]recordedEvent, len(p.events))
	copy(out, p.events)
	return out
}

type testEnv struct {
	T       *testing.T
	E       *echo.Echo
	Cart    *CartHandler
	Catalog *CatalogHandler
	Contact *ContactHandler
	Eco     *EcoHandler
	Slot    *storage.MemorySlot
	Events  *recordingPublisher
}

func newTestEnv(t *testing.T) *testEnv {
	cat := catalog.Default()
	slot := storage.NewMemorySlot()
	rec := &recordingPublisher{}

	svc := cart.NewService(cat, slot)
	svc.ProcessingDelay = 0

	return &testEnv{
		T:       t,
		E:       echo.New(),
		Cart:    &CartHandler{Svc: svc, Events: rec},
		Catalog: &CatalogHandler{Catalog: cat},
		Contact: &ContactHandler{Events: rec},
		Eco:     &EcoHandler{Catalog: cat},
		Slot:    slot,
		Events:  rec,
	}
}

func newSessionCookie(sid string) *http.Cookie {
	return &http.Cookie{Name: "cart_session", Value: sid, Path: "/"}
}

func (env *testEnv) doJSONRequest(method, target string, body any, cookies ...*http.Cookie) (*httptest.ResponseRecorder, *http.Request, echo.Context) {
	env.T.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, req, c
}
