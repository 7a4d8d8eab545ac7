package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/immoralia/process-catalog/internal/mailer"
)

func contactBody(email string) []byte {
	body, _ := json.Marshal(map[string]any{
		"nombre":     "Ana García",
		"email":      email,
		"empresa":    "Estudio Norte",
		"comentario": "Nos interesa la facturación automática.",
		"selectedProcesses": []map[string]string{
			{"id": "A1", "codigo": "A1", "nombre": "Facturas automatizadas", "categoriaNombre": "Facturas y Gastos"},
			{"id": "C9", "codigo": "C9", "nombre": "Alertas de facturas de compra", "categoriaNombre": "Finanzas y Tesorería"},
		},
	})
	return body
}

func postContact(s *Server, body []byte, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/send-contact-email", bytes.NewReader(body))
	req.Header.Set("x-real-ip", ip)
	w := httptest.NewRecorder()
	s.handleSendContactEmail(w, req)
	return w
}

func TestSendContactEmail_Success(t *testing.T) {
	var sends atomic.Int32
	store := &fakeStore{}
	s := newTestServer(t, store, func(w http.ResponseWriter, r *http.Request) {
		sends.Add(1)
		w.WriteHeader(http.StatusOK)
	}, nil)

	w := postContact(s, contactBody("ana@example.com"), "203.0.113.9")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
	assert.Equal(t, int32(2), sends.Load(), "both notification and confirmation must be sent")

	require.Len(t, store.contacts, 1)
	saved := store.contacts[0]
	assert.Equal(t, "ana@example.com", saved.Email)
	assert.Equal(t, "203.0.113.9", saved.IPAddress)
	require.NotNil(t, saved.EstimatedPrice)
	assert.Equal(t, 4000, *saved.EstimatedPrice)
}

func TestSendContactEmail_InvalidBody(t *testing.T) {
	s := newTestServer(t, &fakeStore{}, nil, nil)

	w := postContact(s, []byte("{not json"), "203.0.113.9")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request body")
}

func TestSendContactEmail_ShortNameNamesField(t *testing.T) {
	var sends atomic.Int32
	s := newTestServer(t, &fakeStore{}, func(w http.ResponseWriter, r *http.Request) {
		sends.Add(1)
		w.WriteHeader(http.StatusOK)
	}, nil)

	body, _ := json.Marshal(map[string]any{
		"nombre":  "A",
		"email":   "ana@example.com",
		"empresa": "Estudio Norte",
		"selectedProcesses": []map[string]string{
			{"id": "A1", "codigo": "A1", "nombre": "Facturas automatizadas"},
		},
	})
	w := postContact(s, body, "203.0.113.9")

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Error   string `json:"error"`
		Details []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "validation_error", resp.Error)
	require.Len(t, resp.Details, 1)
	assert.Equal(t, "nombre", resp.Details[0].Field)

	assert.Equal(t, int32(0), sends.Load(), "invalid requests must not reach the mailer")
}

func TestSendContactEmail_EmptySelection(t *testing.T) {
	s := newTestServer(t, &fakeStore{}, nil, nil)

	body, _ := json.Marshal(map[string]any{
		"nombre":            "Ana García",
		"email":             "ana@example.com",
		"empresa":           "Estudio Norte",
		"selectedProcesses": []map[string]string{},
	})
	w := postContact(s, body, "203.0.113.9")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSendContactEmail_FourthSubmissionRateLimited(t *testing.T) {
	s := newTestServer(t, &fakeStore{}, nil, nil)

	for i := 0; i < 3; i++ {
		w := postContact(s, contactBody("ana@example.com"), "203.0.113.9")
		require.Equal(t, http.StatusOK, w.Code, "submission %d should pass", i+1)
	}

	w := postContact(s, contactBody("ana@example.com"), "203.0.113.9")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "rate_limit_exceeded")
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestSendContactEmail_SameEmailDifferentIPStillLimited(t *testing.T) {
	s := newTestServer(t, &fakeStore{}, nil, nil)

	for i := 0; i < 3; i++ {
		ip := fmt.Sprintf("203.0.113.%d", i+1)
		w := postContact(s, contactBody("ana@example.com"), ip)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := postContact(s, contactBody("ana@example.com"), "203.0.113.50")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestSendContactEmail_DeliveryFailureDoesNotConsumeQuota(t *testing.T) {
	var fail atomic.Bool
	fail.Store(true)
	s := newTestServer(t, &fakeStore{}, func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}, nil)

	for i := 0; i < 5; i++ {
		w := postContact(s, contactBody("ana@example.com"), "203.0.113.9")
		require.Equal(t, http.StatusBadGateway, w.Code)
		require.Contains(t, w.Body.String(), "Failed to send email")
	}

	// Failed sends never counted, so a working provider lets it through.
	fail.Store(false)
	w := postContact(s, contactBody("ana@example.com"), "203.0.113.9")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSendContactEmail_MailerNotConfigured(t *testing.T) {
	s := newTestServer(t, &fakeStore{}, nil, nil)
	s.mail = mailer.New("", nil)

	w := postContact(s, contactBody("ana@example.com"), "203.0.113.9")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "Email service not configured")
}

func TestSendContactEmail_StorageFailureStillSends(t *testing.T) {
	store := &fakeStore{contactErr: fmt.Errorf("connection refused")}
	s := newTestServer(t, store, nil, nil)

	w := postContact(s, contactBody("ana@example.com"), "203.0.113.9")
	assert.Equal(t, http.StatusOK, w.Code)
}
