package leadclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/immoralia/process-catalog/internal/onboarding"
	"github.com/immoralia/process-catalog/internal/types"
)

func contactRequest() *types.ContactRequest {
	return &types.ContactRequest{
		Nombre:  "Ana",
		Email:   "ana@example.com",
		Empresa: "Estudio Norte",
		SelectedProcesses: []types.SelectedProcess{
			{ID: "A1", Codigo: "A1", Nombre: "Facturas automatizadas"},
		},
	}
}

func TestSendContact_Success(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := New(server.URL, nil)
	require.NoError(t, client.SendContact(context.Background(), contactRequest()))
	assert.Equal(t, "/send-contact-email", gotPath)
}

func TestSendContact_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := New(server.URL, nil)
	err := client.SendContact(context.Background(), contactRequest())
	require.Error(t, err)

	var leadErr *Error
	require.ErrorAs(t, err, &leadErr)
	assert.Equal(t, KindServer, leadErr.Kind)
	assert.Contains(t, leadErr.UserMessage(), "Algo ha fallado por nuestra parte")
}

func TestSendContact_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := New(server.URL, nil)
	err := client.SendContact(context.Background(), contactRequest())

	var leadErr *Error
	require.ErrorAs(t, err, &leadErr)
	assert.Equal(t, KindRateLimited, leadErr.Kind)
	assert.Contains(t, leadErr.UserMessage(), "límite de envíos")
}

func TestSendContact_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := New(server.URL, &Options{Timeout: 20 * time.Millisecond})
	err := client.SendContact(context.Background(), contactRequest())

	var leadErr *Error
	require.ErrorAs(t, err, &leadErr)
	assert.Equal(t, KindTimeout, leadErr.Kind)
	assert.Contains(t, leadErr.UserMessage(), "tardando más de lo normal")
}

func TestSendContact_BadRequestIsOther(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client := New(server.URL, nil)
	err := client.SendContact(context.Background(), contactRequest())

	var leadErr *Error
	require.ErrorAs(t, err, &leadErr)
	assert.Equal(t, KindOther, leadErr.Kind)
}

func TestSubmitLead_FlattensProfileAnswers(t *testing.T) {
	var got map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	profile := &onboarding.Profile{
		Sector:   "Retail",
		Tools:    []string{"Holded", "Gestión: Otro"},
		Nombre:   "Luis",
		Email:    "luis@example.com",
		Telefono: "+34 600 000 000",
		OtherTools: map[string]string{
			"Gestión": "Wrike",
		},
		Extra: map[string]string{
			onboarding.KeyERPPlatform: "Holded",
		},
	}

	client := New(server.URL, nil)
	require.NoError(t, client.SubmitLead(context.Background(), profile))

	assert.Equal(t, "Luis", got["nombre"])
	answers, ok := got["answers"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Wrike", answers["other_Gestión"])
	assert.Equal(t, "Holded", answers["selected_erp_platform_id"])
	assert.Equal(t, "Retail", answers["sector"])
}
