package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zamtimber/shop/internal/events"
)

func TestSubmitContact(t *testing.T) {
	env := newTestEnv(t)

	load := map[string]string{
		"name":    "Chanda Mwila",
		"email":   "chanda@example.com",
		"subject": "Bulk order",
		"message": "Do you deliver to Lusaka?",
	}

	rec, _, c := env.doJSONRequest(http.MethodPost, "/api/contact", load)
	require.NoError(t, env.Contact.SubmitContact(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Message received successfully", resp.Message)

	evs := env.Events.Events()
	require.Len(t, evs, 1)
	assert.Equal(t, events.TopicContact, evs[0].Topic)
	assert.Equal(t, "chanda@example.com", evs[0].Key)
}

func TestSubmitContact_MissingRequiredFields(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name string
		load map[string]string
	}{
		{name: "missing name", load: map[string]string{"email": "a@b.c", "message": "hi"}},
		{name: "missing email", load: map[string]string{"name": "A", "message": "hi"}},
		{name: "missing message", load: map[string]string{"name": "A", "email": "a@b.c"}},
		{name: "empty body", load: map[string]string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, _, c := env.doJSONRequest(http.MethodPost, "/api/contact", tt.load)
			require.NoError(t, env.Contact.SubmitContact(c))
			require.Equal(t, http.StatusBadRequest, rec.Code)

			var resp Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.NotEmpty(t, resp.Message)
		})
	}

	// Subject stays optional.
	rec, _, c := env.doJSONRequest(http.MethodPost, "/api/contact", map[string]string{
		"name": "A", "email": "a@b.c", "message": "hi",
	})
	require.NoError(t, env.Contact.SubmitContact(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
