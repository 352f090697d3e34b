package ergani

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apodiktos/go-ergani-client/ergani/api"
	"github.com/apodiktos/go-ergani-client/ergani/model"
)

type fakeErgani struct {
	authCalls   atomic.Int32
	submitCalls atomic.Int32

	lastAuthHeader string
	lastBody       []byte

	submitStatus int
	submitBody   string
}

func newFakeErgani(t *testing.T, status int, body string) (*fakeErgani, *httptest.Server) {
	t.Helper()

	f := &fakeErgani{submitStatus: status, submitBody: body}

	mux := http.NewServeMux()
	mux.HandleFunc("/Authentication", func(w http.ResponseWriter, r *http.Request) {
		f.authCalls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"accessToken":"T"}`))
	})
	mux.HandleFunc("/Documents/", func(w http.ResponseWriter, r *http.Request) {
		f.submitCalls.Add(1)
		f.lastAuthHeader = r.Header.Get("Authorization")

		var err error
		f.lastBody, err = json.Marshal(json.RawMessage(readAll(t, r)))
		require.NoError(t, err)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(f.submitStatus)
		if f.submitBody != "" {
			_, _ = w.Write([]byte(f.submitBody))
		}
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return f, srv
}

func readAll(t *testing.T, r *http.Request) []byte {
	t.Helper()

	var raw json.RawMessage
	require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
	return raw
}

func sampleWorkCardBatch() model.CompanyWorkCard {
	return model.CompanyWorkCard{
		EmployerTaxIdentificationNumber: "999999999",
		BusinessBranchNumber:            0,
		CardDetails: []model.WorkCard{
			{
				EmployeeTaxIdentificationNumber: "123456789",
				EmployeeLastName:                "Papadopoulos",
				EmployeeFirstName:               "Giorgos",
				MovementType:                    model.Arrival,
				SubmissionDate:                  time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
				MovementDatetime:                time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC),
			},
		},
	}
}

func TestSubmitWorkCard(t *testing.T) {
	fake, srv := newFakeErgani(t, http.StatusOK,
		`[{"id":"1","protocol":"P1","submitDate":"15/03/2024 10:30"}]`)

	client := New("user", "pass", WithBaseURL(srv.URL))

	results, err := client.SubmitWorkCard(context.Background(), []model.CompanyWorkCard{sampleWorkCardBatch()})
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "1", results[0].SubmissionID)
	assert.Equal(t, "P1", results[0].Protocol)
	assert.Equal(t, time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC), results[0].SubmissionDate)

	assert.Equal(t, "Bearer T", fake.lastAuthHeader)

	var payload map[string]map[string][]map[string]interface{}
	require.NoError(t, json.Unmarshal(fake.lastBody, &payload))
	cards := payload["Cards"]["Card"]
	require.Len(t, cards, 1)
	assert.Equal(t, "123456789", cards[0]["f_afm"])
	assert.Equal(t, "0", cards[0]["f_type"])
}

func TestSubmit_AuthenticatesPerCall(t *testing.T) {
	fake, srv := newFakeErgani(t, http.StatusNoContent, "")

	client := New("user", "pass", WithBaseURL(srv.URL))
	ctx := context.Background()

	_, err := client.SubmitWorkCard(ctx, nil)
	require.NoError(t, err)
	_, err = client.SubmitWorkCard(ctx, nil)
	require.NoError(t, err)

	assert.EqualValues(t, 2, fake.authCalls.Load())
	assert.EqualValues(t, 2, fake.submitCalls.Load())
}

func TestSubmit_TokenCacheAuthenticatesOnce(t *testing.T) {
	fake, srv := newFakeErgani(t, http.StatusNoContent, "")

	client := New("user", "pass", WithBaseURL(srv.URL), WithTokenCache(time.Hour))
	ctx := context.Background()

	_, err := client.SubmitWorkCard(ctx, nil)
	require.NoError(t, err)
	_, err = client.SubmitWorkCard(ctx, nil)
	require.NoError(t, err)

	assert.EqualValues(t, 1, fake.authCalls.Load())
	assert.EqualValues(t, 2, fake.submitCalls.Load())
}

func TestSubmit_NoContent(t *testing.T) {
	_, srv := newFakeErgani(t, http.StatusNoContent, "")

	client := New("user", "pass", WithBaseURL(srv.URL))

	results, err := client.SubmitOvertime(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.NotNil(t, results)
}

func TestSubmit_Unauthorized(t *testing.T) {
	_, srv := newFakeErgani(t, http.StatusUnauthorized, `{"message":"token expired"}`)

	client := New("user", "pass", WithBaseURL(srv.URL))

	_, err := client.SubmitWorkCard(context.Background(), []model.CompanyWorkCard{sampleWorkCardBatch()})

	var authErr *api.AuthenticationError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "token expired", authErr.Message)
	assert.Equal(t, http.StatusUnauthorized, authErr.StatusCode)
}

func TestSubmit_APIError(t *testing.T) {
	_, srv := newFakeErgani(t, http.StatusInternalServerError, `{"message":"boom"}`)

	client := New("user", "pass", WithBaseURL(srv.URL))

	_, err := client.SubmitDailySchedule(context.Background(), []model.CompanyDailySchedule{
		{BusinessBranchNumber: 1},
	})

	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "boom", apiErr.Message)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.NotNil(t, apiErr.Payload)
}

func TestSubmit_BadSubmitDate(t *testing.T) {
	_, srv := newFakeErgani(t, http.StatusOK,
		`[{"id":"1","protocol":"P1","submitDate":"2024-03-15T10:30:00"}]`)

	client := New("user", "pass", WithBaseURL(srv.URL))

	_, err := client.SubmitWeeklySchedule(context.Background(), []model.CompanyWeeklySchedule{
		{BusinessBranchNumber: 1},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "submitDate")
}

func TestSubmit_WrapperKeysPerEndpoint(t *testing.T) {
	fake, srv := newFakeErgani(t, http.StatusNoContent, "")

	client := New("user", "pass", WithBaseURL(srv.URL))
	ctx := context.Background()

	_, err := client.SubmitOvertime(ctx, []model.CompanyOvertime{{BusinessBranchNumber: 1}})
	require.NoError(t, err)

	var payload map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(fake.lastBody, &payload))
	require.Contains(t, payload, "Overtimes")

	_, err = client.SubmitWeeklySchedule(ctx, []model.CompanyWeeklySchedule{{BusinessBranchNumber: 1}})
	require.NoError(t, err)

	require.NoError(t, json.Unmarshal(fake.lastBody, &payload))
	require.Contains(t, payload, "WTOS")
}

func TestEnvironmentBaseURL(t *testing.T) {
	assert.Equal(t, "https://trialeservices.yeka.gr/WebServicesAPI/api", Trial.BaseURL())
	assert.Equal(t, "https://eservices.yeka.gr/WebServicesAPI/api", Production.BaseURL())

	var env Environment
	require.NoError(t, env.UnmarshalText([]byte("production")))
	assert.Equal(t, Production, env)
	require.Error(t, env.UnmarshalText([]byte("staging")))
}
