package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/api/models"
	"portfolio/api/store"
)

// fakeDocStore is an in-memory DocumentStore for handler tests.
type fakeDocStore struct {
	portfolio *models.Portfolio
	messages  []models.ContactMessage
}

func (f *fakeDocStore) GetPortfolio(ctx context.Context) (*models.Portfolio, error) {
	if f.portfolio == nil {
		return nil, store.ErrNotFound
	}
	return f.portfolio, nil
}

func (f *fakeDocStore) ReplacePortfolio(ctx context.Context, portfolio *models.Portfolio) error {
	portfolio.UpdatedAt = time.Now().UTC()
	f.portfolio = portfolio
	return nil
}

func (f *fakeDocStore) CreateContactMessage(ctx context.Context, msg models.ContactMessage) error {
	f.messages = append(f.messages, msg)
	return nil
}

func (f *fakeDocStore) ListContactMessages(ctx context.Context, limit int) ([]models.ContactMessage, error) {
	if len(f.messages) > limit {
		return f.messages[:limit], nil
	}
	return f.messages, nil
}

func (f *fakeDocStore) MarkMessageRead(ctx context.Context, id string) error {
	for i := range f.messages {
		if f.messages[i].ID == id {
			f.messages[i].Read = true
			return nil
		}
	}
	return store.ErrNotFound
}

func newPortfolioRouter(f *fakeDocStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewPortfolioHandlers(f)

	r := gin.New()
	r.GET("/api/portfolio", h.GetPortfolio)
	r.PUT("/api/portfolio", h.UpdatePortfolio)
	r.POST("/api/contact", h.CreateContactMessage)
	r.GET("/api/contact/messages", h.GetContactMessages)
	r.PUT("/api/contact/messages/:id/read", h.MarkMessageRead)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetPortfolio_NotFoundBeforeSeed(t *testing.T) {
	r := newPortfolioRouter(&fakeDocStore{})

	w := doJSON(t, r, http.MethodGet, "/api/portfolio", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdatePortfolio_ReplaceThenGet(t *testing.T) {
	f := &fakeDocStore{}
	r := newPortfolioRouter(f)

	body := `{
		"personal": {"name": "Jane Doe", "email": "jane@example.com"},
		"skills": {"technical": [], "tools": [], "soft": []},
		"contact": {"email": "jane@example.com"}
	}`
	w := doJSON(t, r, http.MethodPut, "/api/portfolio", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NotNil(t, f.portfolio)
	firstUpdate := f.portfolio.UpdatedAt

	w = doJSON(t, r, http.MethodGet, "/api/portfolio", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Portfolio
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Jane Doe", got.Personal.Name)
	assert.False(t, got.UpdatedAt.Before(firstUpdate))
}

func TestUpdatePortfolio_MissingRequiredNested(t *testing.T) {
	r := newPortfolioRouter(&fakeDocStore{})

	// No personal/contact blocks at all.
	w := doJSON(t, r, http.MethodPut, "/api/portfolio", `{"skills": {}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateContactMessage_StoresTrimmedUnread(t *testing.T) {
	f := &fakeDocStore{}
	r := newPortfolioRouter(f)

	body := `{"name": "  Jane Doe  ", "email": " jane@example.com ", "subject": " Hi ", "message": " Hello there "}`
	w := doJSON(t, r, http.MethodPost, "/api/contact", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Message sent successfully", resp["message"])
	assert.NotEmpty(t, resp["id"])

	require.Len(t, f.messages, 1)
	msg := f.messages[0]
	assert.Equal(t, "Jane Doe", msg.Name)
	assert.Equal(t, "jane@example.com", msg.Email)
	assert.Equal(t, "Hi", msg.Subject)
	assert.Equal(t, "Hello there", msg.Message)
	assert.False(t, msg.Read)
	assert.False(t, msg.CreatedAt.IsZero())
}

func TestCreateContactMessage_RejectsBadEmail(t *testing.T) {
	f := &fakeDocStore{}
	r := newPortfolioRouter(f)

	body := `{"name": "Jane", "email": "not-an-email", "subject": "Hi", "message": "Hello"}`
	w := doJSON(t, r, http.MethodPost, "/api/contact", body)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "email", resp["field"])

	// Rejected before persistence.
	assert.Empty(t, f.messages)
}

func TestCreateContactMessage_RejectsOverlongName(t *testing.T) {
	f := &fakeDocStore{}
	r := newPortfolioRouter(f)

	body := `{"name": "` + strings.Repeat("a", 101) + `", "email": "a@b.c", "subject": "Hi", "message": "Hello"}`
	w := doJSON(t, r, http.MethodPost, "/api/contact", body)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Empty(t, f.messages)
}

func TestMarkMessageRead_UnknownIDIs404(t *testing.T) {
	f := &fakeDocStore{}
	r := newPortfolioRouter(f)

	w := doJSON(t, r, http.MethodPut, "/api/contact/messages/nope/read", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, f.messages)
}

func TestMarkMessageRead_FlipsFlagIdempotently(t *testing.T) {
	f := &fakeDocStore{messages: []models.ContactMessage{{ID: "m-1"}}}
	r := newPortfolioRouter(f)

	w := doJSON(t, r, http.MethodPut, "/api/contact/messages/m-1/read", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, f.messages[0].Read)

	w = doJSON(t, r, http.MethodPut, "/api/contact/messages/m-1/read", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, f.messages[0].Read)
}

func TestGetContactMessages_ReturnsList(t *testing.T) {
	f := &fakeDocStore{messages: []models.ContactMessage{
		{ID: "m-2", Name: "B", Message: "later"},
		{ID: "m-1", Name: "A", Message: "earlier"},
	}}
	r := newPortfolioRouter(f)

	w := doJSON(t, r, http.MethodGet, "/api/contact/messages", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got []models.ContactMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "m-2", got[0].ID)
}
