package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"churchapi/internal/database"
	"churchapi/internal/models"
	"churchapi/internal/repository"
	"churchapi/internal/security"
	"churchapi/internal/service"
)

type apiEnv struct {
	server *httptest.Server
	users  *service.UserService
	db     *database.DB

	mu  sync.Mutex
	now time.Time
}

func (e *apiEnv) clock() time.Time {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.now
}

func (e *apiEnv) advance(d time.Duration) {
	e.mu.Lock()
	e.now = e.now.Add(d)
	e.mu.Unlock()
}

type apiOption func(*RouterOptions)

func newAPI(t *testing.T, options ...apiOption) *apiEnv {
	t.Helper()
	captureLogs(t)

	db, err := database.Initialize(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.RunMigrations(context.Background(), ""))

	env := &apiEnv{db: db, now: time.Now()}
	tokens := security.NewTokenService("test-secret").WithClock(env.clock)

	userRepo := repository.NewUserRepository(db)
	childRepo := repository.NewChildRepository(db)
	eventRepo := repository.NewEventRepository(db)

	env.users = service.NewUserService(userRepo)
	svc := Services{
		Auth:          service.NewAuthService(userRepo, security.SHA256Hasher{}, tokens, nil),
		Users:         env.users,
		Children:      service.NewChildService(childRepo),
		Events:        service.NewEventService(eventRepo),
		Checkins:      service.NewCheckinService(repository.NewCheckinRepository(db), childRepo, eventRepo),
		Announcements: service.NewAnnouncementService(repository.NewAnnouncementRepository(db)),
		Prayers:       service.NewPrayerService(repository.NewPrayerRepository(db)),
		Donations:     service.NewDonationService(repository.NewDonationRepository(db)),
	}

	opts := RouterOptions{CORSAllowedOrigins: []string{"*"}}
	for _, o := range options {
		o(&opts)
	}

	env.server = httptest.NewServer(NewRouter(svc, opts))
	t.Cleanup(env.server.Close)
	return env
}

func (e *apiEnv) do(t *testing.T, method, path, token string, body interface{}) (int, []byte) {
	t.Helper()
	resp, data := e.doWithHeaders(t, method, path, token, body, nil)
	return resp.StatusCode, data
}

func (e *apiEnv) doWithHeaders(t *testing.T, method, path, token string, body interface{}, headers map[string]string) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, e.server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

// signup registers and logs in, returning the user and an access token
func (e *apiEnv) signup(t *testing.T, name, email string) (models.User, string) {
	t.Helper()

	status, body := e.do(t, http.MethodPost, "/auth/register", "", map[string]string{
		"name": name, "email": email, "password": "1234",
	})
	require.Equal(t, http.StatusCreated, status, string(body))
	var user models.User
	require.NoError(t, json.Unmarshal(body, &user))

	return user, e.login(t, email, "1234")
}

func (e *apiEnv) login(t *testing.T, email, password string) string {
	t.Helper()

	status, body := e.do(t, http.MethodPost, "/auth/login", "", map[string]string{"email": email, "password": password})
	require.Equal(t, http.StatusOK, status, string(body))
	var token service.AccessToken
	require.NoError(t, json.Unmarshal(body, &token))
	require.Equal(t, "bearer", token.TokenType)
	return token.AccessToken
}

// admin creates an account, promotes it and returns a fresh token carrying the role
func (e *apiEnv) admin(t *testing.T) string {
	t.Helper()

	_, _ = e.signup(t, "Pastor", "pastor@example.com")
	_, err := e.users.SetRole(context.Background(), "pastor@example.com", models.RoleAdmin)
	require.NoError(t, err)
	return e.login(t, "pastor@example.com", "1234")
}

func decode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(body, &v), string(body))
	return v
}

func TestHealth(t *testing.T) {
	api := newAPI(t)

	status, body := api.do(t, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"msg":"Church API - Online"}`, string(body))
}

func TestRegisterLoginAndChildren(t *testing.T) {
	api := newAPI(t)
	user, token := api.signup(t, "Ana", "ana@example.com")
	assert.Equal(t, models.RoleMember, user.Role)
	assert.NotEmpty(t, user.Password, "hash is exposed unless hidden by configuration")

	status, body := api.do(t, http.MethodPost, "/children", token, map[string]string{"name": "Lia", "birthdate": "2016-04-02"})
	require.Equal(t, http.StatusCreated, status, string(body))
	child := decode[models.Child](t, body)
	assert.NotEmpty(t, child.ID)
	assert.Equal(t, user.ID, child.UserID)

	status, body = api.do(t, http.MethodGet, "/children/me", token, nil)
	require.Equal(t, http.StatusOK, status)
	children := decode[[]models.Child](t, body)
	require.Len(t, children, 1)
	assert.Equal(t, child, children[0])

	status, body = api.do(t, http.MethodPut, "/children/"+child.ID, token, map[string]string{"name": "Lia Maria", "birthdate": "2016-04-02"})
	require.Equal(t, http.StatusOK, status, string(body))
	assert.Equal(t, "Lia Maria", decode[models.Child](t, body).Name)

	status, body = api.do(t, http.MethodDelete, "/children/"+child.ID, token, nil)
	assert.Equal(t, http.StatusNoContent, status)
	assert.Empty(t, body)

	status, body = api.do(t, http.MethodGet, "/children/me", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(body))
}

func TestDuplicateRegistration(t *testing.T) {
	api := newAPI(t)
	api.signup(t, "Ana", "ana@example.com")

	status, body := api.do(t, http.MethodPost, "/auth/register", "", map[string]string{
		"name": "Ana Two", "email": "ana@example.com", "password": "5678",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{"error":"Email already registered"}`, string(body))
}

func TestLoginFailures(t *testing.T) {
	api := newAPI(t)
	api.signup(t, "Ana", "ana@example.com")

	status, _ := api.do(t, http.MethodPost, "/auth/login", "", map[string]string{"email": "ana@example.com", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = api.do(t, http.MethodPost, "/auth/login", "", map[string]string{"email": "not-an-email", "password": "1234"})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = api.do(t, http.MethodPost, "/auth/login", "", "not json")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestTokenExpiresAfterOneHour(t *testing.T) {
	api := newAPI(t)
	_, token := api.signup(t, "Ana", "ana@example.com")

	api.advance(59 * time.Minute)
	status, _ := api.do(t, http.MethodGet, "/children/me", token, nil)
	assert.Equal(t, http.StatusOK, status)

	api.advance(2 * time.Minute)
	status, body := api.do(t, http.MethodGet, "/children/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.JSONEq(t, `{"error":"Invalid or expired token"}`, string(body))
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	api := newAPI(t)

	for _, path := range []string{"/children/me", "/events", "/announcements", "/donations/me", "/users/me"} {
		status, _ := api.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, status, path)
	}

	status, _ := api.do(t, http.MethodGet, "/events", "not.a.token", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestMemberCannotCreateEvents(t *testing.T) {
	api := newAPI(t)
	_, token := api.signup(t, "Ana", "ana@example.com")

	valid := map[string]string{"title": "Culto", "date": "2025-01-05", "category": "worship", "description": "Sunday"}
	for _, body := range []interface{}{valid, map[string]string{"title": "x"}, "{broken"} {
		status, resp := api.do(t, http.MethodPost, "/events", token, body)
		assert.Equal(t, http.StatusForbidden, status, string(resp))
	}

	status, _ := api.do(t, http.MethodGet, "/events", token, nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestAdminManagesEvents(t *testing.T) {
	api := newAPI(t)
	adminToken := api.admin(t)
	_, memberToken := api.signup(t, "Ana", "ana@example.com")

	status, body := api.do(t, http.MethodPost, "/events", adminToken, map[string]string{
		"title": "Culto", "date": "2025-01-05", "category": "worship", "description": "Sunday",
	})
	require.Equal(t, http.StatusCreated, status, string(body))
	event := decode[models.Event](t, body)

	status, _ = api.do(t, http.MethodPost, "/events", adminToken, map[string]string{"title": "x", "date": "2025-01-05"})
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = api.do(t, http.MethodGet, "/events?category=worship&date=2025-01-01", memberToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[[]models.Event](t, body), 1)

	status, body = api.do(t, http.MethodGet, "/events?category=youth", memberToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(body))

	status, _ = api.do(t, http.MethodPut, "/events/"+event.ID, memberToken, map[string]string{})
	assert.Equal(t, http.StatusForbidden, status)
	status, _ = api.do(t, http.MethodDelete, "/events/"+event.ID, memberToken, nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = api.do(t, http.MethodDelete, "/events/"+event.ID, adminToken, nil)
	assert.Equal(t, http.StatusNoContent, status)
	status, _ = api.do(t, http.MethodGet, "/events/"+event.ID, memberToken, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestOtherUsersChildIsNotFound(t *testing.T) {
	api := newAPI(t)
	_, anaToken := api.signup(t, "Ana", "ana@example.com")
	_, biaToken := api.signup(t, "Bia", "bia@example.com")

	status, body := api.do(t, http.MethodPost, "/children", anaToken, map[string]string{"name": "Lia", "birthdate": "2016-04-02"})
	require.Equal(t, http.StatusCreated, status)
	child := decode[models.Child](t, body)

	status, body = api.do(t, http.MethodGet, "/children/"+child.ID, biaToken, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.JSONEq(t, `{"error":"child not found"}`, string(body))

	status, _ = api.do(t, http.MethodDelete, "/children/"+child.ID, biaToken, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = api.do(t, http.MethodGet, "/checkins/by_child/"+child.ID, biaToken, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestCheckinFlow(t *testing.T) {
	api := newAPI(t)
	adminToken := api.admin(t)
	_, token := api.signup(t, "Ana", "ana@example.com")

	_, body := api.do(t, http.MethodPost, "/events", adminToken, map[string]string{
		"title": "Culto", "date": "2025-01-05T10:00:00Z", "category": "worship", "description": "Sunday",
	})
	event := decode[models.Event](t, body)
	_, body = api.do(t, http.MethodPost, "/children", token, map[string]string{"name": "Lia", "birthdate": "2016-04-02"})
	child := decode[models.Child](t, body)

	status, body := api.do(t, http.MethodPost, "/checkins", token, map[string]string{"child_id": child.ID, "event_id": event.ID})
	require.Equal(t, http.StatusCreated, status, string(body))
	checkin := decode[models.Checkin](t, body)
	assert.NotEmpty(t, checkin.Timestamp)

	status, body = api.do(t, http.MethodGet, "/checkins/by_child/"+child.ID, token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[[]models.Checkin](t, body), 1)

	status, _ = api.do(t, http.MethodGet, "/checkins/by_event/"+event.ID, token, nil)
	assert.Equal(t, http.StatusForbidden, status)
	status, body = api.do(t, http.MethodGet, "/checkins/by_event/"+event.ID, adminToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[[]models.Checkin](t, body), 1)

	status, _ = api.do(t, http.MethodPost, "/checkins", token, map[string]string{"child_id": "nope", "event_id": event.ID})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestAnnouncementsAndPrayers(t *testing.T) {
	api := newAPI(t)
	adminToken := api.admin(t)
	_, token := api.signup(t, "Ana", "ana@example.com")

	status, _ := api.do(t, http.MethodPost, "/announcements", token, map[string]string{"title": "Bazar", "description": "Saturday"})
	assert.Equal(t, http.StatusForbidden, status)
	status, body := api.do(t, http.MethodPost, "/announcements", adminToken, map[string]string{"title": "Bazar", "description": "Saturday"})
	require.Equal(t, http.StatusCreated, status)
	announcement := decode[models.Announcement](t, body)

	status, body = api.do(t, http.MethodGet, "/announcements/"+announcement.ID, token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, announcement, decode[models.Announcement](t, body))

	status, body = api.do(t, http.MethodPost, "/prayers", token, map[string]interface{}{"content": "Pela familia", "anonymous": true})
	require.Equal(t, http.StatusCreated, status)
	prayer := decode[map[string]interface{}](t, body)
	assert.Nil(t, prayer["user_id"])
	assert.Equal(t, "pending", prayer["status"])

	status, _ = api.do(t, http.MethodGet, "/prayers", token, nil)
	assert.Equal(t, http.StatusForbidden, status)
	status, body = api.do(t, http.MethodGet, "/prayers", adminToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[[]models.Prayer](t, body), 1)

	id := prayer["id"].(string)
	status, _ = api.do(t, http.MethodPatch, "/prayers/"+id, token, map[string]string{"status": "answered"})
	assert.Equal(t, http.StatusForbidden, status)
	status, _ = api.do(t, http.MethodPatch, "/prayers/"+id, adminToken, map[string]string{"status": "done"})
	assert.Equal(t, http.StatusBadRequest, status)
	status, body = api.do(t, http.MethodPatch, "/prayers/"+id, adminToken, map[string]string{"status": "answered"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "answered", decode[models.Prayer](t, body).Status)
}

func TestDonations(t *testing.T) {
	api := newAPI(t)
	adminToken := api.admin(t)
	_, token := api.signup(t, "Ana", "ana@example.com")

	for _, bad := range []interface{}{
		map[string]interface{}{"amount": 0, "category": "tithe"},
		map[string]interface{}{"amount": -5, "category": "tithe"},
		map[string]interface{}{"category": "tithe"},
		map[string]interface{}{"amount": "10", "category": "tithe"},
	} {
		status, body := api.do(t, http.MethodPost, "/donations", token, bad)
		assert.Equal(t, http.StatusBadRequest, status, string(body))
	}

	status, body := api.do(t, http.MethodGet, "/donations/me", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(body), "rejected donations must not be written")

	status, body = api.do(t, http.MethodPost, "/donations", token, map[string]interface{}{"amount": 42.5, "category": "tithe"})
	require.Equal(t, http.StatusCreated, status, string(body))
	assert.Equal(t, 42.5, decode[models.Donation](t, body).Amount)

	status, _ = api.do(t, http.MethodGet, "/donations", token, nil)
	assert.Equal(t, http.StatusForbidden, status)
	status, body = api.do(t, http.MethodGet, "/donations", adminToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[[]models.Donation](t, body), 1)
}

func TestUsers(t *testing.T) {
	api := newAPI(t)
	adminToken := api.admin(t)
	user, token := api.signup(t, "Ana", "ana@example.com")

	status, body := api.do(t, http.MethodGet, "/users/me", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, user, decode[models.User](t, body))

	status, body = api.do(t, http.MethodPut, "/users/me", token, map[string]string{"name": "Ana Souza", "email": "pastor@example.com"})
	assert.Equal(t, http.StatusBadRequest, status, string(body))
	status, body = api.do(t, http.MethodPut, "/users/me", token, map[string]string{"name": "Ana Souza", "email": "ana.souza@example.com"})
	require.Equal(t, http.StatusOK, status, string(body))
	assert.Equal(t, "Ana Souza", decode[models.User](t, body).Name)

	status, _ = api.do(t, http.MethodGet, "/users", token, nil)
	assert.Equal(t, http.StatusForbidden, status)
	status, body = api.do(t, http.MethodGet, "/users", adminToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[[]models.User](t, body), 2)
}

func TestHidePasswordHash(t *testing.T) {
	api := newAPI(t, func(o *RouterOptions) { o.HidePasswordHash = true })
	user, token := api.signup(t, "Ana", "ana@example.com")
	assert.Empty(t, user.Password)

	_, body := api.do(t, http.MethodGet, "/users/me", token, nil)
	assert.NotContains(t, string(body), "password")
}

func TestDeactivatedAccountIsRejected(t *testing.T) {
	api := newAPI(t)
	user, token := api.signup(t, "Ana", "ana@example.com")

	_, err := api.db.ExecContext(context.Background(), "UPDATE users SET is_active = ? WHERE id = ?", false, user.ID)
	require.NoError(t, err)

	status, _ := api.do(t, http.MethodGet, "/users/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestAuthRateLimit(t *testing.T) {
	limiter := security.NewRateLimiter(2, time.Minute)
	t.Cleanup(limiter.Stop)
	api := newAPI(t, func(o *RouterOptions) { o.AuthRateLimiter = limiter })

	creds := map[string]string{"email": "ghost@example.com", "password": "1234"}
	for i := 0; i < 2; i++ {
		status, _ := api.do(t, http.MethodPost, "/auth/login", "", creds)
		assert.Equal(t, http.StatusUnauthorized, status)
	}
	status, _ := api.do(t, http.MethodPost, "/auth/login", "", creds)
	assert.Equal(t, http.StatusTooManyRequests, status)

	// other routes are not throttled
	status, _ = api.do(t, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestUnknownRouteIsJSON(t *testing.T) {
	api := newAPI(t)

	status, body := api.do(t, http.MethodGet, "/nowhere", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.JSONEq(t, `{"error":"Not found"}`, string(body))
}

func TestCORSHeaders(t *testing.T) {
	api := newAPI(t, func(o *RouterOptions) { o.CORSAllowedOrigins = []string{"https://app.church.example"} })

	resp, _ := api.doWithHeaders(t, http.MethodGet, "/", "", nil, map[string]string{"Origin": "https://app.church.example"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "https://app.church.example", resp.Header.Get("Access-Control-Allow-Origin"))

	resp, _ = api.doWithHeaders(t, http.MethodGet, "/", "", nil, map[string]string{"Origin": "https://evil.example"})
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestAuthRateLimitIgnoresForwardedFor(t *testing.T) {
	limiter := security.NewRateLimiter(2, time.Minute)
	t.Cleanup(limiter.Stop)
	api := newAPI(t, func(o *RouterOptions) { o.AuthRateLimiter = limiter })

	creds := map[string]string{"email": "ghost@example.com", "password": "1234"}
	passed := 0
	for i := 0; i < 20; i++ {
		resp, _ := api.doWithHeaders(t, http.MethodPost, "/auth/login", "", creds,
			map[string]string{"X-Forwarded-For": fmt.Sprintf("198.51.100.%d", i)})
		if resp.StatusCode != http.StatusTooManyRequests {
			passed++
		}
	}
	assert.Equal(t, 2, passed)
}

func TestAuthRateLimitBehindTrustedProxy(t *testing.T) {
	limiter := security.NewRateLimiter(1, time.Minute)
	t.Cleanup(limiter.Stop)
	api := newAPI(t, func(o *RouterOptions) {
		o.AuthRateLimiter = limiter
		o.TrustProxyHeaders = true
	})

	creds := map[string]string{"email": "ghost@example.com", "password": "1234"}
	first := map[string]string{"X-Forwarded-For": "198.51.100.1"}
	second := map[string]string{"X-Forwarded-For": "198.51.100.2"}

	resp, _ := api.doWithHeaders(t, http.MethodPost, "/auth/login", "", creds, first)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp, _ = api.doWithHeaders(t, http.MethodPost, "/auth/login", "", creds, first)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	resp, _ = api.doWithHeaders(t, http.MethodPost, "/auth/login", "", creds, second)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestEventDateFilterAcrossOffsets(t *testing.T) {
	api := newAPI(t)
	adminToken := api.admin(t)

	for _, date := range []string{"2025-03-01", "2025-03-01T01:00:00+05:00"} {
		status, body := api.do(t, http.MethodPost, "/events", adminToken, map[string]string{
			"title": "Culto " + date, "date": date, "category": "worship", "description": "Service",
		})
		require.Equal(t, http.StatusCreated, status, string(body))
	}

	status, body := api.do(t, http.MethodGet, "/events/?date=2025-03-01T00:00:00Z", adminToken, nil)
	require.Equal(t, http.StatusOK, status)
	events := decode[[]models.Event](t, body)
	require.Len(t, events, 1)
	assert.Equal(t, "Culto 2025-03-01", events[0].Title)
	assert.Equal(t, "2025-03-01T00:00:00Z", events[0].Date)
}

func TestOversizedFieldsAreRejected(t *testing.T) {
	api := newAPI(t)
	adminToken := api.admin(t)
	_, token := api.signup(t, "Ana", "ana@example.com")

	status, _ := api.do(t, http.MethodPost, "/auth/register", "", map[string]string{
		"name": strings.Repeat("n", 101), "email": "long@example.com", "password": "1234",
	})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = api.do(t, http.MethodPost, "/events", adminToken, map[string]string{
		"title": strings.Repeat("t", 101), "date": "2025-03-01", "category": "worship", "description": "Service",
	})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = api.do(t, http.MethodPost, "/donations", token, map[string]interface{}{"amount": 0.001, "category": "tithe"})
	assert.Equal(t, http.StatusBadRequest, status)

	status, body := api.do(t, http.MethodGet, "/donations/me", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(body))
}
