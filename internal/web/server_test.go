package web

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kayan-consulting/kayan/internal/catalog"
	"github.com/kayan-consulting/kayan/internal/i18n"
	"github.com/kayan-consulting/kayan/internal/models"
)

type fakeReplier struct {
	mu      sync.Mutex
	prompts []string
	langs   []i18n.Language
	reply   string
	release chan struct{}
}

func (f *fakeReplier) Reply(_ context.Context, message string, lang i18n.Language) string {
	f.mu.Lock()
	f.prompts = append(f.prompts, message)
	f.langs = append(f.langs, lang)
	f.mu.Unlock()
	if f.release != nil {
		<-f.release
	}
	return f.reply
}

func (f *fakeReplier) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}

type testEnv struct {
	server  *Server
	http    *httptest.Server
	client  *http.Client
	replier *fakeReplier
	texts   *i18n.Table
}

func newTestEnv(t *testing.T, replier *fakeReplier) *testEnv {
	t.Helper()
	texts, err := i18n.Default()
	require.NoError(t, err)
	services, err := catalog.Default()
	require.NoError(t, err)

	s := New(Options{
		SessionTTL:      time.Hour,
		SweepInterval:   time.Minute,
		DefaultLanguage: i18n.Arabic,
		Phone:           "+966 55 123 4567",
		Texts:           texts,
		Services:        services,
		Replier:         replier,
		Now:             func() time.Time { return time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC) },
	})
	hs := httptest.NewServer(s.Handler())
	t.Cleanup(hs.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &testEnv{server: s, http: hs, client: &http.Client{Jar: jar}, replier: replier, texts: texts}
}

func (e *testEnv) get(t *testing.T, header map[string]string) string {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, e.http.URL+"/", nil)
	require.NoError(t, err)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	resp, err := e.client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func (e *testEnv) post(t *testing.T, path string, form url.Values) string {
	t.Helper()
	resp, err := e.client.PostForm(e.http.URL+path, form)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode, path)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestPageDefaultsToArabic(t *testing.T) {
	e := newTestEnv(t, &fakeReplier{})
	body := e.get(t, nil)

	assert.Contains(t, body, `<html lang="ar" dir="rtl">`)
	assert.Contains(t, body, e.texts.T("heroTitle", i18n.Arabic))
	assert.Contains(t, body, "© 2026")
}

func TestPageHonoursAcceptLanguage(t *testing.T) {
	e := newTestEnv(t, &fakeReplier{})
	body := e.get(t, map[string]string{"Accept-Language": "en-US,en;q=0.9"})

	assert.Contains(t, body, `<html lang="en" dir="ltr">`)
	assert.Contains(t, body, e.texts.T("heroTitle", i18n.English))
}

func TestLanguageToggleSticksToSession(t *testing.T) {
	e := newTestEnv(t, &fakeReplier{})
	e.get(t, nil)

	body := e.post(t, "/lang", nil)
	assert.Contains(t, body, `dir="ltr"`)
	body = e.post(t, "/lang", url.Values{"lang": {"ar"}})
	assert.Contains(t, body, `dir="rtl"`)
	assert.Equal(t, 1, e.server.Sessions().Len())
}

func TestReadingThePageCreatesNoSession(t *testing.T) {
	e := newTestEnv(t, &fakeReplier{})
	for i := 0; i < 3; i++ {
		e.get(t, nil)
	}
	assert.Zero(t, e.server.Sessions().Len())

	u, err := url.Parse(e.http.URL)
	require.NoError(t, err)
	assert.Empty(t, e.client.Jar.Cookies(u))

	e.post(t, "/menu", nil)
	assert.Equal(t, 1, e.server.Sessions().Len())
	e.get(t, nil)
	assert.Equal(t, 1, e.server.Sessions().Len())
}

func TestServiceDetailsToggle(t *testing.T) {
	e := newTestEnv(t, &fakeReplier{})
	e.post(t, "/lang", url.Values{"lang": {"en"}})

	body := e.post(t, "/services/pricing", nil)
	assert.Contains(t, body, "Competitor analysis")
	assert.Contains(t, body, e.texts.T("closeDetails", i18n.English))

	body = e.post(t, "/services/pricing", nil)
	assert.NotContains(t, body, "Competitor analysis")

	resp, err := e.client.PostForm(e.http.URL+"/services/unknown", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestChatRoundTrip(t *testing.T) {
	replier := &fakeReplier{reply: "نعم، **لدينا** فريق مدرب.", release: make(chan struct{})}
	e := newTestEnv(t, replier)

	body := e.post(t, "/chat/open", nil)
	assert.Contains(t, body, e.texts.T("suggestionCallCenterLabel", i18n.Arabic))

	body = e.post(t, "/chat/suggest/2", nil)
	assert.Contains(t, body, `value="`+e.texts.T("suggestionCallCenterPrompt", i18n.Arabic)+`"`)

	body = e.post(t, "/chat", url.Values{"message": {"  هل لديكم خدمة كول سنتر؟  "}})
	assert.Contains(t, body, `http-equiv="refresh"`)
	assert.Contains(t, body, "هل لديكم خدمة كول سنتر؟")
	assert.NotContains(t, body, e.texts.T("suggestionCallCenterLabel", i18n.Arabic))

	// A second submission while waiting is refused.
	e.post(t, "/chat", url.Values{"message": {"again"}})
	require.Eventually(t, func() bool { return replier.calls() == 1 }, time.Second, 5*time.Millisecond)

	close(replier.release)
	require.Eventually(t, func() bool {
		return !strings.Contains(e.get(t, nil), `http-equiv="refresh"`)
	}, 2*time.Second, 10*time.Millisecond)

	body = e.get(t, nil)
	assert.Contains(t, body, "<strong>لدينا</strong>")
	assert.Equal(t, []string{"هل لديكم خدمة كول سنتر؟"}, replier.prompts)
	assert.Equal(t, []i18n.Language{i18n.Arabic}, replier.langs)
}

func TestBlankChatSubmissionIgnored(t *testing.T) {
	replier := &fakeReplier{reply: "x"}
	e := newTestEnv(t, replier)
	e.post(t, "/chat/open", nil)

	body := e.post(t, "/chat", url.Values{"message": {"   "}})
	assert.NotContains(t, body, `http-equiv="refresh"`)
	assert.Zero(t, replier.calls())
}

func TestReplyWhileClosedIsUnread(t *testing.T) {
	replier := &fakeReplier{reply: "Happy to help.", release: make(chan struct{})}
	e := newTestEnv(t, replier)
	e.post(t, "/lang", url.Values{"lang": {"en"}})
	e.post(t, "/chat/open", nil)
	e.post(t, "/chat", url.Values{"message": {"hello"}})
	e.post(t, "/chat/close", nil)

	close(replier.release)
	require.Eventually(t, func() bool {
		return strings.Contains(e.get(t, nil), "1 "+e.texts.T("unreadReplies", i18n.English))
	}, 2*time.Second, 10*time.Millisecond)

	body := e.post(t, "/chat/open", nil)
	assert.Contains(t, body, "Happy to help.")
	assert.NotContains(t, body, e.texts.T("unreadReplies", i18n.English)+"</span>")
}

func TestAssistantHTMLIsSanitised(t *testing.T) {
	html := renderReply("hi <script>alert(1)</script> [x](javascript:alert(1))")
	assert.NotContains(t, string(html), "<script>")
	assert.NotContains(t, string(html), "javascript:")
}

func TestUserTextIsEscaped(t *testing.T) {
	replier := &fakeReplier{reply: "ok"}
	e := newTestEnv(t, replier)
	e.post(t, "/chat/open", nil)
	body := e.post(t, "/chat", url.Values{"message": {"<b>bold</b>"}})
	assert.Contains(t, body, "&lt;b&gt;bold&lt;/b&gt;")
}

func TestAPIChat(t *testing.T) {
	replier := &fakeReplier{reply: "We reduce commissions."}
	e := newTestEnv(t, replier)

	post := func(body string) (*http.Response, map[string]string) {
		resp, err := http.Post(e.http.URL+"/api/chat", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		defer resp.Body.Close()
		var out map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		return resp, out
	}

	resp, out := post(`{"message":"commissions?","lang":"en"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "We reduce commissions.", out["reply"])
	assert.Equal(t, []i18n.Language{i18n.English}, replier.langs)

	resp, _ = post(`{"message":"   "}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = post(`{"message":"hi","lang":"fr"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = post(`not json`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = post(`{"message":"مرحبا"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, i18n.Arabic, replier.langs[len(replier.langs)-1])
}

func TestHealthz(t *testing.T) {
	e := newTestEnv(t, &fakeReplier{})
	resp, err := http.Get(e.http.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSweepRemovesIdleSessions(t *testing.T) {
	store := NewSessionStore(time.Minute, i18n.English)
	rec := httptest.NewRecorder()
	sess := store.Get(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NotNil(t, sess)
	require.Len(t, rec.Result().Cookies(), 1)

	assert.Zero(t, store.Sweep(time.Now()))
	assert.Equal(t, 1, store.Sweep(time.Now().Add(2*time.Minute)))
	assert.Zero(t, store.Len())
}

func TestSessionReusedByCookie(t *testing.T) {
	store := NewSessionStore(time.Minute, i18n.English)
	rec := httptest.NewRecorder()
	first := store.Get(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	first.Update(func(m *models.AppModel) { m.MenuOpen = true })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(rec.Result().Cookies()[0])
	second := store.Get(httptest.NewRecorder(), req)
	assert.Same(t, first, second)
	assert.True(t, second.Snapshot().MenuOpen)
}

func TestBuildPageOffersSuggestionsOnlyWhenEmpty(t *testing.T) {
	texts, err := i18n.Default()
	require.NoError(t, err)
	services, err := catalog.Default()
	require.NoError(t, err)

	m := models.NewAppModel(i18n.English)
	d := buildPage(m, texts, services, "1", 2026)
	assert.Len(t, d.Suggestions, 2)
	assert.Len(t, d.Services, services.Len())
	assert.Equal(t, "ltr", d.Dir)

	m.Messages = append(m.Messages, models.Message{Role: models.User, Text: "hi"})
	d = buildPage(m, texts, services, "1", 2026)
	assert.Empty(t, d.Suggestions)
}
