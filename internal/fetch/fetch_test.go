package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body>Senior Go Engineer</body></html>"))
	}))
	defer server.Close()

	page, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, page.StatusCode)
	assert.Contains(t, page.HTML, "Senior Go Engineer")
	assert.Contains(t, page.ContentType, "text/html")
}

func TestURL_InvalidURL(t *testing.T) {
	_, err := URL(context.Background(), "not a url", nil)
	require.Error(t, err)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Error(), "invalid URL")
}

func TestURL_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	page, err := URL(context.Background(), server.URL, nil)
	require.Error(t, err)
	require.NotNil(t, page)
	assert.Equal(t, http.StatusNotFound, page.StatusCode)
}

func TestURL_CustomHeaders(t *testing.T) {
	var gotAgent, gotCookie string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		gotCookie = r.Header.Get("Cookie")
		_, _ = w.Write([]byte("<html></html>"))
	}))
	defer server.Close()

	opts := DefaultOptions()
	opts.Headers = map[string]string{"Cookie": "session=abc"}
	_, err := URL(context.Background(), server.URL, opts)
	require.NoError(t, err)
	assert.Equal(t, DefaultUserAgent, gotAgent)
	assert.Equal(t, "session=abc", gotCookie)
}

func TestExtractText_PrefersContentSelector(t *testing.T) {
	html := `<html><body>
		<nav>Home | Jobs | About</nav>
		<div class="job-description">Build distributed systems in Go.</div>
		<footer>Copyright</footer>
	</body></html>`

	text, err := ExtractText(html, JobPostingSelectors(), nil)
	require.NoError(t, err)
	assert.Equal(t, "Build distributed systems in Go.", text)
}

func TestExtractText_RemovesNoise(t *testing.T) {
	html := `<html><body><main>
		<p>Design scalable services.</p>
		<form class="application-form">First name: </form>
		<div class="eeo-statement">Equal opportunity employer.</div>
	</main></body></html>`

	text, err := ExtractText(html, []string{"main"}, PlatformNoiseSelectors(PlatformUnknown))
	require.NoError(t, err)
	assert.Contains(t, text, "Design scalable services.")
	assert.NotContains(t, text, "First name")
	assert.NotContains(t, text, "Equal opportunity")
}

func TestExtractText_FallsBackToBody(t *testing.T) {
	html := `<html><body><p>Plain posting text.</p></body></html>`

	text, err := ExtractText(html, []string{".does-not-exist"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Plain posting text.", text)
}

func TestPostingText_StaticPage(t *testing.T) {
	body := "<html><body><div class='job-description'>" +
		strings.Repeat("Own the full lifecycle of backend services. ", 20) +
		"</div></body></html>"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	opts := DefaultOptions()
	opts.NoBrowser = true
	page, err := PostingText(context.Background(), server.URL, opts)
	require.NoError(t, err)
	assert.False(t, page.Rendered)
	assert.Contains(t, page.Text, "full lifecycle of backend services")
}

func TestPostingText_ShortContentWithoutBrowser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html><body><div id='root'></div></body></html>"))
	}))
	defer server.Close()

	opts := DefaultOptions()
	opts.NoBrowser = true
	page, err := PostingText(context.Background(), server.URL, opts)
	require.NoError(t, err)
	assert.False(t, page.Rendered)
	assert.True(t, NeedsRendering(page.Text))
}

func TestNeedsRendering(t *testing.T) {
	assert.True(t, NeedsRendering(""))
	assert.True(t, NeedsRendering("Loading..."))
	assert.False(t, NeedsRendering(strings.Repeat("posting text ", 50)))
}

func TestCleanWhitespace(t *testing.T) {
	in := "  Responsibilities  \n\n\n   Design services   \n\t\n"
	assert.Equal(t, "Responsibilities\nDesign services", cleanWhitespace(in))
}
