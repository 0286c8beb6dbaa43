package jobdesc

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText_PrefersJobDescriptionSelector(t *testing.T) {
	html := `<html><body>
		<nav>Home | Jobs | About</nav>
		<div class="job-description">
			<h1>Senior Go Engineer</h1>
			<p>Build distributed systems in Go and PostgreSQL.</p>
		</div>
		<footer>Copyright</footer>
	</body></html>`

	text, err := extractText(html)
	require.NoError(t, err)
	assert.Contains(t, text, "Senior Go Engineer")
	assert.Contains(t, text, "distributed systems")
	assert.NotContains(t, text, "Copyright")
	assert.NotContains(t, text, "Home | Jobs")
}

func TestExtractText_FallsBackToBody(t *testing.T) {
	html := `<html><body><p>Plain posting text.</p><script>var x = 1;</script></body></html>`

	text, err := extractText(html)
	require.NoError(t, err)
	assert.Contains(t, text, "Plain posting text.")
	assert.NotContains(t, text, "var x")
}

func TestExtractText_NormalizesWhitespace(t *testing.T) {
	html := "<html><body><p>  first line  </p>\n\n\n<p>  second line  </p></body></html>"

	text, err := extractText(html)
	require.NoError(t, err)
	assert.Equal(t, "first line\nsecond line", text)
}

func TestLooksUnrendered(t *testing.T) {
	assert.True(t, looksUnrendered(""))
	assert.True(t, looksUnrendered("Loading..."))
	assert.False(t, looksUnrendered(strings.Repeat("real job posting content ", 30)))
}

func TestFetchText_ServerRenderedPage(t *testing.T) {
	body := `<html><body><main>` + strings.Repeat("Go engineer responsibilities. ", 30) + `</main></body></html>`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	text, err := FetchText(context.Background(), srv.URL, false)
	require.NoError(t, err)
	assert.Contains(t, text, "Go engineer responsibilities.")
}

func TestFetchText_InvalidURL(t *testing.T) {
	_, err := FetchText(context.Background(), "not a url", false)
	require.Error(t, err)

	var fe *Error
	assert.ErrorAs(t, err, &fe)
}

func TestFetchText_HTTPErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := FetchText(context.Background(), srv.URL, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP status 404")
}
