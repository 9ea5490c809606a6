package web

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testUser struct {
	Email string
}

type testTaco struct {
	Protein string
	Shell   string
	Cheese  bool
	Extras  string
	User    testUser
}

type testPage struct {
	Title   string
	User    *testUser
	Flashes []struct{ Category, Message string }
	CSRF    string
	Form    any
	Tacos   []testTaco
}

func TestRenderer_Index(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, PageIndex, testPage{}, nil))
	assert.Contains(t, buf.String(), "No tacos yet")
	assert.Contains(t, buf.String(), "Sign up")

	buf.Reset()
	page := testPage{
		User:  &testUser{Email: "ziru@test.com"},
		Tacos: []testTaco{{Protein: "chicken", Shell: "flour", Extras: "<b>guac</b>", User: testUser{Email: "ziru@test.com"}}},
	}
	require.NoError(t, r.Render(&buf, PageIndex, page, nil))
	out := buf.String()
	assert.Contains(t, out, "Hello, ziru@test.com")
	assert.Contains(t, out, "Log out")
	assert.Contains(t, out, "&lt;b&gt;guac&lt;/b&gt;")
	assert.NotContains(t, out, "No tacos yet")
}

func TestRenderer_Forms(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	for _, page := range []string{PageRegister, PageLogin, PageTaco} {
		t.Run(page, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, r.Render(&buf, page, testPage{CSRF: "tok"}, nil))
			assert.Contains(t, buf.String(), `<form method="POST"`)
			assert.Contains(t, buf.String(), `name="csrf" value="tok"`)
		})
	}
}

func TestRenderer_UnknownPage(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	assert.Error(t, r.Render(&buf, "missing.html", testPage{}, nil))
}
