// SPDX-License-Identifier: MIT
package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type savedEnvelope struct {
	Palette savedResponse `json:"palette"`
}

func TestSaveAndFetchPalette(t *testing.T) {
	_, router := setupTestAPI(t)

	w := doRequest(router, "POST", "/api/palettes", `{"name":"brand","color":"#3b82f6","mode":"analogous","accessible":false,"notes":"hero"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created savedEnvelope
	decode(t, w, &created)
	assert.Len(t, created.Palette.ID, 36)
	assert.Equal(t, "analogous", created.Palette.Mode)
	assert.Equal(t, 11, created.Palette.Steps)
	assert.False(t, created.Palette.Accessible)
	assert.True(t, created.Palette.Semantic)

	for _, ref := range []string{created.Palette.ID, "brand"} {
		w = doRequest(router, "GET", "/api/palettes/"+ref, "")
		require.Equal(t, http.StatusOK, w.Code, ref)

		var body struct {
			Palette   savedResponse          `json:"palette"`
			Generated map[string]interface{} `json:"generated"`
		}
		decode(t, w, &body)
		assert.Equal(t, "hero", body.Palette.Notes)
		assert.Len(t, body.Generated["scale"], 11)
		assert.Len(t, body.Generated["analogous"], 2)
	}
}

func TestSavePaletteErrors(t *testing.T) {
	_, router := setupTestAPI(t)

	w := doRequest(router, "POST", "/api/palettes", `{"name":"brand","color":"#3b82f6"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	cases := []struct {
		body string
		code int
	}{
		{`{"name":"brand","color":"#3b82f6"}`, http.StatusConflict},
		{`{"name":"","color":"#3b82f6"}`, http.StatusBadRequest},
		{`{"name":"x","color":"nope"}`, http.StatusBadRequest},
		{`{"name":"x"}`, http.StatusBadRequest},
		{`{"name":"x","color":"#3b82f6","steps":0}`, http.StatusBadRequest},
		{`{"name":"x","color":"#3b82f6","mode":"loud"}`, http.StatusBadRequest},
		{`not json`, http.StatusBadRequest},
	}
	for _, tc := range cases {
		w := doRequest(router, "POST", "/api/palettes", tc.body)
		assert.Equal(t, tc.code, w.Code, tc.body)
	}
}

func TestListAndDeletePalettes(t *testing.T) {
	_, router := setupTestAPI(t)

	doRequest(router, "POST", "/api/palettes", `{"name":"b","color":"rose"}`)
	doRequest(router, "POST", "/api/palettes", `{"name":"a","color":"teal"}`)

	w := doRequest(router, "GET", "/api/palettes", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Palettes []savedResponse `json:"palettes"`
	}
	decode(t, w, &list)
	require.Len(t, list.Palettes, 2)
	assert.Equal(t, "a", list.Palettes[0].Name)
	assert.Equal(t, "#14b8a6", list.Palettes[0].Base)

	w = doRequest(router, "DELETE", "/api/palettes/a", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(router, "DELETE", "/api/palettes/a", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(router, "GET", "/api/palettes/a", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSavedThemeCSS(t *testing.T) {
	_, router := setupTestAPI(t)

	doRequest(router, "POST", "/api/palettes", `{"name":"site","color":"emerald","darkMode":true}`)

	dark := doRequest(router, "GET", "/api/palettes/site/theme.css", "")
	require.Equal(t, http.StatusOK, dark.Code)
	assert.Contains(t, dark.Header().Get("Content-Type"), "text/css")
	assert.Contains(t, dark.Body.String(), "--color-primary:")

	light := doRequest(router, "GET", "/api/palettes/site/theme.css?dark=false", "")
	require.Equal(t, http.StatusOK, light.Code)
	assert.NotEqual(t, dark.Body.String(), light.Body.String())
	assert.Contains(t, light.Body.String(), "--color-bg: #ffffff;")

	w := doRequest(router, "GET", "/api/palettes/site/theme.css?dark=sometimes", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
