package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callboardhq/callboard/internal/directory"
	"github.com/callboardhq/callboard/internal/model"
)

func directoryFixture() directory.Sections {
	s := directory.NewSections()
	s.AddEntry("Talent", model.DirectoryEntry{
		ID: "jd", Name: "Jane Doe", Description: "Film actor.", Pills: []string{"Union"},
	})
	s.AddEntry("Talent", model.DirectoryEntry{
		ID: "bs", Name: "Bob Smith", Description: "Stage actor.", Pills: []string{"Non-Union"},
	})
	s.AddEntry("Sound", model.DirectoryEntry{ID: "mx", Name: "Mix Master", Description: "Boom op."})
	s.AddEntry("Directors", model.DirectoryEntry{ID: "dd", Name: "Dana Dee", Description: "Directs."})
	return s
}

func getJSON(t *testing.T, h echo.HandlerFunc, target string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, h(c))
	return rec, c
}

func TestGetCastDirectory(t *testing.T) {
	h := &PublicHandler{Directory: &fakeStore{sections: directoryFixture()}}

	rec, _ := getJSON(t, h.GetCastDirectory, "/v1/directory/cast")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"items": [
			{"id":"bs","name":"Bob Smith","description":"Stage actor.","pills":["Non-Union"]},
			{"id":"jd","name":"Jane Doe","description":"Film actor.","pills":["Union"]}
		],
		"pills": ["Non-Union","Union"]
	}`, rec.Body.String())
}

func TestGetCastDirectory_Filters(t *testing.T) {
	h := &PublicHandler{Directory: &fakeStore{sections: directoryFixture()}}

	rec, _ := getJSON(t, h.GetCastDirectory, "/v1/directory/cast?search=jane&pill=Union")
	assert.Contains(t, rec.Body.String(), "Jane Doe")
	assert.NotContains(t, rec.Body.String(), "Bob Smith")
	// The pill options always cover the whole section, not the filtered
	// result.
	assert.Contains(t, rec.Body.String(), "Non-Union")
}

func TestGetCrewDirectory_OrderAndTalentExclusion(t *testing.T) {
	h := &PublicHandler{Directory: &fakeStore{sections: directoryFixture()}}

	rec, _ := getJSON(t, h.GetCrewDirectory, "/v1/directory/crew")
	assert.JSONEq(t, `{
		"items": [
			{"name":"Directors","entries":[{"id":"dd","name":"Dana Dee","description":"Directs."}]},
			{"name":"Sound","entries":[{"id":"mx","name":"Mix Master","description":"Boom op."}]}
		]
	}`, rec.Body.String())
}

func TestGetDirectory_RawMapping(t *testing.T) {
	h := &PublicHandler{Directory: &fakeStore{sections: directoryFixture()}}

	rec, _ := getJSON(t, h.GetDirectory, "/v1/directory")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Talent"`)
	assert.Contains(t, rec.Body.String(), `"Sound"`)
}
