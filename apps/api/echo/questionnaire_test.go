package echoapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ok1nam/demo-edp-final/core/questionnaire"
)

func Test_questionnaireApi_notStarted(t *testing.T) {
	resetStore(t)

	var v questionnaire.View
	do(t, http.MethodGet, "/v1/questionnaire", nil, http.StatusOK, &v)
	assert.False(t, v.Started)
	assert.Nil(t, v.Question)
	assert.Equal(t, len(questionnaire.Questions()), v.Total)

	tests := []httpTest{
		{
			name:     "answer",
			method:   http.MethodPost,
			path:     "/v1/questionnaire/answer",
			body:     []byte(`{"answer":"OUI"}`),
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, httpErr{Error: "questionnaire not started"}),
		},
		{
			name:     "previous",
			method:   http.MethodPost,
			path:     "/v1/questionnaire/previous",
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, httpErr{Error: "questionnaire not started"}),
		},
		{
			name:     "report",
			method:   http.MethodGet,
			path:     "/v1/questionnaire/report.pdf",
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, httpErr{Error: "questionnaire not completed"}),
		},
	}
	for _, tt := range tests {
		tt.token = getToken(t, "admin")

		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(tt.method, tt.path, tt.token, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_questionnaireApi_flow(t *testing.T) {
	resetStore(t)
	questions := questionnaire.Questions()

	var v questionnaire.View
	do(t, http.MethodPost, "/v1/questionnaire/start", nil, http.StatusOK, &v)
	require.True(t, v.Started)
	require.NotNil(t, v.Question)
	assert.Equal(t, 0, v.CurrentIndex)
	assert.Equal(t, questions[0].Question, v.Question.Question)
	assert.Equal(t, questionnaire.Section(0), v.Section)

	req, rec := newAuthRequest(http.MethodPost, "/v1/questionnaire/answer", getToken(t, "admin"), []byte(`{"answer":"peut-être"}`))
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{
		wantCode: http.StatusBadRequest,
		wantData: []byte(`{"answer":"answer must be one of [OUI NON]"}`),
	}, rec)

	do(t, http.MethodPost, "/v1/questionnaire/answer", []byte(`{"answer":"oui"}`), http.StatusOK, &v)
	assert.Equal(t, 1, v.CurrentIndex)
	assert.Equal(t, []string{questionnaire.Yes}, v.Responses)

	// NON shows the advice and waits before moving on
	do(t, http.MethodPost, "/v1/questionnaire/answer", []byte(`{"answer":"NON"}`), http.StatusOK, &v)
	assert.Equal(t, 1, v.CurrentIndex)
	assert.True(t, v.AdvancePending)
	assert.Equal(t, questions[1].Advice, v.Advice)

	do(t, http.MethodGet, "/v1/questionnaire", nil, http.StatusOK, &v)
	assert.True(t, v.AdvancePending)
	assert.Equal(t, questions[1].Advice, v.Advice)

	// going back cancels the pending move and keeps the answers
	do(t, http.MethodPost, "/v1/questionnaire/previous", nil, http.StatusOK, &v)
	assert.Equal(t, 0, v.CurrentIndex)
	assert.False(t, v.AdvancePending)
	assert.Equal(t, []string{questionnaire.Yes, questionnaire.No}, v.Responses)

	for i := range questions {
		do(t, http.MethodPost, "/v1/questionnaire/answer", []byte(`{"answer":"OUI"}`), http.StatusOK, &v)
		if i < len(questions)-1 {
			assert.False(t, v.Completed)
		}
	}
	require.True(t, v.Completed)
	require.NotNil(t, v.Report)
	assert.Equal(t, 100.0, v.Report.Score)
	assert.Equal(t, questionnaire.AssessmentExcellent, v.Report.Assessment)
	assert.Equal(t, 100.0, v.Progress)

	do(t, http.MethodPost, "/v1/questionnaire/previous", nil, http.StatusBadRequest, nil)

	rec = do(t, http.MethodGet, "/v1/questionnaire/report.pdf", nil, http.StatusOK, nil)
	assert.Equal(t, contentTypePDF, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), questionnaireReportFilename)
}
