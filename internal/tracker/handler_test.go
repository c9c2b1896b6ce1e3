package tracker

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dispatch(t *testing.T, h *Handler, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/admin/tracker", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.Dispatch(rr, req)
	var out map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	return rr, out
}

func TestHandlerTaskLifecycle(t *testing.T) {
	h := NewHandler(NewInMemoryRepository(), "secret", "", nil)

	rr, out := dispatch(t, h, `{"key":"secret","fn":"tasks.add","task":{"title":"Call back Acme","assignee":"Priya"}}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Task added", out["message"])
	task := out["task"].(map[string]any)
	id := task["id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, "open", task["status"])

	rr, out = dispatch(t, h, fmt.Sprintf(`{"key":"secret","fn":"tasks.updateStatus","id":%q,"status":"in_progress"}`, id))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Status updated", out["message"])
	assert.Equal(t, "in_progress", out["task"].(map[string]any)["status"])

	rr, out = dispatch(t, h, fmt.Sprintf(`{"key":"secret","fn":"tasks.update","id":%q,"task":{"notes":"left voicemail"}}`, id))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Task updated", out["message"])

	rr, out = dispatch(t, h, `{"key":"secret","fn":"tasks.list"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	tasks := out["tasks"].([]any)
	require.Len(t, tasks, 1)
	assert.Equal(t, "left voicemail", tasks[0].(map[string]any)["notes"])

	rr, out = dispatch(t, h, fmt.Sprintf(`{"key":"secret","fn":"tasks.delete","id":%q}`, id))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Task deleted", out["message"])
}

func TestHandlerTrackerBadKey(t *testing.T) {
	h := NewHandler(NewInMemoryRepository(), "secret", "", nil)

	rr, out := dispatch(t, h, `{"key":"wrong","fn":"tasks.list"}`)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Unauthorized (bad key)", out["message"])
}

func TestHandlerTrackerErrors(t *testing.T) {
	h := NewHandler(NewInMemoryRepository(), "", "", nil)

	rr, out := dispatch(t, h, `{"fn":"tasks.add","task":{"title":""}}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, ErrMissingTitle.Error(), out["message"])

	rr, out = dispatch(t, h, `{"fn":"tasks.updateStatus","id":"nope","status":"done"}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, ErrTaskNotFound.Error(), out["message"])

	rr, out = dispatch(t, h, `{"fn":"tasks.archive"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Unknown function", out["message"])
}
