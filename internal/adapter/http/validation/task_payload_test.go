package validation_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/Ajith163/todo-Auth-system-sub000/internal/adapter/http/dto"
	"github.com/Ajith163/todo-Auth-system-sub000/internal/adapter/http/validation"
	"github.com/Ajith163/todo-Auth-system-sub000/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode[T any](t *testing.T, body string) (T, map[string]json.RawMessage) {
	t.Helper()
	var req T
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	require.NoError(t, json.Unmarshal([]byte(body), &raw))
	return req, raw
}

func TestBuildCreateTaskInput_Defaults(t *testing.T) {
	req, raw := decode[dto.CreateTaskRequest](t, `{"title":"  Buy milk  "}`)

	input, err := validation.BuildCreateTaskInput(9, req, raw)

	require.NoError(t, err)
	assert.Equal(t, uint64(9), input.OwnerID)
	assert.Equal(t, "Buy milk", input.Title)
	assert.Equal(t, domain.PriorityMedium, input.Priority)
	assert.Empty(t, input.Tags)
	assert.Nil(t, input.DueDate)
}

func TestBuildCreateTaskInput_FullPayload(t *testing.T) {
	req, raw := decode[dto.CreateTaskRequest](t, `{
		"title":"Report",
		"description":"quarterly",
		"priority":"high",
		"dueDate":"2026-04-01T09:00:00Z",
		"tags":["work"," work ","q1"]
	}`)

	input, err := validation.BuildCreateTaskInput(1, req, raw)

	require.NoError(t, err)
	assert.Equal(t, domain.PriorityHigh, input.Priority)
	assert.Equal(t, "quarterly", *input.Description)
	assert.True(t, time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC).Equal(*input.DueDate))
	assert.Equal(t, []string{"work", "q1"}, input.Tags)
}

func TestBuildCreateTaskInput_Rejects(t *testing.T) {
	for _, body := range []string{
		`{"title":"   "}`,
		`{"title":"x","priority":null}`,
		`{"title":"x","priority":"urgent"}`,
		`{"title":"x","dueDate":"next tuesday"}`,
		`{"title":"x","tags":["  "]}`,
		`{"title":"x","tags":["this-tag-is-way-too-long"]}`,
	} {
		req, raw := decode[dto.CreateTaskRequest](t, body)
		_, err := validation.BuildCreateTaskInput(1, req, raw)
		assert.ErrorIs(t, err, validation.ErrInvalidTaskPayload, body)
	}
}

func TestBuildUpdateTaskInput_ClearsNullableFields(t *testing.T) {
	req, raw := decode[dto.UpdateTaskRequest](t, `{"description":null,"dueDate":null,"tags":[]}`)

	input, err := validation.BuildUpdateTaskInput(req, raw)

	require.NoError(t, err)
	assert.True(t, input.DescriptionSet)
	assert.Nil(t, input.Description)
	assert.True(t, input.DueDateSet)
	assert.Nil(t, input.DueDate)
	assert.True(t, input.TagsSet)
	assert.Empty(t, input.Tags)
	assert.Nil(t, input.Title)
}

func TestBuildUpdateTaskInput_Fields(t *testing.T) {
	req, raw := decode[dto.UpdateTaskRequest](t, `{"title":"New","completed":true,"priority":"low","dueDate":"2026-04-01"}`)

	input, err := validation.BuildUpdateTaskInput(req, raw)

	require.NoError(t, err)
	assert.Equal(t, "New", *input.Title)
	assert.True(t, *input.Completed)
	assert.Equal(t, domain.PriorityLow, *input.Priority)
	assert.True(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.Local).Equal(*input.DueDate))
	assert.False(t, input.TagsSet)
}

func TestBuildUpdateTaskInput_Rejects(t *testing.T) {
	for _, body := range []string{
		`{}`,
		`{"unknown":1}`,
		`{"title":null}`,
		`{"title":" "}`,
		`{"completed":null}`,
		`{"priority":"urgent"}`,
		`{"dueDate":"soon"}`,
	} {
		req, raw := decode[dto.UpdateTaskRequest](t, body)
		_, err := validation.BuildUpdateTaskInput(req, raw)
		assert.ErrorIs(t, err, validation.ErrInvalidTaskPayload, body)
	}
}

func TestBuildCreateTaskInput_LengthsCountCharacters(t *testing.T) {
	tag := "買い物リスト買い物リ"
	title := strings.Repeat("é", 150)
	body, err := json.Marshal(map[string]any{"title": title, "tags": []string{tag}})
	require.NoError(t, err)
	req, raw := decode[dto.CreateTaskRequest](t, string(body))

	input, err := validation.BuildCreateTaskInput(1, req, raw)

	require.NoError(t, err)
	assert.Equal(t, title, input.Title)
	assert.Equal(t, []string{tag}, input.Tags)

	tooLong := strings.Repeat("é", domain.MaxTitleLength+1)
	update := dto.UpdateTaskRequest{Title: &tooLong, Tags: []string{strings.Repeat("買", domain.MaxTagLength)}}
	_, err = validation.BuildUpdateTaskInput(update, map[string]json.RawMessage{"title": nil, "tags": nil})
	assert.ErrorIs(t, err, validation.ErrInvalidTaskPayload)

	maxTitle := strings.Repeat("é", domain.MaxTitleLength)
	update.Title = &maxTitle
	got, err := validation.BuildUpdateTaskInput(update, map[string]json.RawMessage{"title": nil, "tags": nil})
	require.NoError(t, err)
	assert.Equal(t, maxTitle, *got.Title)
}
