package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strconv"

	"todo-service/internal/service"
)

// createTodoRequest is the body accepted by POST /todos.
type createTodoRequest struct {
	Name     string  `json:"name"`
	Priority *string `json:"priority"`
	IsFun    optFlag `json:"isFun"`
}

func (r createTodoRequest) input() service.TodoInput {
	in := service.TodoInput{Name: r.Name, Priority: r.Priority}
	if r.IsFun.set {
		v := r.IsFun.value
		in.IsFun = &v
	}
	return in
}

// decodeCreateRequest reads exactly one JSON value from body. An empty body
// is treated as {} so it fails on the missing name.
func decodeCreateRequest(body io.Reader) (createTodoRequest, error) {
	var req createTodoRequest
	dec := json.NewDecoder(body)
	if err := dec.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return req, nil
		}
		return req, err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return req, errors.New("unexpected data after JSON value")
	}
	return req, nil
}

// optFlag accepts any JSON value and records its truthiness, so clients
// sending 0/1, "yes" or null keep working. An absent field leaves set false.
type optFlag struct {
	set   bool
	value bool
}

func (f *optFlag) UnmarshalJSON(data []byte) error {
	f.set = true
	data = bytes.TrimSpace(data)

	switch {
	case bytes.Equal(data, []byte("null")), bytes.Equal(data, []byte("false")):
		f.value = false
	case bytes.Equal(data, []byte("true")):
		f.value = true
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		f.value = s != ""
	case len(data) > 0 && (data[0] == '{' || data[0] == '['):
		f.value = true
	default:
		n, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return err
		}
		f.value = n != 0
	}
	return nil
}
