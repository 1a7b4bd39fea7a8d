package test

import (
	"encoding/json"
	"net/http/httptest"
)

type Result[T any] struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data T      `json:"data"`
}

type JSONResponseRecorder[T any] struct {
	*httptest.ResponseRecorder
}

func NewJSONResponseRecorder[T any]() *JSONResponseRecorder[T] {
	return &JSONResponseRecorder[T]{
		ResponseRecorder: httptest.NewRecorder(),
	}
}

// MustScan 解析不了直接 panic
func (r *JSONResponseRecorder[T]) MustScan() Result[T] {
	var res Result[T]
	err := json.NewDecoder(r.Body).Decode(&res)
	if err != nil {
		panic(err)
	}
	return res
}
