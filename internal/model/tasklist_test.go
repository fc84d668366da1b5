package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskList_Count(t *testing.T) {
	tests := []struct {
		name string
		list TaskList
		want int
	}{
		{name: "empty list", list: EmptyTaskList, want: 0},
		{name: "array", list: TaskList(`[{"id":1},{"id":2},{"id":3}]`), want: 3},
		{name: "object", list: TaskList(`{"a":1,"b":2}`), want: 2},
		{name: "scalar", list: TaskList(`42`), want: 0},
		{name: "garbage", list: TaskList(`not json`), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.list.Count())
		})
	}
}
