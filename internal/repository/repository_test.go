package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageQuery_Normalize(t *testing.T) {
	tests := []struct {
		in   PageQuery
		want PageQuery
	}{
		{PageQuery{}, PageQuery{Limit: 20}},
		{PageQuery{Limit: 500, Offset: -3}, PageQuery{Limit: 100}},
		{PageQuery{Limit: 5, Offset: 10}, PageQuery{Limit: 5, Offset: 10}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.in.Normalize())
	}
}
