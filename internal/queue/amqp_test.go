package queue

import (
	"testing"

	"github.com/streadway/amqp"
)

func TestRetryCountHeader(t *testing.T) {
	tests := []struct {
		headers amqp.Table
		want    int
	}{
		{nil, 0},
		{amqp.Table{}, 0},
		{amqp.Table{retryHeader: int32(2)}, 2},
		{amqp.Table{retryHeader: int64(3)}, 3},
		{amqp.Table{retryHeader: "x"}, 0},
	}
	for _, tt := range tests {
		if got := retryCount(tt.headers); got != tt.want {
			t.Errorf("retryCount(%v) = %d, want %d", tt.headers, got, tt.want)
		}
	}
}
